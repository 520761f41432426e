package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// GenerateExcel creates an Excel workbook from the quote export data:
// one sheet with a room-sectioned work table and the net/VAT/gross summary.
func GenerateExcel(data ExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := sanitizeSheetName(data.QuoteName)

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D"}
	lastCol := columns[len(columns)-1]

	widths := []float64{42, 14, 14, 16}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	roomStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#EBEBEB"},
			Pattern: 1,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create room style: %w", err)
	}

	workStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create work row style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Header rows ─────────────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", "Wycena prac wykończeniowych")
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if data.QuoteName != "" {
		if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
			return nil, fmt.Errorf("merge name: %w", err)
		}
		f.SetCellValue(sheetName, "A2", sanitizeExcelCell(data.QuoteName))
		f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)
	}

	if err := f.MergeCell(sheetName, "A3", lastCol+"3"); err != nil {
		return nil, fmt.Errorf("merge date: %w", err)
	}
	dateLine := "Data: " + data.Date
	if data.PreparedBy != "" {
		dateLine += "    Przygotował: " + data.PreparedBy
	}
	f.SetCellValue(sheetName, "A3", sanitizeExcelCell(dateLine))
	f.SetCellStyle(sheetName, "A3", lastCol+"3", subtitleStyle)

	// ── Column headers (row 5) ──────────────────────────────────────────

	headers := []string{"Rodzaj pracy", "Ilość", "Cena", "Wartość"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s5", columns[i])
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A5", lastCol+"5", headerStyle)

	// ── Room sections (starting row 6) ──────────────────────────────────

	row := 6
	for _, room := range data.Rooms {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(fmt.Sprintf("%d. %s", room.Index, room.Name)))
		f.SetCellValue(sheetName, "B"+rowStr, FormatQty(room.NetArea)+" m²")
		f.SetCellValue(sheetName, "D"+rowStr, FormatPLN(room.Total))
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, roomStyle)
		row++

		for _, r := range room.Rows {
			rowStr = fmt.Sprintf("%d", row)
			f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell("  "+r.Name))
			f.SetCellValue(sheetName, "B"+rowStr, fmt.Sprintf("%s %s", FormatQty(r.Quantity), r.UnitLabel))
			f.SetCellValue(sheetName, "C"+rowStr, FormatPLN(r.Price))
			f.SetCellValue(sheetName, "D"+rowStr, FormatPLN(r.Total))
			f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, workStyle)
			row++
		}
	}

	// ── Summary ─────────────────────────────────────────────────────────

	row++

	addSummary := func(label string, value float64) {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "C"+rowStr, label)
		f.SetCellStyle(sheetName, "C"+rowStr, "C"+rowStr, summaryLabelStyle)
		f.SetCellValue(sheetName, "D"+rowStr, FormatPLN(value))
		f.SetCellStyle(sheetName, "D"+rowStr, "D"+rowStr, summaryValueStyle)
		row++
	}

	addSummary("Razem netto:", data.GrandTotal)
	addSummary(fmt.Sprintf("VAT (%d%%):", data.VatRate), data.VatAmount)
	addSummary("Razem brutto:", data.GrossTotal)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeSheetName turns a quote name into a valid sheet name. The xlsx
// format forbids : \ / ? * [ ] in sheet names, rejects names wrapped in
// single quotes and caps the length at 31 chars.
func sanitizeSheetName(name string) string {
	runes := []rune(name)
	out := runes[:0]
	for _, r := range runes {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			continue
		}
		out = append(out, r)
	}
	if len(out) > 31 {
		out = out[:31]
	}
	trimmed := strings.Trim(string(out), "' \t")
	if trimmed == "" {
		return "Wycena"
	}
	return trimmed
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous
// leading characters with a single quote. Excel interprets cells starting
// with =, +, -, @, \t or \r as formulas.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "#CCCCCC", Style: 1},
		{Type: "right", Color: "#CCCCCC", Style: 1},
		{Type: "top", Color: "#CCCCCC", Style: 1},
		{Type: "bottom", Color: "#CCCCCC", Style: 1},
	}
}
