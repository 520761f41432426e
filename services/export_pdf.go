package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GeneratePDF renders the quote as a PDF using maroto/v2 in the layout
// selected by data.Format and returns the raw bytes.
func GeneratePDF(data ExportData) ([]byte, error) {
	fonts, err := pdfFonts()
	if err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithCustomFonts(fonts).
		WithDefaultFont(&props.Font{Family: pdfFontFamily}).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Strona {current} z {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, data)

	if data.Format == PdfFormatTable {
		addFlatTable(m, data)
	} else {
		for _, room := range data.Rooms {
			addRoomSection(m, room)
		}
	}

	addQuoteSummary(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// addQuoteHeader adds the title, quote name, date and preparer lines.
func addQuoteHeader(m core.Maroto, data ExportData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("WYCENA PRAC WYKOŃCZENIOWYCH", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	if data.QuoteName != "" {
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(
					text.New(data.QuoteName, props.Text{
						Size:  11,
						Align: align.Center,
						Color: &props.Color{Red: 60, Green: 60, Blue: 60},
					}),
				),
			),
		)
	}

	subline := fmt.Sprintf("Data: %s", data.Date)
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(subline, props.Text{
					Size:  9,
					Align: align.Center,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
		),
	)

	if data.PreparedBy != "" {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(
					text.New(data.PreparedBy, props.Text{
						Size:  9,
						Align: align.Center,
						Color: &props.Color{Red: 100, Green: 100, Blue: 100},
					}),
				),
			),
		)
	}

	m.AddRows(row.New(4))
}

// addRoomSection adds one room of the standard layout: header, measurement
// summary lines (zero lines skipped, net area always shown), the work rows
// and the room total.
func addRoomSection(m core.Maroto, room ExportRoom) {
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("%d. %s", room.Index, room.Name), props.Text{
					Size:  12,
					Style: fontstyle.Bold,
					Color: &props.Color{Red: 50, Green: 50, Blue: 50},
				}),
			),
		),
	)

	summaryText := props.Text{
		Size:  9,
		Left:  4,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	addSummaryLine := func(label string) {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(text.New(label, summaryText)),
			),
		)
	}

	addSummaryLine("Powierzchnia netto: " + FormatQty(room.NetArea) + " m²")
	if room.Corners > 0 {
		addSummaryLine(fmt.Sprintf("Narożniki: %.2f mb", room.Corners))
	}
	if room.Grooves > 0 {
		addSummaryLine(fmt.Sprintf("Bruzdy: %.2f mb", room.Grooves))
	}
	if room.Acrylic > 0 {
		addSummaryLine(fmt.Sprintf("Akrylowanie: %.2f mb", room.Acrylic))
	}
	if room.FloorProtection > 0 {
		addSummaryLine("Oklejanie posadzki: " + FormatQty(room.FloorProtection) + " m²")
	}

	m.AddRows(row.New(2))
	addWorkTableHeader(m)
	for _, r := range room.Rows {
		addWorkRow(m, r, nil)
	}

	m.AddRows(
		row.New(7).Add(
			col.New(8).Add(
				text.New("Razem za pomieszczenie", props.Text{
					Size:  9,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
			col.New(4).Add(
				text.New(FormatPLN(room.Total), props.Text{
					Size:  9,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
	)
	m.AddRows(row.New(5))
}

// addFlatTable adds the table layout: every enabled work row of every room
// in a single table, rooms separated by a shaded name row.
func addFlatTable(m core.Maroto, data ExportData) {
	addWorkTableHeader(m)

	roomBg := &props.Color{Red: 235, Green: 235, Blue: 235}
	roomCell := &props.Cell{BackgroundColor: roomBg}

	for _, room := range data.Rooms {
		nameCol := col.New(8).Add(
			text.New(fmt.Sprintf("%d. %s", room.Index, room.Name), props.Text{
				Size:  9,
				Style: fontstyle.Bold,
			}),
		).WithStyle(roomCell)
		totalCol := col.New(4).Add(
			text.New(FormatPLN(room.Total), props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Align: align.Right,
			}),
		).WithStyle(roomCell)
		m.AddRows(row.New(7).Add(nameCol, totalCol))

		rowCell := &props.Cell{BackgroundColor: &props.Color{Red: 248, Green: 248, Blue: 248}}
		for _, r := range room.Rows {
			addWorkRow(m, r, rowCell)
		}
	}
}

// addWorkTableHeader adds the column header of the work rows table.
func addWorkTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(7).Add(
			col.New(5).Add(
				text.New("Rodzaj pracy", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Ilość", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Cena", headerText),
			).WithStyle(&headerCell),
			col.New(3).Add(
				text.New("Wartość", headerText),
			).WithStyle(&headerCell),
		),
	)
}

// addWorkRow adds a single work type row, optionally with a background.
func addWorkRow(m core.Maroto, r ExportWorkRow, cellStyle *props.Cell) {
	baseText := props.Text{Size: 8, Align: align.Center}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	qtyStr := fmt.Sprintf("%s %s", FormatQty(r.Quantity), r.UnitLabel)

	colName := col.New(5).Add(text.New(r.Name, leftText))
	colQty := col.New(2).Add(text.New(qtyStr, baseText))
	colPrice := col.New(2).Add(text.New(FormatPLN(r.Price), rightText))
	colTotal := col.New(3).Add(text.New(FormatPLN(r.Total), rightText))

	if cellStyle != nil {
		colName = colName.WithStyle(cellStyle)
		colQty = colQty.WithStyle(cellStyle)
		colPrice = colPrice.WithStyle(cellStyle)
		colTotal = colTotal.WithStyle(cellStyle)
	}

	m.AddRows(row.New(6).Add(colName, colQty, colPrice, colTotal))
}

// addQuoteSummary adds the net / VAT / gross block at the bottom.
func addQuoteSummary(m core.Maroto, data ExportData) {
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := labelStyle

	addSummaryRow := func(label string, value float64) {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(
					text.New(label, labelStyle),
				).WithStyle(summaryCell),
				col.New(4).Add(
					text.New(FormatPLN(value), valueStyle),
				).WithStyle(summaryCell),
			),
		)
	}

	addSummaryRow("Razem netto", data.GrandTotal)
	addSummaryRow(fmt.Sprintf("VAT (%d%%)", data.VatRate), data.VatAmount)
	addSummaryRow("Razem brutto", data.GrossTotal)
}
