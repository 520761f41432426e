package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"wycena/services"
)

// HandleExportPDF returns a handler that renders the current draft as a
// downloadable PDF. The optional "format" query parameter selects the
// layout: "standard" (default, per-room sections) or "table".
func HandleExportPDF(app *pocketbase.PocketBase, drafts *Drafts) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		state := drafts.Get(sessionID(e))
		if len(state.Rooms) == 0 {
			return jsonError(e, http.StatusBadRequest, "Wycena nie zawiera pomieszczeń")
		}

		format := services.PdfFormatStandard
		if e.Request.URL.Query().Get("format") == string(services.PdfFormatTable) {
			format = services.PdfFormatTable
		}

		data := services.BuildExportData(state, time.Now().Format("02.01.2006"), format)

		pdfBytes, err := services.GeneratePDF(data)
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Nie udało się wygenerować pliku PDF")
		}

		filename := exportFilename(state.QuoteName, "pdf")
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleExportExcel returns a handler that renders the current draft as a
// downloadable Excel workbook.
func HandleExportExcel(app *pocketbase.PocketBase, drafts *Drafts) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		state := drafts.Get(sessionID(e))
		if len(state.Rooms) == 0 {
			return jsonError(e, http.StatusBadRequest, "Wycena nie zawiera pomieszczeń")
		}

		data := services.BuildExportData(state, time.Now().Format("02.01.2006"), services.PdfFormatStandard)

		xlsxBytes, err := services.GenerateExcel(data)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Nie udało się wygenerować pliku Excel")
		}

		filename := exportFilename(state.QuoteName, "xlsx")
		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// exportFilename builds a download name like "wycena-moj-dom-2026.pdf".
func exportFilename(quoteName, ext string) string {
	base := "wycena"
	if quoteName != "" {
		base += "-" + sanitizeFilename(quoteName)
	}
	return fmt.Sprintf("%s-%d.%s", base, time.Now().Year(), ext)
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	s = strings.ReplaceAll(s, `"`, "")
	return s
}
