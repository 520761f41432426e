package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleQuoteDelete returns a handler that deletes a saved quote. The
// caller's draft is untouched: deleting the cloud copy of the quote being
// edited keeps the editor content, matching the save-is-explicit model.
func HandleQuoteDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if e.Auth == nil {
			return jsonError(e, http.StatusUnauthorized, "Musisz być zalogowany")
		}
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return jsonError(e, http.StatusBadRequest, "Brak identyfikatora wyceny")
		}

		record, err := app.FindRecordById("quotes", quoteID)
		if err != nil || record.GetString("user") != e.Auth.Id {
			return jsonError(e, http.StatusNotFound, "Nie znaleziono wyceny")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("quote_delete: could not delete quote %s: %v", quoteID, err)
			return jsonError(e, http.StatusInternalServerError, "Nie udało się usunąć wyceny")
		}

		return e.JSON(http.StatusOK, map[string]string{"deleted": quoteID})
	}
}
