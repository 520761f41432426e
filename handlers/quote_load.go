package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"wycena/services"
)

// HandleQuoteLoad returns a handler that replaces the caller's draft with a
// persisted quote: rooms, VAT rate, preparer and the loaded identity.
func HandleQuoteLoad(app *pocketbase.PocketBase, drafts *Drafts) func(*core.RequestEvent) error {
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

		var rooms []services.Room
		if err := record.UnmarshalJSONField("data", &rooms); err != nil {
			log.Printf("quote_load: bad data payload on quote %s: %v", quoteID, err)
			return jsonError(e, http.StatusInternalServerError, "Nie udało się wczytać wyceny")
		}
		if rooms == nil {
			rooms = []services.Room{}
		}

		state := drafts.Update(sessionID(e), func(s services.State) services.State {
			return s.LoadQuote(
				record.Id,
				record.GetString("name"),
				rooms,
				record.GetInt("vat_rate"),
				record.GetString("prepared_by"),
			)
		})
		return respondState(e, state)
	}
}

// HandleQuoteClear returns a handler that resets the draft to an empty,
// unsaved state.
func HandleQuoteClear(app *pocketbase.PocketBase, drafts *Drafts) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		state := drafts.Update(sessionID(e), func(s services.State) services.State {
			return s.Clear()
		})
		return respondState(e, state)
	}
}
