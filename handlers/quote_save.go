package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"wycena/services"
)

// HandleQuoteSave returns a handler that persists the current draft as a
// new cloud quote owned by the authenticated user. The draft itself is only
// updated (with the saved identity) after the record write succeeds, so a
// failed save leaves the calculator untouched.
func HandleQuoteSave(app *pocketbase.PocketBase, drafts *Drafts) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if e.Auth == nil {
			return jsonError(e, http.StatusUnauthorized, "Musisz być zalogowany, aby zapisać wycenę")
		}
		if err := e.Request.ParseForm(); err != nil {
			return jsonError(e, http.StatusBadRequest, "Nieprawidłowe dane formularza")
		}
		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return jsonError(e, http.StatusBadRequest, "Nazwa wyceny jest wymagana")
		}

		sid := sessionID(e)
		state := drafts.Get(sid)

		quotesCol, err := app.FindCollectionByNameOrId("quotes")
		if err != nil {
			log.Printf("quote_save: could not find quotes collection: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Nie udało się zapisać wyceny")
		}

		record := core.NewRecord(quotesCol)
		record.Set("user", e.Auth.Id)
		record.Set("name", name)
		record.Set("data", state.Rooms)
		record.Set("vat_rate", state.VatRate)
		record.Set("prepared_by", state.PreparedBy)

		if err := app.Save(record); err != nil {
			log.Printf("quote_save: could not save quote: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Nie udało się zapisać wyceny")
		}

		state = drafts.Update(sid, func(s services.State) services.State {
			s.QuoteID = record.Id
			s.QuoteName = name
			return s
		})

		return e.JSON(http.StatusOK, map[string]any{
			"quoteId": record.Id,
			"state":   buildStateView(state),
		})
	}
}

// HandleQuoteUpdate returns a handler that overwrites an existing cloud
// quote with the current draft.
func HandleQuoteUpdate(app *pocketbase.PocketBase, drafts *Drafts) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if e.Auth == nil {
			return jsonError(e, http.StatusUnauthorized, "Musisz być zalogowany, aby zapisać wycenę")
		}
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return jsonError(e, http.StatusBadRequest, "Brak identyfikatora wyceny")
		}
		if err := e.Request.ParseForm(); err != nil {
			return jsonError(e, http.StatusBadRequest, "Nieprawidłowe dane formularza")
		}

		record, err := app.FindRecordById("quotes", quoteID)
		if err != nil || record.GetString("user") != e.Auth.Id {
			return jsonError(e, http.StatusNotFound, "Nie znaleziono wyceny")
		}

		sid := sessionID(e)
		state := drafts.Get(sid)

		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			name = record.GetString("name")
		}

		record.Set("name", name)
		record.Set("data", state.Rooms)
		record.Set("vat_rate", state.VatRate)
		record.Set("prepared_by", state.PreparedBy)

		if err := app.Save(record); err != nil {
			log.Printf("quote_update: could not save quote %s: %v", quoteID, err)
			return jsonError(e, http.StatusInternalServerError, "Nie udało się zaktualizować wyceny")
		}

		state = drafts.Update(sid, func(s services.State) services.State {
			s.QuoteID = record.Id
			s.QuoteName = name
			return s
		})
		return respondState(e, state)
	}
}
