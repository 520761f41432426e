package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"wycena/services"
)

// HandleVatRate returns a handler that switches the draft's VAT rate.
// Only the legal rates (8 and 23) are accepted.
func HandleVatRate(app *pocketbase.PocketBase, drafts *Drafts) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return jsonError(e, http.StatusBadRequest, "Nieprawidłowe dane formularza")
		}
		rate, err := strconv.Atoi(e.Request.FormValue("rate"))
		if err != nil || !services.ValidVatRate(rate) {
			return jsonError(e, http.StatusBadRequest, "Stawka VAT musi wynosić 8 lub 23")
		}

		state := drafts.Update(sessionID(e), func(s services.State) services.State {
			return s.SetVatRate(rate)
		})
		return respondState(e, state)
	}
}

// HandlePreparedBy returns a handler that sets the preparer label printed
// on exports. An empty value clears it.
func HandlePreparedBy(app *pocketbase.PocketBase, drafts *Drafts) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return jsonError(e, http.StatusBadRequest, "Nieprawidłowe dane formularza")
		}
		name := strings.TrimSpace(e.Request.FormValue("name"))

		state := drafts.Update(sessionID(e), func(s services.State) services.State {
			return s.SetPreparedBy(name)
		})
		return respondState(e, state)
	}
}
