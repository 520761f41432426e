package handlers

import (
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"wycena/services"
)

// HandleRoomRename returns a handler that renames a room.
func HandleRoomRename(app *pocketbase.PocketBase, drafts *Drafts) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		roomID := e.Request.PathValue("roomId")
		if roomID == "" {
			return jsonError(e, http.StatusBadRequest, "Brak identyfikatora pomieszczenia")
		}
		if err := e.Request.ParseForm(); err != nil {
			return jsonError(e, http.StatusBadRequest, "Nieprawidłowe dane formularza")
		}
		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return jsonError(e, http.StatusBadRequest, "Nazwa pomieszczenia jest wymagana")
		}

		state := drafts.Update(sessionID(e), func(s services.State) services.State {
			return s.UpdateRoomName(roomID, name)
		})
		return respondState(e, state)
	}
}
