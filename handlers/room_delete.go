package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"wycena/services"
)

// HandleRoomDelete returns a handler that removes a room from the draft.
// Deleting an already-deleted room is a no-op and still returns the state,
// so retried requests stay harmless.
func HandleRoomDelete(app *pocketbase.PocketBase, drafts *Drafts) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		roomID := e.Request.PathValue("roomId")
		if roomID == "" {
			return jsonError(e, http.StatusBadRequest, "Brak identyfikatora pomieszczenia")
		}

		state := drafts.Update(sessionID(e), func(s services.State) services.State {
			return s.DeleteRoom(roomID)
		})
		return respondState(e, state)
	}
}
