package handlers

import (
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"wycena/services"
)

// HandleRoomCreate returns a handler that prepends a new room to the draft.
// The room name is optional; the engine falls back to the default name.
func HandleRoomCreate(app *pocketbase.PocketBase, drafts *Drafts) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return jsonError(e, http.StatusBadRequest, "Nieprawidłowe dane formularza")
		}
		name := strings.TrimSpace(e.Request.FormValue("name"))

		var roomID string
		state := drafts.Update(sessionID(e), func(s services.State) services.State {
			s, roomID = s.CreateRoom(name)
			return s
		})

		view := buildStateView(state)
		return e.JSON(http.StatusOK, map[string]any{
			"roomId": roomID,
			"state":  view,
		})
	}
}
