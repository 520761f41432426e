package handlers

import (
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"wycena/services"
)

// workTypeIDs extracts the room and work type path values; ok is false
// when either is missing.
func workTypeIDs(e *core.RequestEvent) (roomID, workTypeID string, ok bool) {
	roomID = e.Request.PathValue("roomId")
	workTypeID = e.Request.PathValue("workTypeId")
	return roomID, workTypeID, roomID != "" && workTypeID != ""
}

// HandleWorkTypeToggle returns a handler that flips a work type's enabled
// flag. Disabling keeps the price and any custom items.
func HandleWorkTypeToggle(app *pocketbase.PocketBase, drafts *Drafts) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		roomID, workTypeID, ok := workTypeIDs(e)
		if !ok {
			return jsonError(e, http.StatusBadRequest, "Brak wymaganych identyfikatorów")
		}

		state := drafts.Update(sessionID(e), func(s services.State) services.State {
			return s.ToggleWorkType(roomID, workTypeID)
		})
		return respondState(e, state)
	}
}

// HandleWorkTypePrice returns a handler that sets a work type's price per
// unit.
func HandleWorkTypePrice(app *pocketbase.PocketBase, drafts *Drafts) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		roomID, workTypeID, ok := workTypeIDs(e)
		if !ok {
			return jsonError(e, http.StatusBadRequest, "Brak wymaganych identyfikatorów")
		}
		if err := e.Request.ParseForm(); err != nil {
			return jsonError(e, http.StatusBadRequest, "Nieprawidłowe dane formularza")
		}
		price, ok := formFloat(e, "price")
		if !ok || price < 0 {
			return jsonError(e, http.StatusBadRequest, "Cena nie może być ujemna")
		}

		state := drafts.Update(sessionID(e), func(s services.State) services.State {
			return s.UpdateWorkTypePrice(roomID, workTypeID, price)
		})
		return respondState(e, state)
	}
}

// HandleCustomWorkTypeCreate returns a handler that appends a user-defined
// work type to a room. Custom work types bill the sum of their items.
func HandleCustomWorkTypeCreate(app *pocketbase.PocketBase, drafts *Drafts) func(*core.RequestEvent) error {
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
			return jsonError(e, http.StatusBadRequest, "Nazwa pracy jest wymagana")
		}
		unit := services.WorkUnit(e.Request.FormValue("unit"))
		switch unit {
		case services.UnitArea, services.UnitLinear, services.UnitCount:
		default:
			return jsonError(e, http.StatusBadRequest, "Nieprawidłowa jednostka")
		}
		price, ok := formFloat(e, "price")
		if !ok || price < 0 {
			return jsonError(e, http.StatusBadRequest, "Cena nie może być ujemna")
		}

		sid := sessionID(e)
		if _, found := drafts.Get(sid).RoomByID(roomID); !found {
			return jsonError(e, http.StatusNotFound, "Nie znaleziono pomieszczenia")
		}

		state := drafts.Update(sid, func(s services.State) services.State {
			return s.AddCustomWorkType(roomID, name, unit, price)
		})
		return respondState(e, state)
	}
}

// HandleCustomWorkItemAdd returns a handler that appends a manually entered
// quantity to a custom work type.
func HandleCustomWorkItemAdd(app *pocketbase.PocketBase, drafts *Drafts) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		roomID, workTypeID, ok := workTypeIDs(e)
		if !ok {
			return jsonError(e, http.StatusBadRequest, "Brak wymaganych identyfikatorów")
		}
		if err := e.Request.ParseForm(); err != nil {
			return jsonError(e, http.StatusBadRequest, "Nieprawidłowe dane formularza")
		}
		value, ok := formFloat(e, "value")
		if !ok || value <= 0 {
			return jsonError(e, http.StatusBadRequest, "Wartość musi być większa od zera")
		}

		state := drafts.Update(sessionID(e), func(s services.State) services.State {
			return s.AddCustomWorkItem(roomID, workTypeID, value)
		})
		return respondState(e, state)
	}
}

// HandleCustomWorkItemDelete returns a handler that removes a custom item.
func HandleCustomWorkItemDelete(app *pocketbase.PocketBase, drafts *Drafts) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		roomID, workTypeID, ok := workTypeIDs(e)
		if !ok {
			return jsonError(e, http.StatusBadRequest, "Brak wymaganych identyfikatorów")
		}
		itemID := e.Request.PathValue("itemId")
		if itemID == "" {
			return jsonError(e, http.StatusBadRequest, "Brak identyfikatora pozycji")
		}

		state := drafts.Update(sessionID(e), func(s services.State) services.State {
			return s.DeleteCustomWorkItem(roomID, workTypeID, itemID)
		})
		return respondState(e, state)
	}
}

// HandleWorkTypeDelete returns a handler that removes a work type entirely.
// Built-in work types are deletable the same as custom ones.
func HandleWorkTypeDelete(app *pocketbase.PocketBase, drafts *Drafts) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		roomID, workTypeID, ok := workTypeIDs(e)
		if !ok {
			return jsonError(e, http.StatusBadRequest, "Brak wymaganych identyfikatorów")
		}

		state := drafts.Update(sessionID(e), func(s services.State) services.State {
			return s.DeleteWorkType(roomID, workTypeID)
		})
		return respondState(e, state)
	}
}
