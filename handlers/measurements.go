package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"wycena/services"
)

// MeasurementKind identifies one of the room's five measurement collections.
type MeasurementKind int

const (
	MeasurementWalls MeasurementKind = iota
	MeasurementCeilings
	MeasurementCorners
	MeasurementGrooves
	MeasurementAcrylic
)

// HandleMeasurementAdd returns a handler that appends a measurement of the
// given kind to a room. The value is the area (m²) for walls/ceilings and
// the length (mb) for corners/grooves/acrylic; it must be positive.
func HandleMeasurementAdd(app *pocketbase.PocketBase, drafts *Drafts, kind MeasurementKind) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		roomID := e.Request.PathValue("roomId")
		if roomID == "" {
			return jsonError(e, http.StatusBadRequest, "Brak identyfikatora pomieszczenia")
		}
		if err := e.Request.ParseForm(); err != nil {
			return jsonError(e, http.StatusBadRequest, "Nieprawidłowe dane formularza")
		}
		value, ok := formFloat(e, "value")
		if !ok || value <= 0 {
			return jsonError(e, http.StatusBadRequest, "Wartość musi być większa od zera")
		}

		sid := sessionID(e)
		if _, found := drafts.Get(sid).RoomByID(roomID); !found {
			return jsonError(e, http.StatusNotFound, "Nie znaleziono pomieszczenia")
		}

		state := drafts.Update(sid, func(s services.State) services.State {
			switch kind {
			case MeasurementWalls:
				return s.AddWall(roomID, value)
			case MeasurementCeilings:
				return s.AddCeiling(roomID, value)
			case MeasurementCorners:
				return s.AddCorner(roomID, value)
			case MeasurementGrooves:
				return s.AddGroove(roomID, value)
			default:
				return s.AddAcrylic(roomID, value)
			}
		})
		return respondState(e, state)
	}
}

// HandleMeasurementDelete returns a handler that removes a measurement item
// by id. Unknown item ids are a no-op; the repeated delete of a retried
// request changes nothing.
func HandleMeasurementDelete(app *pocketbase.PocketBase, drafts *Drafts, kind MeasurementKind) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		roomID := e.Request.PathValue("roomId")
		itemID := e.Request.PathValue("itemId")
		if roomID == "" || itemID == "" {
			return jsonError(e, http.StatusBadRequest, "Brak wymaganych identyfikatorów")
		}

		state := drafts.Update(sessionID(e), func(s services.State) services.State {
			switch kind {
			case MeasurementWalls:
				return s.DeleteWall(roomID, itemID)
			case MeasurementCeilings:
				return s.DeleteCeiling(roomID, itemID)
			case MeasurementCorners:
				return s.DeleteCorner(roomID, itemID)
			case MeasurementGrooves:
				return s.DeleteGroove(roomID, itemID)
			default:
				return s.DeleteAcrylic(roomID, itemID)
			}
		})
		return respondState(e, state)
	}
}

// HandleFloorProtection returns a handler that sets the floor protection
// area to an absolute value. Zero is allowed: it clears the measurement.
func HandleFloorProtection(app *pocketbase.PocketBase, drafts *Drafts) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		roomID := e.Request.PathValue("roomId")
		if roomID == "" {
			return jsonError(e, http.StatusBadRequest, "Brak identyfikatora pomieszczenia")
		}
		if err := e.Request.ParseForm(); err != nil {
			return jsonError(e, http.StatusBadRequest, "Nieprawidłowe dane formularza")
		}
		value, ok := formFloat(e, "value")
		if !ok || value < 0 {
			return jsonError(e, http.StatusBadRequest, "Wartość nie może być ujemna")
		}

		sid := sessionID(e)
		if _, found := drafts.Get(sid).RoomByID(roomID); !found {
			return jsonError(e, http.StatusNotFound, "Nie znaleziono pomieszczenia")
		}

		state := drafts.Update(sid, func(s services.State) services.State {
			return s.SetFloorProtection(roomID, value)
		})
		return respondState(e, state)
	}
}
