package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"wycena/services"
)

// WorkTypeView is a work type with its resolved quantity and contribution.
type WorkTypeView struct {
	services.WorkType
	Quantity  float64 `json:"quantity"`
	UnitLabel string  `json:"unitLabel"`
	Total     float64 `json:"total"`
}

// RoomView is a room snapshot plus its computed total.
type RoomView struct {
	services.Room
	WorkTypeViews []WorkTypeView `json:"workTypeViews"`
	Total         float64        `json:"total"`
	TotalLabel    string         `json:"totalLabel"`
}

// StateView is the full read model a client needs to render the calculator.
type StateView struct {
	Rooms           []RoomView `json:"rooms"`
	VatRate         int        `json:"vatRate"`
	PreparedBy      string     `json:"preparedBy"`
	QuoteID         string     `json:"quoteId"`
	QuoteName       string     `json:"quoteName"`
	GrandTotal      float64    `json:"grandTotal"`
	GrossTotal      float64    `json:"grossTotal"`
	GrandTotalLabel string     `json:"grandTotalLabel"`
	GrossTotalLabel string     `json:"grossTotalLabel"`
}

// buildStateView computes every derived number the UI shows. Safe to call
// on every request; the engine queries are pure.
func buildStateView(s services.State) StateView {
	view := StateView{
		Rooms:      make([]RoomView, 0, len(s.Rooms)),
		VatRate:    s.VatRate,
		PreparedBy: s.PreparedBy,
		QuoteID:    s.QuoteID,
		QuoteName:  s.QuoteName,
	}

	for _, room := range s.Rooms {
		roomView := RoomView{
			Room:  room,
			Total: services.RoomTotal(room),
		}
		roomView.TotalLabel = services.FormatPLN(roomView.Total)
		for _, wt := range room.WorkTypes {
			qty := services.ResolveQuantity(room, wt)
			roomView.WorkTypeViews = append(roomView.WorkTypeViews, WorkTypeView{
				WorkType:  wt,
				Quantity:  qty,
				UnitLabel: services.UnitLabel(wt.Unit),
				Total:     qty * wt.PricePerUnit,
			})
		}
		view.Rooms = append(view.Rooms, roomView)
	}

	view.GrandTotal = s.GrandTotal()
	view.GrossTotal = s.GrossTotal()
	view.GrandTotalLabel = services.FormatPLN(view.GrandTotal)
	view.GrossTotalLabel = services.FormatPLN(view.GrossTotal)
	return view
}

// respondState renders the current draft as the full read model.
func respondState(e *core.RequestEvent, s services.State) error {
	return e.JSON(http.StatusOK, buildStateView(s))
}

// HandleCalculatorState returns a handler serving the draft read model.
func HandleCalculatorState(app *pocketbase.PocketBase, drafts *Drafts) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return respondState(e, drafts.Get(sessionID(e)))
	}
}
