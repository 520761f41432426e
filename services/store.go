package services

// State is one immutable snapshot of the calculator: the ordered room list
// plus quote-level settings. Every transition returns a new snapshot and
// leaves the receiver untouched, so a reader holding an old State never
// observes a partially applied mutation.
//
// Transitions are total: unknown ids and non-positive "add" values degrade
// to no-ops instead of errors.
type State struct {
	Rooms      []Room `json:"rooms"`
	VatRate    int    `json:"vatRate"`
	PreparedBy string `json:"preparedBy"`
	QuoteID    string `json:"quoteId"`
	QuoteName  string `json:"quoteName"`
}

// NewState returns an empty, unsaved draft with the default VAT rate.
func NewState() State {
	return State{Rooms: []Room{}, VatRate: DefaultVatRate}
}

// updateRoom replaces the room with the given id using fn, cloning it
// first. Returns s unchanged when the id is unknown.
func (s State) updateRoom(roomID string, fn func(*Room)) State {
	for i, room := range s.Rooms {
		if room.ID != roomID {
			continue
		}
		rooms := append([]Room(nil), s.Rooms...)
		updated := room.clone()
		fn(&updated)
		rooms[i] = updated
		s.Rooms = rooms
		return s
	}
	return s
}

// CreateRoom prepends a new room with the default work types and returns
// the new snapshot together with the room's id.
func (s State) CreateRoom(name string) (State, string) {
	room := NewRoom(name)
	rooms := make([]Room, 0, len(s.Rooms)+1)
	rooms = append(rooms, room)
	rooms = append(rooms, s.Rooms...)
	s.Rooms = rooms
	return s, room.ID
}

// DeleteRoom removes the room; unknown ids are a no-op.
func (s State) DeleteRoom(roomID string) State {
	rooms := make([]Room, 0, len(s.Rooms))
	for _, room := range s.Rooms {
		if room.ID != roomID {
			rooms = append(rooms, room)
		}
	}
	s.Rooms = rooms
	return s
}

// UpdateRoomName renames the room. No totals depend on the name.
func (s State) UpdateRoomName(roomID, name string) State {
	return s.updateRoom(roomID, func(r *Room) {
		r.Name = name
	})
}

// AddWall appends a wall area and recomputes the wall and net area totals.
func (s State) AddWall(roomID string, area float64) State {
	if area <= 0 {
		return s
	}
	return s.updateRoom(roomID, func(r *Room) {
		r.Walls = append(r.Walls, AreaItem{ID: NewID(), Area: area})
		r.recalcAreas()
	})
}

// DeleteWall removes a wall by id and recomputes the area totals.
func (s State) DeleteWall(roomID, itemID string) State {
	return s.updateRoom(roomID, func(r *Room) {
		r.Walls = deleteAreaItem(r.Walls, itemID)
		r.recalcAreas()
	})
}

// AddCeiling appends a ceiling area and recomputes the area totals.
func (s State) AddCeiling(roomID string, area float64) State {
	if area <= 0 {
		return s
	}
	return s.updateRoom(roomID, func(r *Room) {
		r.Ceilings = append(r.Ceilings, AreaItem{ID: NewID(), Area: area})
		r.recalcAreas()
	})
}

// DeleteCeiling removes a ceiling by id and recomputes the area totals.
func (s State) DeleteCeiling(roomID, itemID string) State {
	return s.updateRoom(roomID, func(r *Room) {
		r.Ceilings = deleteAreaItem(r.Ceilings, itemID)
		r.recalcAreas()
	})
}

// AddCorner appends a corner length and recomputes the corner total.
func (s State) AddCorner(roomID string, length float64) State {
	if length <= 0 {
		return s
	}
	return s.updateRoom(roomID, func(r *Room) {
		r.Corners = append(r.Corners, LinearItem{ID: NewID(), Length: length})
		r.TotalCorners = sumLengths(r.Corners)
	})
}

// DeleteCorner removes a corner by id and recomputes the corner total.
func (s State) DeleteCorner(roomID, itemID string) State {
	return s.updateRoom(roomID, func(r *Room) {
		r.Corners = deleteLinearItem(r.Corners, itemID)
		r.TotalCorners = sumLengths(r.Corners)
	})
}

// AddGroove appends a groove length and recomputes the groove total.
func (s State) AddGroove(roomID string, length float64) State {
	if length <= 0 {
		return s
	}
	return s.updateRoom(roomID, func(r *Room) {
		r.Grooves = append(r.Grooves, LinearItem{ID: NewID(), Length: length})
		r.TotalGrooves = sumLengths(r.Grooves)
	})
}

// DeleteGroove removes a groove by id and recomputes the groove total.
func (s State) DeleteGroove(roomID, itemID string) State {
	return s.updateRoom(roomID, func(r *Room) {
		r.Grooves = deleteLinearItem(r.Grooves, itemID)
		r.TotalGrooves = sumLengths(r.Grooves)
	})
}

// AddAcrylic appends an acrylic-sealing length and recomputes its total.
func (s State) AddAcrylic(roomID string, length float64) State {
	if length <= 0 {
		return s
	}
	return s.updateRoom(roomID, func(r *Room) {
		r.Acrylic = append(r.Acrylic, LinearItem{ID: NewID(), Length: length})
		r.TotalAcrylic = sumLengths(r.Acrylic)
	})
}

// DeleteAcrylic removes an acrylic item by id and recomputes its total.
func (s State) DeleteAcrylic(roomID, itemID string) State {
	return s.updateRoom(roomID, func(r *Room) {
		r.Acrylic = deleteLinearItem(r.Acrylic, itemID)
		r.TotalAcrylic = sumLengths(r.Acrylic)
	})
}

// SetFloorProtection sets the floor protection area to an absolute value.
// Callers wanting additive behavior read the current value first.
func (s State) SetFloorProtection(roomID string, area float64) State {
	return s.updateRoom(roomID, func(r *Room) {
		r.FloorProtection = area
	})
}

// ToggleWorkType flips the enabled flag of a work type.
func (s State) ToggleWorkType(roomID, workTypeID string) State {
	return s.updateRoom(roomID, func(r *Room) {
		for i := range r.WorkTypes {
			if r.WorkTypes[i].ID == workTypeID {
				r.WorkTypes[i].Enabled = !r.WorkTypes[i].Enabled
			}
		}
	})
}

// UpdateWorkTypePrice sets the price per unit of a work type.
func (s State) UpdateWorkTypePrice(roomID, workTypeID string, price float64) State {
	return s.updateRoom(roomID, func(r *Room) {
		for i := range r.WorkTypes {
			if r.WorkTypes[i].ID == workTypeID {
				r.WorkTypes[i].PricePerUnit = price
			}
		}
	})
}

// AddCustomWorkType appends a user-defined work type, enabled immediately,
// whose quantity is the sum of its custom items.
func (s State) AddCustomWorkType(roomID, name string, unit WorkUnit, price float64) State {
	return s.updateRoom(roomID, func(r *Room) {
		r.WorkTypes = append(r.WorkTypes, WorkType{
			ID:           NewID(),
			Name:         name,
			Unit:         unit,
			PricePerUnit: price,
			Enabled:      true,
			IsCustom:     true,
			CustomItems:  []CustomItem{},
		})
	})
}

// AddCustomWorkItem appends a manually entered quantity to a custom work type.
func (s State) AddCustomWorkItem(roomID, workTypeID string, value float64) State {
	if value <= 0 {
		return s
	}
	return s.updateRoom(roomID, func(r *Room) {
		for i := range r.WorkTypes {
			if r.WorkTypes[i].ID == workTypeID {
				r.WorkTypes[i].CustomItems = append(r.WorkTypes[i].CustomItems, CustomItem{ID: NewID(), Value: value})
			}
		}
	})
}

// DeleteCustomWorkItem removes a custom item by id.
func (s State) DeleteCustomWorkItem(roomID, workTypeID, itemID string) State {
	return s.updateRoom(roomID, func(r *Room) {
		for i := range r.WorkTypes {
			if r.WorkTypes[i].ID != workTypeID {
				continue
			}
			items := make([]CustomItem, 0, len(r.WorkTypes[i].CustomItems))
			for _, it := range r.WorkTypes[i].CustomItems {
				if it.ID != itemID {
					items = append(items, it)
				}
			}
			r.WorkTypes[i].CustomItems = items
		}
	})
}

// DeleteWorkType removes a work type entirely. Built-ins are deletable the
// same as customs; the UI offers no distinction and neither does the engine.
func (s State) DeleteWorkType(roomID, workTypeID string) State {
	return s.updateRoom(roomID, func(r *Room) {
		workTypes := make([]WorkType, 0, len(r.WorkTypes))
		for _, wt := range r.WorkTypes {
			if wt.ID != workTypeID {
				workTypes = append(workTypes, wt)
			}
		}
		r.WorkTypes = workTypes
	})
}

// SetVatRate switches the VAT rate; values other than 8 and 23 are ignored.
func (s State) SetVatRate(rate int) State {
	if !ValidVatRate(rate) {
		return s
	}
	s.VatRate = rate
	return s
}

// SetPreparedBy sets the "prepared by" label printed on exports.
func (s State) SetPreparedBy(name string) State {
	s.PreparedBy = name
	return s
}

// SetQuoteName renames the draft without touching its saved identity.
func (s State) SetQuoteName(name string) State {
	s.QuoteName = name
	return s
}

// LoadQuote replaces the whole draft from a persisted quote snapshot.
// A persisted VAT rate outside the legal set falls back to the default.
func (s State) LoadQuote(quoteID, quoteName string, rooms []Room, vatRate int, preparedBy string) State {
	if !ValidVatRate(vatRate) {
		vatRate = DefaultVatRate
	}
	s.QuoteID = quoteID
	s.QuoteName = quoteName
	s.Rooms = rooms
	s.VatRate = vatRate
	if preparedBy != "" {
		s.PreparedBy = preparedBy
	}
	return s
}

// Clear resets the draft to an empty, unsaved state. The VAT rate and
// prepared-by label survive, matching the behavior of starting a new quote.
func (s State) Clear() State {
	s.QuoteID = ""
	s.QuoteName = ""
	s.Rooms = []Room{}
	return s
}

// RoomByID returns the room and whether it exists.
func (s State) RoomByID(roomID string) (Room, bool) {
	for _, room := range s.Rooms {
		if room.ID == roomID {
			return room, true
		}
	}
	return Room{}, false
}

// recalcAreas recomputes the wall, ceiling and net area totals from the
// backing collections.
func (r *Room) recalcAreas() {
	r.TotalWallArea = sumAreas(r.Walls)
	r.TotalCeilingArea = sumAreas(r.Ceilings)
	r.NetArea = r.TotalWallArea + r.TotalCeilingArea
}

func deleteAreaItem(items []AreaItem, itemID string) []AreaItem {
	out := make([]AreaItem, 0, len(items))
	for _, it := range items {
		if it.ID != itemID {
			out = append(out, it)
		}
	}
	return out
}

func deleteLinearItem(items []LinearItem, itemID string) []LinearItem {
	out := make([]LinearItem, 0, len(items))
	for _, it := range items {
		if it.ID != itemID {
			out = append(out, it)
		}
	}
	return out
}
