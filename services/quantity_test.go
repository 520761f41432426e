package services

import "testing"

// measuredRoom builds a room with known measurements through the regular
// transitions, so the cached totals are in play.
func measuredRoom(t *testing.T) (State, string) {
	t.Helper()
	s := NewState()
	s, roomID := s.CreateRoom("Salon")
	s = s.AddWall(roomID, 10)
	s = s.AddCeiling(roomID, 5)
	s = s.AddCorner(roomID, 4)
	s = s.AddGroove(roomID, 6)
	s = s.AddAcrylic(roomID, 7)
	s = s.SetFloorProtection(roomID, 8)
	return s, roomID
}

func TestResolveQuantityBuiltins(t *testing.T) {
	s, roomID := measuredRoom(t)
	room, _ := s.RoomByID(roomID)

	tests := []struct {
		name   string
		wtName string
		unit   WorkUnit
		want   float64
	}{
		{"painting bills net area", "Malowanie", UnitArea, 15},
		{"priming bills net area", "Gruntowanie", UnitArea, 15},
		{"floor protection bills its own area", "Oklejanie (zabezpieczenie posadzki)", UnitArea, 8},
		{"corners with diacritics", "Narożniki", UnitLinear, 4},
		{"corners without diacritics", "Narozniki aluminiowe", UnitLinear, 4},
		{"grooves", "Zarzucanie bruzd", UnitLinear, 6},
		{"acrylic", "Akrylowanie", UnitLinear, 7},
		{"unknown linear name", "Listwy przypodłogowe", UnitLinear, 0},
		{"non-custom count falls through name dispatch", "Gniazdka", UnitCount, 0},
		{"matching is case-sensitive", "narożniki", UnitLinear, 0},
		{"renamed builtin loses its quantity", "Makeover", UnitLinear, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wt := WorkType{ID: "wt", Name: tt.wtName, Unit: tt.unit}
			if got := ResolveQuantity(room, wt); got != tt.want {
				t.Errorf("ResolveQuantity(%q, %s) = %v, want %v", tt.wtName, tt.unit, got, tt.want)
			}
		})
	}
}

func TestResolveQuantityCustomSumsItems(t *testing.T) {
	s, roomID := measuredRoom(t)
	room, _ := s.RoomByID(roomID)

	for _, unit := range []WorkUnit{UnitArea, UnitLinear, UnitCount} {
		wt := WorkType{
			ID:       "wt",
			Name:     "Własna praca",
			Unit:     unit,
			IsCustom: true,
			CustomItems: []CustomItem{
				{ID: "a", Value: 2},
				{ID: "b", Value: 3.5},
			},
		}
		if got := ResolveQuantity(room, wt); got != 5.5 {
			t.Errorf("custom quantity with unit %s = %v, want 5.5", unit, got)
		}
	}
}

func TestResolveQuantityCustomPrecedesNameDispatch(t *testing.T) {
	s, roomID := measuredRoom(t)
	room, _ := s.RoomByID(roomID)

	// A custom type whose name matches the floor-protection keyword must
	// still bill its own items, not the floor protection area.
	wt := WorkType{
		ID:          "wt",
		Name:        "Oklejanie okien",
		Unit:        UnitArea,
		IsCustom:    true,
		CustomItems: []CustomItem{{ID: "a", Value: 1}},
	}
	if got := ResolveQuantity(room, wt); got != 1 {
		t.Errorf("custom check must run before name dispatch, got %v", got)
	}
}

func TestResolveQuantityCustomWithoutItems(t *testing.T) {
	s, roomID := measuredRoom(t)
	room, _ := s.RoomByID(roomID)

	wt := WorkType{ID: "wt", Name: "Pusta praca", Unit: UnitCount, IsCustom: true}
	if got := ResolveQuantity(room, wt); got != 0 {
		t.Errorf("custom type without items = %v, want 0", got)
	}
}
