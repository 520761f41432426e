package services

import "testing"

// enableByName toggles on the first work type whose name matches and sets
// its price.
func enableByName(t *testing.T, s State, roomID, name string, price float64) State {
	t.Helper()
	room, ok := s.RoomByID(roomID)
	if !ok {
		t.Fatalf("room %s not found", roomID)
	}
	for _, wt := range room.WorkTypes {
		if wt.Name == name {
			s = s.ToggleWorkType(roomID, wt.ID)
			return s.UpdateWorkTypePrice(roomID, wt.ID, price)
		}
	}
	t.Fatalf("work type %q not found", name)
	return s
}

func TestRoomTotalPaintingScenario(t *testing.T) {
	s := NewState()
	s, roomID := s.CreateRoom("Salon")
	s = s.AddWall(roomID, 10)
	s = s.AddCeiling(roomID, 5)
	s = enableByName(t, s, roomID, "Malowanie", 20)

	room, _ := s.RoomByID(roomID)
	if room.NetArea != 15 {
		t.Fatalf("NetArea = %v, want 15", room.NetArea)
	}
	if got := RoomTotal(room); got != 300 {
		t.Errorf("RoomTotal = %v, want 300", got)
	}
}

func TestRoomTotalFloorProtectionScenario(t *testing.T) {
	s := NewState()
	s, roomID := s.CreateRoom("Salon")
	s = s.AddWall(roomID, 10)
	s = s.SetFloorProtection(roomID, 8)
	s = enableByName(t, s, roomID, "Oklejanie (zabezpieczenie posadzki)", 5)

	room, _ := s.RoomByID(roomID)
	// Bills the floor protection area, not the net area.
	if got := RoomTotal(room); got != 40 {
		t.Errorf("RoomTotal = %v, want 40", got)
	}
}

func TestRoomTotalExcludesDisabled(t *testing.T) {
	s := NewState()
	s, roomID := s.CreateRoom("Salon")
	s = s.AddWall(roomID, 10)
	s = enableByName(t, s, roomID, "Malowanie", 20)
	s = enableByName(t, s, roomID, "Gruntowanie", 10)

	room, _ := s.RoomByID(roomID)
	if got := RoomTotal(room); got != 300 {
		t.Fatalf("RoomTotal = %v, want 300", got)
	}

	// Disable painting again: its contribution drops to zero but the
	// measurements stay.
	for _, wt := range room.WorkTypes {
		if wt.Name == "Malowanie" {
			s = s.ToggleWorkType(roomID, wt.ID)
		}
	}
	room, _ = s.RoomByID(roomID)
	if got := RoomTotal(room); got != 100 {
		t.Errorf("RoomTotal after disable = %v, want 100", got)
	}
	if room.NetArea != 10 {
		t.Error("disabling a work type must not touch measurements")
	}
}

func TestRoomTotalCustomWorkTypeScenario(t *testing.T) {
	s := NewState()
	s, roomID := s.CreateRoom("Salon")
	s = s.AddCustomWorkType(roomID, "Montaż gniazdek", UnitCount, 50)

	room, _ := s.RoomByID(roomID)
	customID := room.WorkTypes[len(room.WorkTypes)-1].ID
	s = s.AddCustomWorkItem(roomID, customID, 2)
	s = s.AddCustomWorkItem(roomID, customID, 3)

	room, _ = s.RoomByID(roomID)
	if got := RoomTotal(room); got != 250 {
		t.Errorf("RoomTotal = %v, want 250", got)
	}
}

func TestGrandAndGrossTotals(t *testing.T) {
	s := NewState()
	s, firstID := s.CreateRoom("Salon")
	s = s.AddWall(firstID, 15)
	s = enableByName(t, s, firstID, "Malowanie", 20) // 300

	s, secondID := s.CreateRoom("Kuchnia")
	s = s.AddWall(secondID, 15)
	s = enableByName(t, s, secondID, "Gruntowanie", 10) // 150

	if got := s.GrandTotal(); got != 450 {
		t.Fatalf("GrandTotal = %v, want 450", got)
	}

	s = s.SetVatRate(23)
	if got := s.GrossTotal(); got != 553.5 {
		t.Errorf("GrossTotal at 23%% = %v, want 553.5", got)
	}

	s = s.SetVatRate(8)
	rate := float64(8)
	if got, want := s.GrossTotal(), 450*(1+rate/100); got != want {
		t.Errorf("GrossTotal at 8%% = %v, want %v", got, want)
	}
}

func TestGrossTotalIdentity(t *testing.T) {
	tests := []struct {
		net     float64
		vatRate int
	}{
		{0, 23},
		{100, 23},
		{100, 8},
		{450, 23},
		{450, 8},
		{0.03, 23},
		{1234.56, 23},
	}

	for _, tt := range tests {
		rate := float64(tt.vatRate)
		if got, want := GrossTotal(tt.net, tt.vatRate), tt.net*(1+rate/100); got != want {
			t.Errorf("GrossTotal(%v, %d) = %v, want %v", tt.net, tt.vatRate, got, want)
		}
		if got, want := VatAmount(tt.net, tt.vatRate), tt.net*rate/100; got != want {
			t.Errorf("VatAmount(%v, %d) = %v, want %v", tt.net, tt.vatRate, got, want)
		}
	}
}

func TestEmptyStateTotals(t *testing.T) {
	s := NewState()
	if s.GrandTotal() != 0 {
		t.Error("empty draft should have zero net total")
	}
	if s.GrossTotal() != 0 {
		t.Error("empty draft should have zero gross total")
	}
}
