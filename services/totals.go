package services

// RoomTotal sums quantity × price over the room's enabled work types.
// Disabled work types keep their measurements but contribute nothing.
func RoomTotal(room Room) float64 {
	var total float64
	for _, wt := range room.WorkTypes {
		if !wt.Enabled {
			continue
		}
		total += ResolveQuantity(room, wt) * wt.PricePerUnit
	}
	return total
}

// GrandTotal sums the room totals. The result is net (pre-VAT).
func GrandTotal(rooms []Room) float64 {
	var total float64
	for _, room := range rooms {
		total += RoomTotal(room)
	}
	return total
}

// GrossTotal applies the VAT rate (percentage points) to a net total.
// The result is exactly netTotal * (1 + rate/100); VatAmount is a separate
// display figure and may differ from GrossTotal-netTotal by an ulp.
func GrossTotal(netTotal float64, vatRate int) float64 {
	return netTotal * (1 + float64(vatRate)/100)
}

// VatAmount is the VAT portion of a net total.
func VatAmount(netTotal float64, vatRate int) float64 {
	return netTotal * float64(vatRate) / 100
}

// GrandTotal returns the net total of the whole draft.
func (s State) GrandTotal() float64 {
	return GrandTotal(s.Rooms)
}

// GrossTotal returns the VAT-inclusive total of the whole draft.
func (s State) GrossTotal() float64 {
	return GrossTotal(GrandTotal(s.Rooms), s.VatRate)
}
