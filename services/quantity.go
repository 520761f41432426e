package services

import "strings"

// ResolveQuantity derives the billable quantity for a work type from the
// room's measurements.
//
// Priority order, first match wins:
//  1. custom work types sum their own items, whatever their declared unit;
//  2. area-unit types bill the floor protection area when the name contains
//     "Oklejanie", otherwise the net area (walls + ceilings);
//  3. everything else dispatches on name: "Narożniki"/"Narozniki" (both
//     spellings survive encoding mishaps) bill the corner length, "bruzd"
//     the groove length, "Akrylowanie" the acrylic length, anything else 0.
//
// Matching is case-sensitive substring containment. Renaming a built-in
// work type away from its keyword zeroes its quantity.
func ResolveQuantity(room Room, wt WorkType) float64 {
	if wt.IsCustom {
		var sum float64
		for _, item := range wt.CustomItems {
			sum += item.Value
		}
		return sum
	}

	if wt.Unit == UnitArea {
		if strings.Contains(wt.Name, "Oklejanie") {
			return room.FloorProtection
		}
		return room.NetArea
	}

	switch {
	case strings.Contains(wt.Name, "Narożniki"), strings.Contains(wt.Name, "Narozniki"):
		return room.TotalCorners
	case strings.Contains(wt.Name, "bruzd"):
		return room.TotalGrooves
	case strings.Contains(wt.Name, "Akrylowanie"):
		return room.TotalAcrylic
	}
	return 0
}
