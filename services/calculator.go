// Package services provides the quote calculation engine: room state,
// quantity resolution and net/gross totals for interior finishing work.
package services

import (
	"github.com/pocketbase/pocketbase/tools/security"
)

// WorkUnit is the unit of measure of a work type.
type WorkUnit string

const (
	UnitArea   WorkUnit = "m2"  // square meters
	UnitLinear WorkUnit = "mb"  // linear meters (metry bieżące)
	UnitCount  WorkUnit = "szt" // pieces (sztuki)
)

// VAT rates legal for finishing work quotes (percentage points).
const (
	VatRateReduced  = 8
	VatRateStandard = 23
)

// DefaultVatRate is applied to new drafts and to loaded quotes whose
// persisted rate is not a legal value.
const DefaultVatRate = VatRateStandard

// ValidVatRate reports whether rate is one of the legal VAT rates.
func ValidVatRate(rate int) bool {
	return rate == VatRateReduced || rate == VatRateStandard
}

// AreaItem is a single wall or ceiling surface measurement.
type AreaItem struct {
	ID   string  `json:"id"`
	Area float64 `json:"area"`
}

// LinearItem is a single corner, groove or acrylic-sealing measurement.
type LinearItem struct {
	ID     string  `json:"id"`
	Length float64 `json:"length"`
}

// CustomItem is one manually entered quantity of a custom work type.
type CustomItem struct {
	ID    string  `json:"id"`
	Value float64 `json:"value"`
}

// WorkType is a priced category of labor within a room.
//
// The price JSON key is "pricePerMeter" regardless of unit: quotes saved by
// earlier clients use that key, and changing it would orphan their data.
type WorkType struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	PricePerUnit float64      `json:"pricePerMeter"`
	Enabled      bool         `json:"enabled"`
	Unit         WorkUnit     `json:"unit"`
	IsCustom     bool         `json:"isCustom,omitempty"`
	CustomItems  []CustomItem `json:"customItems,omitempty"`
}

// Room is one measured room with its work types and cached totals.
// The cached totals always equal the sum of their backing collections;
// every mutating transition in store.go recomputes them in the same step.
type Room struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Walls            []AreaItem   `json:"walls"`
	Ceilings         []AreaItem   `json:"ceilings"`
	WorkTypes        []WorkType   `json:"workTypes"`
	Corners          []LinearItem `json:"corners"`
	Grooves          []LinearItem `json:"grooves"`
	Acrylic          []LinearItem `json:"acrylic"`
	FloorProtection  float64      `json:"floorProtection"`
	TotalWallArea    float64      `json:"totalWallArea"`
	TotalCeilingArea float64      `json:"totalCeilingArea"`
	TotalCorners     float64      `json:"totalCorners"`
	TotalGrooves     float64      `json:"totalGrooves"`
	TotalAcrylic     float64      `json:"totalAcrylic"`
	NetArea          float64      `json:"netArea"`
}

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewID returns an opaque identifier for rooms, measurement items and
// work types. Uniqueness only has to hold within a single quote.
func NewID() string {
	return security.RandomStringWithAlphabet(9, idAlphabet)
}

// DefaultRoomName is used when a room is created without a name.
const DefaultRoomName = "Nowy pokój"

// DefaultWorkTypes returns the seven built-in work types every new room
// starts with, all disabled and unpriced. The names are load-bearing:
// the quantity resolver dispatches on them (see quantity.go).
func DefaultWorkTypes() []WorkType {
	return []WorkType{
		{ID: NewID(), Name: "Malowanie", Unit: UnitArea},
		{ID: NewID(), Name: "Gruntowanie", Unit: UnitArea},
		{ID: NewID(), Name: "Szpachlowanie", Unit: UnitArea},
		{ID: NewID(), Name: "Oklejanie (zabezpieczenie posadzki)", Unit: UnitArea},
		{ID: NewID(), Name: "Narożniki", Unit: UnitLinear},
		{ID: NewID(), Name: "Zarzucanie bruzd", Unit: UnitLinear},
		{ID: NewID(), Name: "Akrylowanie", Unit: UnitLinear},
	}
}

// NewRoom creates an empty room with the default work types.
func NewRoom(name string) Room {
	if name == "" {
		name = DefaultRoomName
	}
	return Room{
		ID:        NewID(),
		Name:      name,
		Walls:     []AreaItem{},
		Ceilings:  []AreaItem{},
		WorkTypes: DefaultWorkTypes(),
		Corners:   []LinearItem{},
		Grooves:   []LinearItem{},
		Acrylic:   []LinearItem{},
	}
}

// clone returns a deep copy of the room so transitions can modify it
// without touching the snapshot previous readers hold.
func (r Room) clone() Room {
	c := r
	c.Walls = append([]AreaItem(nil), r.Walls...)
	c.Ceilings = append([]AreaItem(nil), r.Ceilings...)
	c.Corners = append([]LinearItem(nil), r.Corners...)
	c.Grooves = append([]LinearItem(nil), r.Grooves...)
	c.Acrylic = append([]LinearItem(nil), r.Acrylic...)
	c.WorkTypes = make([]WorkType, len(r.WorkTypes))
	for i, wt := range r.WorkTypes {
		wtc := wt
		if wt.CustomItems != nil {
			wtc.CustomItems = append([]CustomItem(nil), wt.CustomItems...)
		}
		c.WorkTypes[i] = wtc
	}
	return c
}

func sumAreas(items []AreaItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Area
	}
	return sum
}

func sumLengths(items []LinearItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Length
	}
	return sum
}
