package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"wycena/services"
)

type presetDef struct {
	name           string
	unit           services.WorkUnit
	suggestedPrice float64
	sortOrder      int
}

// Price suggestions are starting points for the UI, not bindings; the
// engine only ever bills the price the user sets on the room.
var defaultPresets = []presetDef{
	{"Malowanie", services.UnitArea, 18, 1},
	{"Gruntowanie", services.UnitArea, 8, 2},
	{"Szpachlowanie", services.UnitArea, 30, 3},
	{"Oklejanie (zabezpieczenie posadzki)", services.UnitArea, 6, 4},
	{"Narożniki", services.UnitLinear, 14, 5},
	{"Zarzucanie bruzd", services.UnitLinear, 12, 6},
	{"Akrylowanie", services.UnitLinear, 10, 7},
}

// Seed fills work_type_presets with the seven built-in work types when the
// collection is empty. Runs on every startup; existing data is left alone.
func Seed(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("work_type_presets")
	if err != nil {
		return fmt.Errorf("find work_type_presets collection: %w", err)
	}

	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("query work_type_presets: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, def := range defaultPresets {
		record := core.NewRecord(col)
		record.Set("name", def.name)
		record.Set("unit", string(def.unit))
		record.Set("suggested_price", def.suggestedPrice)
		record.Set("sort_order", def.sortOrder)

		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed preset %q: %w", def.name, err)
		}
	}

	fmt.Printf("Seeded %d work type presets\n", len(defaultPresets))
	return nil
}
