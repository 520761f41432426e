package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// PresetView is one suggested work type price.
type PresetView struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Unit           string  `json:"unit"`
	SuggestedPrice float64 `json:"suggestedPrice"`
}

// HandlePresetList returns a handler listing the work type price presets
// in their seeded order.
func HandlePresetList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records := []*core.Record{}
		err := app.RecordQuery("work_type_presets").OrderBy("sort_order ASC").All(&records)
		if err != nil {
			log.Printf("presets: query failed: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Nie udało się pobrać cennika")
		}

		presets := make([]PresetView, 0, len(records))
		for _, record := range records {
			presets = append(presets, PresetView{
				ID:             record.Id,
				Name:           record.GetString("name"),
				Unit:           record.GetString("unit"),
				SuggestedPrice: record.GetFloat("suggested_price"),
			})
		}
		return e.JSON(http.StatusOK, map[string]any{"presets": presets})
	}
}
