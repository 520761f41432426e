package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"wycena/services"
)

// QuoteSummary is one row of the saved-quotes list.
type QuoteSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	VatRate    int    `json:"vatRate"`
	PreparedBy string `json:"preparedBy"`
	RoomCount  int    `json:"roomCount"`
	Created    string `json:"created"`
	Updated    string `json:"updated"`
}

// HandleQuoteList returns a handler listing the authenticated user's saved
// quotes, newest first.
func HandleQuoteList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if e.Auth == nil {
			return jsonError(e, http.StatusUnauthorized, "Musisz być zalogowany")
		}

		records := []*core.Record{}
		err := app.RecordQuery("quotes").
			AndWhere(dbx.HashExp{"user": e.Auth.Id}).
			OrderBy("created DESC").
			All(&records)
		if err != nil {
			log.Printf("quote_list: query failed: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Nie udało się pobrać wycen")
		}

		summaries := make([]QuoteSummary, 0, len(records))
		for _, record := range records {
			var rooms []services.Room
			if err := record.UnmarshalJSONField("data", &rooms); err != nil {
				log.Printf("quote_list: bad data payload on quote %s: %v", record.Id, err)
			}
			summaries = append(summaries, QuoteSummary{
				ID:         record.Id,
				Name:       record.GetString("name"),
				VatRate:    record.GetInt("vat_rate"),
				PreparedBy: record.GetString("prepared_by"),
				RoomCount:  len(rooms),
				Created:    record.GetDateTime("created").String(),
				Updated:    record.GetDateTime("updated").String(),
			})
		}

		return e.JSON(http.StatusOK, map[string]any{"quotes": summaries})
	}
}
