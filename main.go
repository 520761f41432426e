package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"wycena/collections"
	"wycena/handlers"
)

func main() {
	app := pocketbase.New()
	drafts := handlers.NewDrafts()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.NormalizeQuoteVatRates(app); err != nil {
			log.Printf("Warning: vat rate migration failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve the static frontend from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Every request carries a draft session cookie
		se.Router.BindFunc(handlers.SessionMiddleware())

		// ── Calculator draft state ───────────────────────────────
		se.Router.GET("/api/calculator", handlers.HandleCalculatorState(app, drafts))
		se.Router.POST("/api/calculator/clear", handlers.HandleQuoteClear(app, drafts))
		se.Router.POST("/api/calculator/vat", handlers.HandleVatRate(app, drafts))
		se.Router.POST("/api/calculator/prepared-by", handlers.HandlePreparedBy(app, drafts))

		// ── Rooms ────────────────────────────────────────────────
		se.Router.POST("/api/calculator/rooms", handlers.HandleRoomCreate(app, drafts))
		se.Router.DELETE("/api/calculator/rooms/{roomId}", handlers.HandleRoomDelete(app, drafts))
		se.Router.POST("/api/calculator/rooms/{roomId}/name", handlers.HandleRoomRename(app, drafts))
		se.Router.POST("/api/calculator/rooms/{roomId}/floor-protection", handlers.HandleFloorProtection(app, drafts))

		// Measurement collections share one handler pair per kind
		measurementKinds := []struct {
			slug string
			kind handlers.MeasurementKind
		}{
			{"walls", handlers.MeasurementWalls},
			{"ceilings", handlers.MeasurementCeilings},
			{"corners", handlers.MeasurementCorners},
			{"grooves", handlers.MeasurementGrooves},
			{"acrylic", handlers.MeasurementAcrylic},
		}
		for _, mk := range measurementKinds {
			se.Router.POST(
				"/api/calculator/rooms/{roomId}/"+mk.slug,
				handlers.HandleMeasurementAdd(app, drafts, mk.kind),
			)
			se.Router.DELETE(
				"/api/calculator/rooms/{roomId}/"+mk.slug+"/{itemId}",
				handlers.HandleMeasurementDelete(app, drafts, mk.kind),
			)
		}

		// ── Work types ───────────────────────────────────────────
		se.Router.POST("/api/calculator/rooms/{roomId}/work-types", handlers.HandleCustomWorkTypeCreate(app, drafts))
		se.Router.POST("/api/calculator/rooms/{roomId}/work-types/{workTypeId}/toggle", handlers.HandleWorkTypeToggle(app, drafts))
		se.Router.POST("/api/calculator/rooms/{roomId}/work-types/{workTypeId}/price", handlers.HandleWorkTypePrice(app, drafts))
		se.Router.POST("/api/calculator/rooms/{roomId}/work-types/{workTypeId}/items", handlers.HandleCustomWorkItemAdd(app, drafts))
		se.Router.DELETE("/api/calculator/rooms/{roomId}/work-types/{workTypeId}/items/{itemId}", handlers.HandleCustomWorkItemDelete(app, drafts))
		se.Router.DELETE("/api/calculator/rooms/{roomId}/work-types/{workTypeId}", handlers.HandleWorkTypeDelete(app, drafts))

		// ── Cloud quotes (owner-scoped) ──────────────────────────
		se.Router.GET("/api/quotes", handlers.HandleQuoteList(app))
		se.Router.POST("/api/quotes", handlers.HandleQuoteSave(app, drafts))
		se.Router.POST("/api/quotes/{id}", handlers.HandleQuoteUpdate(app, drafts))
		se.Router.POST("/api/quotes/{id}/load", handlers.HandleQuoteLoad(app, drafts))
		se.Router.DELETE("/api/quotes/{id}", handlers.HandleQuoteDelete(app))

		// ── Export ───────────────────────────────────────────────
		se.Router.GET("/api/calculator/export/pdf", handlers.HandleExportPDF(app, drafts))
		se.Router.GET("/api/calculator/export/excel", handlers.HandleExportExcel(app, drafts))

		// ── Price presets ────────────────────────────────────────
		se.Router.GET("/api/presets", handlers.HandlePresetList(app))

		// Redirect home to the static app
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/static/")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
