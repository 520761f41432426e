// Package collections creates and maintains the PocketBase collections
// the calculator persists quotes into.
package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the quotes and work_type_presets
// collections exist.
func Setup(app *pocketbase.PocketBase) {
	users, err := app.FindCollectionByNameOrId("users")
	if err != nil {
		log.Fatalf("Failed to find users auth collection: %v", err)
	}

	// Quotes are owner-scoped: every API rule requires the requesting user
	// to be the record owner, so one user can never list or touch another
	// user's quotes.
	ownerRule := "user = @request.auth.id"
	createRule := "@request.auth.id != '' && user = @request.auth.id"

	ensureCollection(app, "quotes", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "user",
			Required:      true,
			CollectionId:  users.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.JSONField{Name: "data", MaxSize: 2 << 20})
		c.Fields.Add(&core.NumberField{Name: "vat_rate", Required: true})
		c.Fields.Add(&core.TextField{Name: "prepared_by", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})

		c.ListRule = &ownerRule
		c.ViewRule = &ownerRule
		c.CreateRule = &createRule
		c.UpdateRule = &ownerRule
		c.DeleteRule = &ownerRule
	})

	// Read-only reference data: suggested market prices the UI offers when
	// enabling a built-in work type.
	publicRead := ""
	ensureCollection(app, "work_type_presets", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "unit",
			Required:  true,
			Values:    []string{"m2", "mb", "szt"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "suggested_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})

		c.ListRule = &publicRead
		c.ViewRule = &publicRead
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the configure callback is invoked to populate its fields and
// rules, and the collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, configure func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	configure(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
