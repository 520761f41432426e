package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"

	"wycena/services"
)

// NormalizeQuoteVatRates resets quotes whose persisted VAT rate is not a
// legal value (8 or 23) to the default rate. Early clients stored the rate
// as free-form input, so old rows can carry 0 or arbitrary percentages.
func NormalizeQuoteVatRates(app *pocketbase.PocketBase) error {
	records, err := app.FindRecordsByFilter(
		"quotes",
		"vat_rate != {:reduced} && vat_rate != {:standard}",
		"", 0, 0,
		map[string]any{"reduced": services.VatRateReduced, "standard": services.VatRateStandard},
	)
	if err != nil {
		return fmt.Errorf("query quotes with invalid vat_rate: %w", err)
	}

	for _, record := range records {
		record.Set("vat_rate", services.DefaultVatRate)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("normalize vat_rate for quote %s: %w", record.Id, err)
		}
	}

	if len(records) > 0 {
		fmt.Printf("Normalized vat_rate on %d quotes\n", len(records))
	}
	return nil
}
