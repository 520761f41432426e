package services

// PdfFormat selects the quote PDF layout.
type PdfFormat string

const (
	PdfFormatStandard PdfFormat = "standard" // per-room sections
	PdfFormatTable    PdfFormat = "table"    // one flat table
)

// ExportWorkRow is one enabled work type, flattened for export.
type ExportWorkRow struct {
	Name      string
	Quantity  float64
	UnitLabel string
	Price     float64
	Total     float64
}

// ExportRoom is one room of the quote, flattened for export: the
// measurement summary lines shown under the room header plus the priced
// work rows.
type ExportRoom struct {
	Index           int
	Name            string
	NetArea         float64
	Corners         float64
	Grooves         float64
	Acrylic         float64
	FloorProtection float64
	Rows            []ExportWorkRow
	Total           float64
}

// ExportData holds everything the PDF and Excel generators need. All
// numbers are already computed; the generators only draw.
type ExportData struct {
	QuoteName  string
	PreparedBy string
	Date       string
	VatRate    int
	Rooms      []ExportRoom
	GrandTotal float64
	VatAmount  float64
	GrossTotal float64
	Format     PdfFormat
}

// BuildExportData flattens a draft into an export payload. Measurement
// summary values are carried as-is; the generators skip zero lines.
func BuildExportData(s State, date string, format PdfFormat) ExportData {
	data := ExportData{
		QuoteName:  s.QuoteName,
		PreparedBy: s.PreparedBy,
		Date:       date,
		VatRate:    s.VatRate,
		Format:     format,
	}

	for i, room := range s.Rooms {
		exportRoom := ExportRoom{
			Index:           i + 1,
			Name:            room.Name,
			NetArea:         room.NetArea,
			Corners:         room.TotalCorners,
			Grooves:         room.TotalGrooves,
			Acrylic:         room.TotalAcrylic,
			FloorProtection: room.FloorProtection,
			Total:           RoomTotal(room),
		}
		for _, wt := range room.WorkTypes {
			if !wt.Enabled {
				continue
			}
			qty := ResolveQuantity(room, wt)
			exportRoom.Rows = append(exportRoom.Rows, ExportWorkRow{
				Name:      wt.Name,
				Quantity:  qty,
				UnitLabel: UnitLabel(wt.Unit),
				Price:     wt.PricePerUnit,
				Total:     qty * wt.PricePerUnit,
			})
		}
		data.Rooms = append(data.Rooms, exportRoom)
	}

	data.GrandTotal = s.GrandTotal()
	data.VatAmount = VatAmount(data.GrandTotal, s.VatRate)
	data.GrossTotal = GrossTotal(data.GrandTotal, s.VatRate)
	return data
}
