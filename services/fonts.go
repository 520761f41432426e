package services

import (
	_ "embed"
	"fmt"

	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/repository"
)

// pdfFontFamily is the font family every quote PDF is set in. The built-in
// core PDF fonts only cover cp1252 and mangle Polish diacritics (ł, ż, ś
// and friends), so the DejaVu Sans faces are embedded into the binary and
// registered as UTF-8 fonts.
const pdfFontFamily = "dejavusans"

//go:embed fonts/DejaVuSans.ttf
var pdfFontRegular []byte

//go:embed fonts/DejaVuSans-Bold.ttf
var pdfFontBold []byte

// pdfFonts loads the embedded faces for the PDF generator.
func pdfFonts() ([]*entity.CustomFont, error) {
	fonts, err := repository.New().
		AddUTF8FontFromBytes(pdfFontFamily, fontstyle.Normal, pdfFontRegular).
		AddUTF8FontFromBytes(pdfFontFamily, fontstyle.Bold, pdfFontBold).
		Load()
	if err != nil {
		return nil, fmt.Errorf("load pdf fonts: %w", err)
	}
	return fonts, nil
}
