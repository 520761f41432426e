package services

import (
	"fmt"
	"math"
	"strings"
)

// FormatPLN formats an amount in Polish złoty notation: space-grouped
// thousands, comma decimal separator and a trailing currency symbol,
// e.g. 1 234 567.891 → "1 234 567,89 zł". Always two decimal places.
func FormatPLN(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := groupThousands(intPart) + "," + decPart + " zł"
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts a space every 3 digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatQty formats a quantity with a Polish comma decimal separator:
// whole numbers without decimals, others with 2 decimals.
func FormatQty(val float64) string {
	if val == math.Trunc(val) {
		return fmt.Sprintf("%.0f", val)
	}
	return strings.Replace(fmt.Sprintf("%.2f", val), ".", ",", 1)
}

// UnitLabel returns the display label of a work unit.
func UnitLabel(unit WorkUnit) string {
	switch unit {
	case UnitArea:
		return "m²"
	case UnitCount:
		return "szt."
	default:
		return "mb"
	}
}

// PriceUnitLabel returns the display label of a price per unit.
func PriceUnitLabel(unit WorkUnit) string {
	switch unit {
	case UnitArea:
		return "zł/m²"
	case UnitCount:
		return "zł/szt."
	default:
		return "zł/mb"
	}
}
