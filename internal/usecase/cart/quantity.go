package cart

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sagfgh000/grocery/internal/usecase/catalog"
)

var gramsPerKg = decimal.NewFromInt(1000)

// ParseQuantity normalizes raw operator input into the product's declared
// unit. Preset shortcuts carry their own suffix ("100g", "250g", "500g",
// "1kg"); a bare number is already denominated in the declared unit, so "1"
// on a kg product means 1kg. Anything unparseable or non-positive comes back
// as zero, which callers treat as line removal.
func ParseQuantity(raw, unit string) decimal.Decimal {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return decimal.Zero
	}

	suffixUnit := ""
	switch {
	case strings.HasSuffix(s, catalog.UnitKg):
		suffixUnit = catalog.UnitKg
		s = strings.TrimSpace(strings.TrimSuffix(s, catalog.UnitKg))
	case strings.HasSuffix(s, catalog.UnitG):
		suffixUnit = catalog.UnitG
		s = strings.TrimSpace(strings.TrimSuffix(s, catalog.UnitG))
	}

	n, err := decimal.NewFromString(s)
	if err != nil || n.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if suffixUnit == "" || suffixUnit == unit {
		return n
	}

	switch {
	case suffixUnit == catalog.UnitG && unit == catalog.UnitKg:
		return n.Div(gramsPerKg)
	case suffixUnit == catalog.UnitKg && unit == catalog.UnitG:
		return n.Mul(gramsPerKg)
	default:
		// weight suffix on a pcs product makes no sense
		return decimal.Zero
	}
}
