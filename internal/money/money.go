package money

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Symbol is the fixed currency prefix for all rendered amounts.
const Symbol = "₦"

// Format renders an amount with the currency symbol, comma thousands
// separators, and two decimal places: ₦1,234.56. Negative amounts keep
// the sign after the symbol: ₦-40.00.
func Format(d decimal.Decimal) string {
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	if n, err := strconv.ParseInt(intPart, 10, 64); err == nil {
		intPart = humanize.Comma(n)
	}

	if neg {
		return Symbol + "-" + intPart + "." + frac
	}
	return Symbol + intPart + "." + frac
}
