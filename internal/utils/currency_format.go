package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AmountPrecision is the number of decimal places shown for money.
const AmountPrecision = 2

// FormatAmount renders an amount as dollars with thousands separators.
// Example: 1234.5 returns "$1,234.50", -42 returns "-$42.00".
func FormatAmount(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(AmountPrecision)
	whole, frac, _ := strings.Cut(fixed, ".")

	sign := ""
	if amount.Round(AmountPrecision).IsNegative() {
		sign = "-"
	}
	return sign + "$" + groupThousands(whole) + "." + frac
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
