package models

import (
	"strconv"
	"strings"
)

// FormatBRL renders a value the way the app shows money: R$ 1.234,56 with a
// leading minus for debits.
func FormatBRL(value float64) string {
	negative := value < 0
	if negative {
		value = -value
	}

	s := strconv.FormatFloat(value, 'f', 2, 64)
	whole, cents, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, d := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	out := "R$ " + b.String() + "," + cents
	if negative {
		out = "-" + out
	}
	return out
}

// FormatPercent renders a signed percentage with two decimals, e.g. "+2.10%".
func FormatPercent(value float64) string {
	s := strconv.FormatFloat(value, 'f', 2, 64)
	if value >= 0 {
		s = "+" + s
	}
	return s + "%"
}
