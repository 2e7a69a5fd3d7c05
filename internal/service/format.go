package service

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency symbols used in the disclosure text. USD is written as the ISO code.
const (
	SymbolBRL = "R$"
	SymbolUSD = "USD"
)

// FormatCurrency renders value with pt-BR separators and two fraction digits,
// prefixed by symbol. "BRL" is accepted as an alias for "R$".
//
//	FormatCurrency(decimal.RequireFromString("1234.56"), "BRL") == "R$ 1.234,56"
func FormatCurrency(value decimal.Decimal, symbol string) string {
	if symbol == "BRL" {
		symbol = SymbolBRL
	}
	return symbol + " " + formatNumber(value, 2)
}

// formatRate renders a rate as "R$ 5,4638".
func formatRate(rate decimal.Decimal) string {
	return SymbolBRL + " " + formatNumber(rate, 4)
}

// formatNumber rounds value to places fraction digits and writes it with "."
// as thousands separator and "," as decimal separator. It does not depend on
// any process locale.
func formatNumber(value decimal.Decimal, places int32) string {
	s := value.StringFixed(places)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(groupThousands(intPart))
	if places > 0 {
		b.WriteByte(',')
		b.WriteString(fracPart)
	}
	return b.String()
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
