package shop

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an exact amount in reais. It encodes as a bare JSON number and
// decodes from either a number or a quoted string.
type Money struct{ decimal.Decimal }

// NewMoney parses s and panics when it is not a number; meant for literals.
func NewMoney(s string) Money {
	return Money{decimal.RequireFromString(s)}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.String()), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	return m.Decimal.UnmarshalJSON(b)
}

// FormatBRL renders m the way pt-BR shows Brazilian reais: R$ 1.234,56.
func FormatBRL(m Money) string {
	v := m.Decimal
	sign := ""
	if v.IsNegative() {
		sign = "-"
		v = v.Abs()
	}

	intPart, decPart, _ := strings.Cut(v.StringFixed(2), ".")

	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteRune('.')
		}
		b.WriteRune(c)
	}
	return sign + "R$ " + b.String() + "," + decPart
}
