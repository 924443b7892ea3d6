package banca

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ParseAmount parses user-entered decimal text into an amount. Both comma and
// dot are accepted as the decimal separator ("1.234,56", "1,234.56" and
// "1234.56" all parse), since the engine's inputs come from locale-formatted
// fields. An empty string is 0: an absent contribution means "did not
// contribute this session".
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(normalizeDecimal(s))
	if err != nil {
		return 0, fmt.Errorf("cannot parse amount %q: %w", s, err)
	}
	return d.InexactFloat64(), nil
}

// ParseFinalAmount parses the final pot amount of a session. Unlike
// contributions, a missing or unparseable final amount is an error
// (ErrInvalidFinalAmount), never a silent zero.
func ParseFinalAmount(s string) (float64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidFinalAmount)
	}
	v, err := ParseAmount(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidFinalAmount, err)
	}
	return v, nil
}

// normalizeDecimal rewrites locale decimal text into the canonical dot form.
// When both separators appear, the right-most one is the decimal separator and
// the other marks thousands. A lone comma is a decimal separator unless it
// appears more than once (pure grouping).
func normalizeDecimal(s string) string {
	comma, dot := strings.LastIndex(s, ","), strings.LastIndex(s, ".")
	switch {
	case comma >= 0 && dot >= 0:
		if comma > dot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case comma >= 0:
		if strings.Count(s, ",") == 1 {
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}
	return s
}

// Money pairs an amount with a display currency. It exists for presentation
// only: the ledger itself works in bare float64, which is what makes the
// drift-correction step in CloseDay necessary in the first place.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M builds a Money from a float amount and an ISO currency code.
func M(value float64, currency string) Money {
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// currency returns the full currency description. Calling the money
// constructor is the way to get a never-nil currency out of go-money.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String formats the amount with the currency's grapheme, separators and
// fraction digits, e.g. "R$1.234,50" for M(1234.5, "BRL").
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// SignedString is String with an explicit "+" on positive amounts, for profit
// and loss columns.
func (m Money) SignedString() string {
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool { return m.value.IsNegative() }
