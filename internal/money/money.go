// Package money handles monetary values as exact integer centavos and
// converts between the canonical pt-BR display form ("R$ 1.234,56") and the
// raw text a user types into a price field.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value in centavos (1/100 of a real).
// Negative amounts are never valid.
type Amount int64

// DefaultMax is the entry ceiling for a unit price: R$ 100.000,00.
const DefaultMax Amount = 10_000_000

const prefix = "R$"

// ParseError describes why a monetary string was rejected.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid amount %q: %s", e.Input, e.Reason)
}

func parseErr(input, reason string) error {
	return &ParseError{Input: input, Reason: reason}
}

// Parse converts user-entered currency text into centavos using DefaultMax
// as the ceiling.
func Parse(text string) (Amount, error) {
	return ParseLimit(text, DefaultMax)
}

// ParseLimit converts user-entered currency text into centavos.
// It accepts an optional "R$" prefix and surrounding whitespace, "." as the
// thousands separator and "," as the decimal separator. Inputs that are
// empty, contain other characters, carry more than one decimal separator or
// exceed max are rejected with a *ParseError.
func ParseLimit(text string, max Amount) (Amount, error) {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, prefix)
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, parseErr(text, "empty")
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' && r != ',' {
			return 0, parseErr(text, "unexpected character")
		}
	}
	if strings.Count(s, ",") > 1 {
		return 0, parseErr(text, "more than one decimal separator")
	}

	// Thousands dots carry no information; the comma is the decimal mark.
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, ','); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	intPart = strings.ReplaceAll(intPart, ".", "")
	if intPart == "" && fracPart == "" {
		return 0, parseErr(text, "no digits")
	}
	if intPart == "" {
		intPart = "0"
	}

	d, err := decimal.NewFromString(intPart + "." + fracPart + "0")
	if err != nil {
		return 0, parseErr(text, "not a number")
	}
	cents := d.Mul(decimal.New(100, 0)).Round(0)
	if !cents.BigInt().IsInt64() {
		return 0, parseErr(text, "out of range")
	}
	a := Amount(cents.IntPart())
	if a > max {
		return 0, parseErr(text, fmt.Sprintf("exceeds maximum of %s", Format(max)))
	}
	return a, nil
}

// Format renders an amount with exactly two decimal digits, "." thousands
// grouping, "," decimal separator and the "R$ " prefix. It is the inverse of
// Parse for every valid amount: Parse(Format(a)) == a.
func Format(a Amount) string {
	if a < 0 {
		a = 0
	}
	cents := int64(a) % 100
	units := int64(a) / 100

	digits := fmt.Sprintf("%d", units)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return fmt.Sprintf("%s %s,%02d", prefix, b.String(), cents)
}

// Total computes quantidade × unitario in integer centavos. A quantity below
// one is meaningless for a line item and is rejected.
func Total(quantidade int, unitario Amount) (Amount, error) {
	if quantidade < 1 {
		return 0, fmt.Errorf("quantity must be at least 1, got %d", quantidade)
	}
	if unitario < 0 {
		return 0, fmt.Errorf("unit amount must not be negative")
	}
	return Amount(quantidade) * unitario, nil
}

// Decimal exposes the amount as a two-place decimal for interchange at the
// persistence and JSON boundaries.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -2)
}

// FromDecimal converts a decimal amount to centavos, rounding half-up past
// the second place.
func FromDecimal(d decimal.Decimal) (Amount, error) {
	if d.IsNegative() {
		return 0, fmt.Errorf("amount must not be negative: %s", d)
	}
	cents := d.Mul(decimal.New(100, 0)).Round(0)
	if !cents.BigInt().IsInt64() {
		return 0, fmt.Errorf("amount out of range: %s", d)
	}
	return Amount(cents.IntPart()), nil
}

// String renders the canonical display form.
func (a Amount) String() string { return Format(a) }

// MarshalJSON encodes the amount as a plain decimal number (e.g. 10.5 for
// R$ 10,50) so API payloads carry values, not centavo internals.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal().String()), nil
}

// UnmarshalJSON accepts a decimal number or a quoted decimal string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid amount %s: %w", data, err)
	}
	v, err := FromDecimal(d)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
