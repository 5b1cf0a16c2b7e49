package comptes

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are persisted as plain JSON numbers, per the historical format.
	decimal.MarshalJSONWithoutQuotes = true
}

// currencyCode is the single currency of the ledger. The data model carries
// no per-record currency, so formatting is the only place it appears.
const currencyCode = money.EUR

// Amount represents an exact monetary value.
//
// Transaction amounts are non-negative magnitudes; account balances may be
// negative. Both use this type, the sign discipline is enforced by the
// ledger operations.
type Amount struct {
	value decimal.Decimal
}

// A builds an Amount from a numeric value.
func A[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

func newDecimal(v any) decimal.Decimal {
	switch x := v.(type) {
	case decimal.Decimal:
		return x
	case float32:
		return decimal.NewFromFloat32(x)
	case float64:
		return decimal.NewFromFloat(x)
	case int:
		return decimal.NewFromInt(int64(x))
	case int32:
		return decimal.NewFromInt32(x)
	case int64:
		return decimal.NewFromInt(x)
	default:
		panic(fmt.Sprintf("unsupported amount type %T", v))
	}
}

// ParseAmount parses a decimal string such as "12.50" into an Amount.
// It rejects anything that is not a plain number.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Amount{value: d}, nil
}

func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Neg() Amount         { return Amount{value: a.value.Neg()} }

func (a Amount) Equal(b Amount) bool    { return a.value.Equal(b.value) }
func (a Amount) LessThan(b Amount) bool { return a.value.LessThan(b.value) }
func (a Amount) IsZero() bool           { return a.value.IsZero() }
func (a Amount) IsPositive() bool       { return a.value.IsPositive() }
func (a Amount) IsNegative() bool       { return a.value.IsNegative() }

// String formats the amount with the ledger currency, e.g. "€12.50".
func (a Amount) String() string {
	cur := *money.New(0, currencyCode).Currency()
	minor := a.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// MarshalJSON encodes the amount as a plain JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return a.value.MarshalJSON()
}

// UnmarshalJSON decodes a plain JSON number into the amount.
func (a *Amount) UnmarshalJSON(data []byte) error {
	return a.value.UnmarshalJSON(data)
}
