package rebalance

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Fraction is an exact rational number.
//
// Every intermediate value of a rebalance is a Fraction: running totals are compared to
// decide where the water-filling stops, so they must never drift.
// The zero value is 0. A Fraction is immutable, all operations return a new value.
type Fraction struct {
	r *big.Rat
}

// F is a convenient factory for Fraction.
// A float64 is read through its shortest decimal representation, so F(0.1) is exactly 1/10.
func F[T int | int32 | int64 | float64 | decimal.Decimal](value T) Fraction {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Fraction{r: v.Rat()}
	case float64:
		return Fraction{r: decimal.NewFromFloat(v).Rat()}
	case int:
		return Fraction{r: new(big.Rat).SetInt64(int64(v))}
	case int32:
		return Fraction{r: new(big.Rat).SetInt64(int64(v))}
	case int64:
		return Fraction{r: new(big.Rat).SetInt64(v)}
	default:
		panic("unsupported type")
	}
}

// NewFraction returns num/den. It panics if den is 0.
func NewFraction(num, den int64) Fraction {
	return Fraction{r: big.NewRat(num, den)}
}

// ParseFraction parses a finite decimal ("6500", "-12.75", "1e3") or a ratio ("31000/7").
func ParseFraction(s string) (Fraction, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "/") {
		r, ok := new(big.Rat).SetString(s)
		if !ok {
			return Fraction{}, fmt.Errorf("%w: invalid fraction %q", ErrInvalidInput, s)
		}
		return Fraction{r: r}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: invalid number %q: %v", ErrInvalidInput, s, err)
	}
	return F(d), nil
}

// MustParseFraction is like ParseFraction but panics on error.
func MustParseFraction(s string) Fraction {
	f, err := ParseFraction(s)
	if err != nil {
		panic(err.Error())
	}
	return f
}

var zeroRat = new(big.Rat)

// rat returns the underlying value, never nil. It must not be modified.
func (f Fraction) rat() *big.Rat {
	if f.r == nil {
		return zeroRat
	}
	return f.r
}

func (f Fraction) Add(g Fraction) Fraction { return Fraction{r: new(big.Rat).Add(f.rat(), g.rat())} }
func (f Fraction) Sub(g Fraction) Fraction { return Fraction{r: new(big.Rat).Sub(f.rat(), g.rat())} }
func (f Fraction) Mul(g Fraction) Fraction { return Fraction{r: new(big.Rat).Mul(f.rat(), g.rat())} }
func (f Fraction) Neg() Fraction           { return Fraction{r: new(big.Rat).Neg(f.rat())} }
func (f Fraction) Abs() Fraction           { return Fraction{r: new(big.Rat).Abs(f.rat())} }

// Div returns f/g. It panics if g is zero.
func (f Fraction) Div(g Fraction) Fraction {
	if g.IsZero() {
		panic("fraction: division by zero")
	}
	return Fraction{r: new(big.Rat).Quo(f.rat(), g.rat())}
}

func (f Fraction) Cmp(g Fraction) int                 { return f.rat().Cmp(g.rat()) }
func (f Fraction) Sign() int                          { return f.rat().Sign() }
func (f Fraction) IsZero() bool                       { return f.Sign() == 0 }
func (f Fraction) IsPositive() bool                   { return f.Sign() > 0 }
func (f Fraction) IsNegative() bool                   { return f.Sign() < 0 }
func (f Fraction) Equal(g Fraction) bool              { return f.Cmp(g) == 0 }
func (f Fraction) LessThan(g Fraction) bool           { return f.Cmp(g) < 0 }
func (f Fraction) LessThanOrEqual(g Fraction) bool    { return f.Cmp(g) <= 0 }
func (f Fraction) GreaterThan(g Fraction) bool        { return f.Cmp(g) > 0 }
func (f Fraction) GreaterThanOrEqual(g Fraction) bool { return f.Cmp(g) >= 0 }

// Decimal rounds f to places decimal digits, half away from zero.
func (f Fraction) Decimal(places int32) decimal.Decimal {
	return decimal.NewFromBigRat(f.rat(), places)
}

// StringFixed formats f rounded to places decimal digits.
func (f Fraction) StringFixed(places int32) string {
	return f.Decimal(places).StringFixed(places)
}

// String returns the exact representation: an integer or "num/den".
func (f Fraction) String() string { return f.rat().RatString() }

// Deprecated: Float64 is inexact, it is only meant for statistics and display.
func (f Fraction) Float64() float64 {
	v, _ := f.rat().Float64()
	return v
}

// MarshalJSON writes the exact value as a string.
func (f Fraction) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON reads a string (decimal or ratio) or a plain json number.
func (f *Fraction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		s = n.String()
	}
	v, err := ParseFraction(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

var _ json.Marshaler = Fraction{}
var _ json.Unmarshaler = (*Fraction)(nil)
