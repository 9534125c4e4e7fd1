package rebalance

import (
	"encoding/json"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an exact amount in a currency.
type Money struct {
	value Fraction // in major units
	cur   string
}

// M returns value in currency cur.
func M(value Fraction, cur string) Money { return Money{value: value, cur: cur} }

// currency returns the money's currency.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// Places returns the number of minor-unit digits of the currency (2 for CAD, 0 for JPY).
func (m Money) Places() int32 { return int32(m.currency().Fraction) }

// Rounded returns the amount rounded to the currency minor unit.
func (m Money) Rounded() decimal.Decimal { return m.value.Decimal(m.Places()) }

// String returns the plain amount followed by the currency code, as ledger files expect it.
// e.g. "4428.57 CAD".
func (m Money) String() string {
	return m.Amount() + " " + m.cur
}

// Amount returns the rounded amount without currency, e.g. "4428.57".
func (m Money) Amount() string { return m.Rounded().StringFixed(m.Places()) }

// Format returns the amount with the currency symbol and grouping, e.g. "$4,428.57".
func (m Money) Format() string {
	cur := m.currency()
	dec := m.Rounded().Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the formatted amount with an explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	if m.value.Decimal(m.Places()).IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.Format()
	}
	return m.Format()
}

func (m Money) Value() Fraction    { return m.value }
func (m Money) Currency() string   { return m.cur }
func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) IsNegative() bool   { return m.value.IsNegative() }
func (m Money) Neg() Money         { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Abs() Money         { return Money{value: m.value.Abs(), cur: m.cur} }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) Add(n Money) Money  { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.Rounded())
	return w.MarshalJSON()
}

func (m *Money) UnmarshalJSON(b []byte) error {
	var v struct {
		Currency string      `json:"currency"`
		Amount   json.Number `json:"amount"`
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	f, err := ParseFraction(v.Amount.String())
	if err != nil {
		return err
	}
	*m = M(f, v.Currency)
	return nil
}
