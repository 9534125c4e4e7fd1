package rebalance

import "encoding/json"

// Percent is a share expressed as a fraction of 1 and displayed out of 100.
type Percent struct {
	value Fraction
}

// P returns the Percent for the share f (0.1 is 10%).
func P(f Fraction) Percent { return Percent{value: f} }

func (p Percent) Fraction() Fraction    { return p.value }
func (p Percent) Add(q Percent) Percent { return Percent{value: p.value.Add(q.value)} }
func (p Percent) Equal(q Percent) bool  { return p.value.Equal(q.value) }

// MarshalJSON writes the value out of 100, rounded to 3 decimals.
func (p Percent) MarshalJSON() ([]byte, error) {
	return p.value.Mul(F(100)).Decimal(3).MarshalJSON()
}

// UnmarshalJSON reads a number out of 100.
func (p *Percent) UnmarshalJSON(b []byte) error {
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	f, err := ParseFraction(n.String())
	if err != nil {
		return err
	}
	p.value = f.Div(F(100))
	return nil
}

// String returns the value out of 100 with 3 decimals, without the % sign.
func (p Percent) String() string {
	return p.value.Mul(F(100)).StringFixed(3)
}

// SignedString returns the value with an explicit sign and a % sign, "-" when it rounds to 0.
func (p Percent) SignedString() string {
	d := p.value.Mul(F(100)).Decimal(2)
	if d.IsZero() {
		return "-"
	}
	if d.IsPositive() {
		return "+" + d.StringFixed(2) + "%"
	}
	return d.StringFixed(2) + "%"
}
