package rebalance

import "fmt"

// Asset is a portfolio position as read from the sources, before any rebalance.
type Asset struct {
	name   string
	value  Fraction // current market value
	target Fraction // desired share of the post-contribution total, in [0,1]
}

// NewAsset validates and returns a new Asset.
func NewAsset(name string, target, value Fraction) (Asset, error) {
	if name == "" {
		return Asset{}, fmt.Errorf("%w: empty name", ErrInvalidAsset)
	}
	if target.IsNegative() || target.GreaterThan(F(1)) {
		return Asset{}, fmt.Errorf("%w: %q target %s is outside [0, 1]", ErrInvalidAsset, name, target)
	}
	if value.IsNegative() {
		return Asset{}, fmt.Errorf("%w: %q has a negative value %s", ErrInvalidAsset, name, value)
	}
	return Asset{name: name, value: value, target: target}, nil
}

// MustAsset is like NewAsset but panics on error.
func MustAsset(name string, target, value Fraction) Asset {
	a, err := NewAsset(name, target, value)
	if err != nil {
		panic(err.Error())
	}
	return a
}

func (a Asset) Name() string     { return a.name }
func (a Asset) Value() Fraction  { return a.value }
func (a Asset) Target() Fraction { return a.target }

// Position is an Asset evaluated by Rebalance.
type Position struct {
	Asset
	Index            int      // position in the input slice
	ActualAllocation Fraction // value / portfolio total, 0 for an empty portfolio
	TargetValue      Fraction // (portfolio total + contribution) * target
	Deviation        Fraction // value / target value - 1, negative when underweight
	Delta            Fraction // amount to buy (positive) or sell (negative)
	Funded           bool     // false for positions the walk never reached, Delta is then 0
}

// NewValue returns the value after applying the delta.
func (p Position) NewValue() Fraction { return p.value.Add(p.Delta) }

// NewDeviation returns the deviation after applying the delta.
func (p Position) NewDeviation() Fraction {
	return p.NewValue().Div(p.TargetValue).Sub(F(1))
}
