package rebalance

import "fmt"

// Target is the desired allocation of an asset, in percent (out of 100).
type Target struct {
	Name    string
	Percent Fraction
}

// Holding is the current market value of an asset.
type Holding struct {
	Name  string
	Value Fraction
}

// NewPortfolio joins holdings and targets by name into the assets to rebalance.
//
// Assets come in the targets order. A target without holding is a new asset worth 0.
// Holdings without a target are not part of the allocation, their names are returned as
// dropped, in holdings order. Targets that are not strictly positive are ignored.
func NewPortfolio(holdings []Holding, targets []Target) (assets []Asset, dropped []string, err error) {
	values := make(map[string]Fraction, len(holdings))
	for _, h := range holdings {
		values[h.Name] = values[h.Name].Add(h.Value)
	}

	wanted := make(map[string]bool, len(targets))
	for _, t := range targets {
		if !t.Percent.IsPositive() {
			continue
		}
		if wanted[t.Name] {
			return nil, nil, fmt.Errorf("%w: target %q", ErrDuplicateAsset, t.Name)
		}
		wanted[t.Name] = true

		a, err := NewAsset(t.Name, t.Percent.Div(F(100)), values[t.Name])
		if err != nil {
			return nil, nil, err
		}
		assets = append(assets, a)
	}

	seen := make(map[string]bool, len(holdings))
	for _, h := range holdings {
		if !wanted[h.Name] && !seen[h.Name] {
			dropped = append(dropped, h.Name)
		}
		seen[h.Name] = true
	}
	return assets, dropped, nil
}

// TargetsSum returns the sum of the strictly positive target percents.
// A complete allocation sums to 100.
func TargetsSum(targets []Target) Fraction {
	var sum Fraction
	for _, t := range targets {
		if t.Percent.IsPositive() {
			sum = sum.Add(t.Percent)
		}
	}
	return sum
}
