package renderer

import (
	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/date"
)

// Allocation is the json representation of a rebalancing report, as templates see it.
// Numbers keep their exact types (Money, Percent) so that templates can pick a format.
type Allocation struct {
	// Date the report was generated.
	Date date.Date `json:"date"`
	// Contribution is the amount deposited, or withdrawn when negative.
	Contribution rebalance.Money `json:"contribution"`
	// Rows in the order of the targets.
	Rows  []rebalance.ReportRow `json:"rows"`
	Total rebalance.ReportRow   `json:"total"`
	// Spread is the distance to the targets, before and after.
	Spread Spread `json:"spread"`
}

// Spread is rebalance.Spread as percents.
type Spread struct {
	MaxBefore    rebalance.Percent `json:"maxBefore"`
	MaxAfter     rebalance.Percent `json:"maxAfter"`
	StdDevBefore rebalance.Percent `json:"stdDevBefore"`
	StdDevAfter  rebalance.Percent `json:"stdDevAfter"`
}

// NewAllocation creates the Allocation of a report.
func NewAllocation(r *rebalance.Report) *Allocation {
	p := func(v float64) rebalance.Percent { return rebalance.P(rebalance.F(v)) }
	return &Allocation{
		Date:         date.New(r.Time.Date()),
		Contribution: r.Contribution,
		Rows:         r.Rows,
		Total:        r.Total,
		Spread: Spread{
			MaxBefore:    p(r.Spread.MaxBefore),
			MaxAfter:     p(r.Spread.MaxAfter),
			StdDevBefore: p(r.Spread.StdDevBefore),
			StdDevAfter:  p(r.Spread.StdDevAfter),
		},
	}
}

// IsWithdrawal reports whether money is taken out of the portfolio.
func (a *Allocation) IsWithdrawal() bool { return a.Contribution.IsNegative() }
