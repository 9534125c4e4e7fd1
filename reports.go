package rebalance

import (
	"math"
	"time"

	"github.com/montanaflynn/stats"
)

// Report is the presentation of an Allocation: one row per asset and a total row.
type Report struct {
	Time         time.Time // Generation time
	Currency     string
	Contribution Money
	Rows         []ReportRow // in input order
	Total        ReportRow
	Spread       Spread
}

// ReportRow is one asset of a Report.
type ReportRow struct {
	Name        string  `json:"name"`
	Value       Money   `json:"value"`
	Holding     Percent `json:"holding"`    // current share of the portfolio
	NewHolding  Percent `json:"newHolding"` // share once the delta is applied
	Target      Percent `json:"target"`
	TargetValue Money   `json:"targetValue"`
	Delta       Money   `json:"delta"` // amount to buy or sell
}

// Spread summarizes how far the portfolio is from its targets, before and after the
// contribution. Deviations are relative (value / target value - 1).
type Spread struct {
	MaxBefore    float64 `json:"maxBefore"` // largest absolute deviation
	MaxAfter     float64 `json:"maxAfter"`
	StdDevBefore float64 `json:"stdDevBefore"` // population standard deviation
	StdDevAfter  float64 `json:"stdDevAfter"`
}

// NewReport builds the report of a, amounts in currency cur.
func NewReport(a *Allocation, cur string) *Report {
	r := &Report{
		Time:         time.Now(),
		Currency:     cur,
		Contribution: M(a.Contribution, cur),
		Total:        ReportRow{Name: "Total"},
	}

	var before, after stats.Float64Data
	for _, p := range a.InputOrder() {
		row := ReportRow{
			Name:        p.Name(),
			Value:       M(p.Value(), cur),
			Holding:     P(p.ActualAllocation),
			NewHolding:  P(p.NewValue().Div(a.GrandTotal)),
			Target:      P(p.Target()),
			TargetValue: M(p.TargetValue, cur),
			Delta:       M(p.Delta, cur),
		}
		r.Rows = append(r.Rows, row)

		r.Total.Value = r.Total.Value.Add(row.Value)
		r.Total.Holding = r.Total.Holding.Add(row.Holding)
		r.Total.NewHolding = r.Total.NewHolding.Add(row.NewHolding)
		r.Total.Target = r.Total.Target.Add(row.Target)
		r.Total.TargetValue = r.Total.TargetValue.Add(row.TargetValue)
		r.Total.Delta = r.Total.Delta.Add(row.Delta)

		before = append(before, math.Abs(p.Deviation.Float64()))
		after = append(after, math.Abs(p.NewDeviation().Float64()))
	}
	r.Spread = newSpread(before, after)
	return r
}

func newSpread(before, after stats.Float64Data) Spread {
	if len(before) == 0 {
		return Spread{}
	}
	// errors only come from empty inputs.
	var s Spread
	s.MaxBefore, _ = stats.Max(before)
	s.MaxAfter, _ = stats.Max(after)
	s.StdDevBefore, _ = stats.StandardDeviationPopulation(before)
	s.StdDevAfter, _ = stats.StandardDeviationPopulation(after)
	return s
}

func (r *Report) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("time", r.Time.Format(time.RFC3339))
	w.Optional("currency", r.Currency)
	w.Append("contribution", r.Contribution)
	w.Append("rows", r.Rows)
	w.Append("total", r.Total)
	w.Append("spread", r.Spread)
	return w.MarshalJSON()
}
