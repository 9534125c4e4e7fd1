package renderer

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/etnz/rebalance"
)

// Table writes the report as column-aligned plain text, one line per asset and a total line.
func Table(w io.Writer, r *rebalance.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Asset name\tAsset value\tHoldings %\tNew holdings %\tTarget allocation %\tTarget value\t$ to buy/sell")
	for _, row := range r.Rows {
		tableRow(tw, row)
	}
	tableRow(tw, r.Total)
	return tw.Flush()
}

func tableRow(w io.Writer, row rebalance.ReportRow) {
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		row.Name,
		row.Value.Amount(),
		row.Holding,
		row.NewHolding,
		row.Target,
		row.TargetValue.Amount(),
		row.Delta.Amount(),
	)
}
