package renderer

import (
	"fmt"
	"io"

	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/date"
)

// LedgerOptions configures the ledger entries.
type LedgerOptions struct {
	Date        date.Date // Defaults to today.
	Destination string    // Account receiving the deltas, e.g. "Assets:Investments:TIPS".
	Source      string    // Account the money comes from, e.g. "Assets:Chequing".
}

// accountWidth is the column the amounts are aligned on.
const accountWidth = 76

// Ledger writes one plain-text accounting transaction per asset that is bought or sold.
// Assets with a delta of exactly zero are skipped, sub-cent deltas are not. Transactions are separated by a blank line.
//
//	2025-07-01 * Contribution to TIPS fund
//	    Assets:Investments          4428.57 CAD
//	    Assets:Chequing            -4428.57 CAD
func Ledger(w io.Writer, r *rebalance.Report, opts LedgerOptions) error {
	on := opts.Date
	if on.IsZero() {
		on = date.Today()
	}

	first := true
	for _, row := range r.Rows {
		if row.Delta.IsZero() {
			continue
		}
		if !first {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		first = false

		label := "Contribution to"
		if row.Delta.IsNegative() {
			label = "Withdrawal from"
		}
		_, err := fmt.Fprintf(w, "%s * %s %s\n    %-*s%s\n    %-*s%s\n",
			on, label, row.Name,
			accountWidth, opts.Destination, row.Delta,
			accountWidth, opts.Source, row.Delta.Neg(),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
