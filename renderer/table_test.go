package renderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/etnz/rebalance"
)

func TestTable(t *testing.T) {
	a, err := rebalance.Rebalance(rebalance.F(10000), lazyPortfolio())
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := Table(&b, rebalance.NewReport(a, "CAD")); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), b.String())
	}

	// columns are separated by at least two spaces.
	split := func(line string) []string {
		var res []string
		for _, f := range strings.Split(line, "  ") {
			if f = strings.TrimSpace(f); f != "" {
				res = append(res, f)
			}
		}
		return res
	}

	testCases := []struct {
		line int
		want []string
	}{
		{0, []string{"Asset name", "Asset value", "Holdings %", "New holdings %", "Target allocation %", "Target value", "$ to buy/sell"}},
		{1, []string{"TIPS fund", "6500.00", "6.500", "9.935", "10.000", "11000.00", "4428.57"}},
		{2, []string{"Bond fund", "16500.00", "16.500", "19.870", "20.000", "22000.00", "5357.14"}},
		{3, []string{"Domestic Stock ETF", "43500.00", "43.500", "39.740", "40.000", "44000.00", "214.29"}},
		{4, []string{"International Stock ETF", "33500.00", "33.500", "30.455", "30.000", "33000.00", "0.00"}},
		{5, []string{"Total", "100000.00", "100.000", "100.000", "100.000", "110000.00", "10000.00"}},
	}
	for _, tc := range testCases {
		if got := split(lines[tc.line]); strings.Join(got, "|") != strings.Join(tc.want, "|") {
			t.Errorf("line %d = %q, want %q", tc.line, got, tc.want)
		}
	}

	// aligned: every line has the last column at the same offset.
	col := strings.Index(lines[0], "$ to buy/sell")
	for i, line := range lines[1:] {
		if len(line) <= col || line[col-1] != ' ' || line[col] == ' ' {
			t.Errorf("line %d is not aligned on column %d: %q", i+1, col, line)
		}
	}
}

func TestTable_KeepsRows(t *testing.T) {
	a, err := rebalance.Rebalance(rebalance.F(10000), lazyPortfolio())
	if err != nil {
		t.Fatal(err)
	}
	r := rebalance.NewReport(a, "CAD")
	// spare capacity after the last row.
	rows := make([]rebalance.ReportRow, len(r.Rows), len(r.Rows)+1)
	copy(rows, r.Rows)
	r.Rows = rows

	var b bytes.Buffer
	if err := Table(&b, r); err != nil {
		t.Fatal(err)
	}
	if spare := r.Rows[:cap(r.Rows)][len(r.Rows)]; spare.Name != "" {
		t.Errorf("Table() wrote %q after the report rows", spare.Name)
	}
	if !strings.Contains(b.String(), "\nTotal ") {
		t.Errorf("missing total line:\n%s", b.String())
	}
}
