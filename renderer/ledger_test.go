package renderer

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/date"
)

func TestLedger(t *testing.T) {
	a, err := rebalance.Rebalance(rebalance.F(10000), lazyPortfolio())
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	err = Ledger(&b, rebalance.NewReport(a, "CAD"), LedgerOptions{
		Date:        date.MustParse("2025-07-01"),
		Destination: "Assets:Investments",
		Source:      "Assets:Chequing",
	})
	if err != nil {
		t.Fatal(err)
	}

	posting := func(account, amount string) string {
		return fmt.Sprintf("    %-76s%s\n", account, amount)
	}
	want := "2025-07-01 * Contribution to TIPS fund\n" +
		posting("Assets:Investments", "4428.57 CAD") +
		posting("Assets:Chequing", "-4428.57 CAD") +
		"\n" +
		"2025-07-01 * Contribution to Bond fund\n" +
		posting("Assets:Investments", "5357.14 CAD") +
		posting("Assets:Chequing", "-5357.14 CAD") +
		"\n" +
		"2025-07-01 * Contribution to Domestic Stock ETF\n" +
		posting("Assets:Investments", "214.29 CAD") +
		posting("Assets:Chequing", "-214.29 CAD")

	if got := b.String(); got != want {
		t.Errorf("Ledger() mismatch:\n--- want\n%s\n+++ got\n%s", want, got)
	}
	// the amount column starts after the padded account.
	if i := strings.Index(b.String(), "4428.57"); i != len("2025-07-01 * Contribution to TIPS fund\n")+4+76 {
		t.Errorf("amount at offset %d", i)
	}
}

func TestLedger_Withdrawal(t *testing.T) {
	a, err := rebalance.Rebalance(rebalance.F(-10000), lazyPortfolio())
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	err = Ledger(&b, rebalance.NewReport(a, "CAD"), LedgerOptions{
		Date:        date.MustParse("2025-07-01"),
		Destination: "Assets:Investments",
		Source:      "Assets:Chequing",
	})
	if err != nil {
		t.Fatal(err)
	}

	got := b.String()
	// input order: Domestic then International.
	dom := strings.Index(got, "2025-07-01 * Withdrawal from Domestic Stock ETF\n")
	intl := strings.Index(got, "2025-07-01 * Withdrawal from International Stock ETF\n")
	if dom < 0 || intl < 0 || dom > intl {
		t.Fatalf("unexpected transactions:\n%s", got)
	}
	for _, s := range []string{"-5214.29 CAD\n", "5214.29 CAD\n", "-4785.71 CAD\n", "4785.71 CAD\n"} {
		if !strings.Contains(got, s) {
			t.Errorf("missing %q in:\n%s", s, got)
		}
	}
	if strings.Contains(got, "TIPS") || strings.Contains(got, "Bond") {
		t.Errorf("untouched assets must be skipped:\n%s", got)
	}
}

func TestLedger_DefaultsToToday(t *testing.T) {
	a, err := rebalance.Rebalance(rebalance.F(100), lazyPortfolio())
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := Ledger(&b, rebalance.NewReport(a, "CAD"), LedgerOptions{}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(b.String(), date.Today().String()+" * Contribution to TIPS fund\n") {
		t.Errorf("got:\n%s", b.String())
	}
}

func TestLedger_SubCentDelta(t *testing.T) {
	r := &rebalance.Report{
		Currency: "CAD",
		Rows: []rebalance.ReportRow{
			{Name: "TIPS fund", Delta: rebalance.M(rebalance.NewFraction(1, 1000), "CAD")},
			{Name: "Gold", Delta: rebalance.M(rebalance.F(0), "CAD")},
		},
	}
	var b bytes.Buffer
	err := Ledger(&b, r, LedgerOptions{
		Date:        date.MustParse("2025-07-01"),
		Destination: "Assets:Investments",
		Source:      "Assets:Chequing",
	})
	if err != nil {
		t.Fatal(err)
	}

	got := b.String()
	if !strings.HasPrefix(got, "2025-07-01 * Contribution to TIPS fund\n") {
		t.Errorf("a delta of 1/1000 must have its transaction, got:\n%s", got)
	}
	if strings.Contains(got, "Gold") {
		t.Errorf("a zero delta must be skipped, got:\n%s", got)
	}
}
