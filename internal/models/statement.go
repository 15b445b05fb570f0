package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SummaryTotals holds the per-direction totals of a statement, computed
// in a single pass over the chronological records.
type SummaryTotals struct {
	CreditSum   decimal.Decimal
	DebitSum    decimal.Decimal
	CreditCount int
	DebitCount  int
}

// EntryCount returns the total number of entries.
func (t SummaryTotals) EntryCount() int {
	return t.CreditCount + t.DebitCount
}

// GrossSum returns the sum of all entry amounts regardless of direction.
func (t SummaryTotals) GrossSum() decimal.Decimal {
	return t.CreditSum.Add(t.DebitSum)
}

// Net returns credit sum minus debit sum.
func (t SummaryTotals) Net() decimal.Decimal {
	return t.CreditSum.Sub(t.DebitSum)
}

// NetDirection returns the credit/debit indicator of the net amount.
// A zero net is credit by convention.
func (t SummaryTotals) NetDirection() string {
	if t.Net().Sign() >= 0 {
		return Credit
	}
	return Debit
}

// Statement holds the statement-level facts derived from the ordered
// transaction records.
type Statement struct {
	FirstDate      time.Time
	LastDate       time.Time
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
	Totals         SummaryTotals
}
