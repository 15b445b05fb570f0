// Package statement derives statement-level facts from an ordered
// sequence of transaction records.
package statement

import (
	"errors"

	"nethemba/revolut-camt/internal/models"
)

// ErrNoTransactions is returned when the CSV yielded zero rows. The
// caller treats it as a fatal user-facing error.
var ErrNoTransactions = errors.New("no transactions found in CSV")

// Aggregate computes the statement date range, opening/closing balances
// and summary totals from records in chronological order (oldest first).
//
// The opening balance is not taken from any CSV field directly: it is
// reconstructed as the first record's balance-after minus its total
// amount, i.e. the balance immediately before the oldest transaction.
func Aggregate(records []models.TransactionRecord) (models.Statement, error) {
	if len(records) == 0 {
		return models.Statement{}, ErrNoTransactions
	}

	first := records[0]
	last := records[len(records)-1]

	stmt := models.Statement{
		FirstDate:      first.CompletedDate,
		LastDate:       last.CompletedDate,
		OpeningBalance: first.Balance.Sub(first.TotalAmount),
		ClosingBalance: last.Balance,
	}

	for _, r := range records {
		if r.CompletedDate.Before(stmt.FirstDate) {
			stmt.FirstDate = r.CompletedDate
		}
		if r.CompletedDate.After(stmt.LastDate) {
			stmt.LastDate = r.CompletedDate
		}

		if r.IsCredit() {
			stmt.Totals.CreditSum = stmt.Totals.CreditSum.Add(r.TotalAmount)
			stmt.Totals.CreditCount++
		} else {
			stmt.Totals.DebitSum = stmt.Totals.DebitSum.Add(r.TotalAmount.Abs())
			stmt.Totals.DebitCount++
		}
	}

	return stmt, nil
}
