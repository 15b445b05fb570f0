package statement

import (
	"testing"
	"time"

	"nethemba/revolut-camt/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func record(date, total, balance string) models.TransactionRecord {
	return models.TransactionRecord{
		CompletedDate: day(date),
		TotalAmount:   dec(total),
		Balance:       dec(balance),
	}
}

func TestAggregate(t *testing.T) {
	records := []models.TransactionRecord{
		record("2026-01-10", "100.00", "100.00"),
		record("2026-01-15", "-5.00", "95.00"),
		record("2026-01-20", "-45.95", "49.05"),
	}

	stmt, err := Aggregate(records)
	require.NoError(t, err)

	assert.Equal(t, day("2026-01-10"), stmt.FirstDate)
	assert.Equal(t, day("2026-01-20"), stmt.LastDate)

	// Opening balance is reconstructed from the first record, not read
	// from any CSV field: balance-after minus total amount.
	assert.True(t, stmt.OpeningBalance.Equal(dec("0")),
		"opening balance should be %s, got %s", "0", stmt.OpeningBalance)
	assert.True(t, stmt.ClosingBalance.Equal(dec("49.05")))

	assert.Equal(t, 1, stmt.Totals.CreditCount)
	assert.Equal(t, 2, stmt.Totals.DebitCount)
	assert.Equal(t, 3, stmt.Totals.EntryCount())
	assert.True(t, stmt.Totals.CreditSum.Equal(dec("100.00")))
	assert.True(t, stmt.Totals.DebitSum.Equal(dec("50.95")))
	assert.True(t, stmt.Totals.GrossSum().Equal(dec("150.95")))
	assert.True(t, stmt.Totals.Net().Equal(dec("49.05")))
	assert.Equal(t, "CRDT", stmt.Totals.NetDirection())
}

func TestAggregateSummaryInvariant(t *testing.T) {
	records := []models.TransactionRecord{
		record("2026-02-01", "10.00", "10.00"),
		record("2026-02-02", "-2.50", "7.50"),
		record("2026-02-03", "-1.25", "6.25"),
	}

	stmt, err := Aggregate(records)
	require.NoError(t, err)

	net := stmt.Totals.CreditSum.Sub(stmt.Totals.DebitSum)
	assert.True(t, stmt.Totals.Net().Equal(net))
	assert.Equal(t, stmt.Totals.EntryCount(), stmt.Totals.CreditCount+stmt.Totals.DebitCount)
}

func TestAggregateOpeningBalanceExact(t *testing.T) {
	// No rounding drift: 0.10 - 0.30 must be exactly -0.20.
	records := []models.TransactionRecord{
		record("2026-03-01", "0.30", "0.10"),
	}

	stmt, err := Aggregate(records)
	require.NoError(t, err)
	assert.True(t, stmt.OpeningBalance.Equal(dec("-0.20")),
		"expected -0.20, got %s", stmt.OpeningBalance)
}

func TestAggregateZeroAmountIsCredit(t *testing.T) {
	records := []models.TransactionRecord{
		record("2026-01-10", "0.00", "50.00"),
	}

	stmt, err := Aggregate(records)
	require.NoError(t, err)
	assert.Equal(t, 1, stmt.Totals.CreditCount)
	assert.Equal(t, 0, stmt.Totals.DebitCount)
	assert.Equal(t, "CRDT", stmt.Totals.NetDirection(), "a zero net is credit by convention")
}

func TestAggregateNetTieIsCredit(t *testing.T) {
	records := []models.TransactionRecord{
		record("2026-01-10", "25.00", "25.00"),
		record("2026-01-11", "-25.00", "0.00"),
	}

	stmt, err := Aggregate(records)
	require.NoError(t, err)
	assert.True(t, stmt.Totals.Net().IsZero())
	assert.Equal(t, "CRDT", stmt.Totals.NetDirection())
}

func TestAggregateEmpty(t *testing.T) {
	_, err := Aggregate(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoTransactions)
}
