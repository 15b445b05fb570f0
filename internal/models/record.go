// Package models provides the data structures used throughout the application.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Credit/debit indicators as used by ISO 20022.
const (
	Credit = "CRDT"
	Debit  = "DBIT"
)

// TransactionRecord represents one booked transaction from a Revolut
// Business CSV export. Amounts are exact decimals; TotalAmount keeps its
// sign (negative = money out), Balance is the account balance after the
// transaction was applied.
type TransactionRecord struct {
	CompletedDate   time.Time
	Type            string
	Description     string
	Reference       string
	ID              string
	TotalAmount     decimal.Decimal
	Balance         decimal.Decimal
	PaymentCurrency string

	// Foreign-exchange fields, present only on currency conversions.
	// ExchangeRate is kept verbatim so it can be re-emitted untouched.
	// OrigAmountRaw records whether the source carried an original
	// amount at all; the parsed decimal alone cannot distinguish an
	// explicit "0.00" from an absent field.
	OrigCurrency  string
	OrigAmount    decimal.Decimal
	OrigAmountRaw string
	ExchangeRate  string

	// Amount is the pre-fee principal; TotalAmount is fee-adjusted.
	Amount decimal.Decimal

	BeneficiaryIBAN string
	BeneficiaryBIC  string
}

// IsCredit reports whether the record books money in. A zero total amount
// counts as credit.
func (r TransactionRecord) IsCredit() bool {
	return r.TotalAmount.Sign() >= 0
}

// Direction returns the ISO 20022 credit/debit indicator for the record.
func (r TransactionRecord) Direction() string {
	if r.IsCredit() {
		return Credit
	}
	return Debit
}
