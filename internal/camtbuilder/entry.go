package camtbuilder

import (
	"fmt"
	"strings"

	"nethemba/revolut-camt/internal/currencyutils"
	"nethemba/revolut-camt/internal/dateutils"
	"nethemba/revolut-camt/internal/models"
	"nethemba/revolut-camt/internal/textutils"
)

// buildEntry maps one transaction record onto an Ntry element. seq is
// the 1-based chronological sequence number, used both as the entry
// reference and as the account servicer reference.
func (b *Builder) buildEntry(r models.TransactionRecord, seq int, iban string) models.Ntry {
	code, label := models.LookupTxCode(r.Type)
	bkTxCd := models.BkTxCd{Prtry: models.Prtry{Cd: code, Issr: b.profile.Issuer}}
	bookingDate := models.DtDt{Dt: dateutils.ToISODate(r.CompletedDate)}

	return models.Ntry{
		NtryRef: fmt.Sprintf("%d", seq),
		Amt: models.Amt{
			Value: currencyutils.FormatAmount(r.TotalAmount),
			Ccy:   r.PaymentCurrency,
		},
		CdtDbtInd: r.Direction(),
		RvslInd:   "false",
		Sts:       "BOOK",
		BookgDt:   bookingDate,
		ValDt:     bookingDate,
		BkTxCd:    bkTxCd,
		NtryDtls: models.NtryDtls{
			TxDtls: models.TxDtls{
				Refs: models.Refs{
					AcctSvcrRef: fmt.Sprintf("%d", seq),
					TxId:        r.ID,
				},
				AmtDtls:    b.buildAmountDetails(r),
				BkTxCd:     bkTxCd,
				RltdPties:  b.buildRelatedParties(r, iban),
				RltdAgts:   b.buildRelatedAgents(r),
				RmtInf:     models.RmtInf{Ustrd: remittanceText(r)},
				AddtlTxInf: label,
			},
		},
	}
}

// buildAmountDetails emits a foreign-exchange amount pair when the row
// carries a complete conversion (original currency differing from the
// payment currency, original amount, exchange rate); otherwise a single
// same-currency instructed amount.
//
// The counter value uses the pre-fee Amount column while the entry
// amount uses the fee-adjusted Total amount; the asymmetry separates the
// fee from the converted principal and is expected by the receiving bank.
func (b *Builder) buildAmountDetails(r models.TransactionRecord) models.AmtDtls {
	origCcy := strings.TrimSpace(r.OrigCurrency)
	rate := strings.TrimSpace(r.ExchangeRate)

	if origCcy != "" && origCcy != r.PaymentCurrency && r.OrigAmountRaw != "" && rate != "" {
		return models.AmtDtls{
			InstdAmt: models.InstdAmt{
				Amt: models.Amt{
					Value: currencyutils.FormatAmount(r.OrigAmount),
					Ccy:   origCcy,
				},
			},
			CntrValAmt: &models.CntrValAmt{
				Amt: models.Amt{
					Value: currencyutils.FormatAmount(r.Amount),
					Ccy:   r.PaymentCurrency,
				},
				CcyXchg: models.CcyXchg{
					SrcCcy:   origCcy,
					TrgtCcy:  r.PaymentCurrency,
					XchgRate: rate,
				},
			},
		}
	}

	return models.AmtDtls{
		InstdAmt: models.InstdAmt{
			Amt: models.Amt{
				Value: currencyutils.FormatAmount(r.TotalAmount),
				Ccy:   r.PaymentCurrency,
			},
		},
	}
}

// buildRelatedParties constructs the party block. The two directions
// share no logic: money in names the external sender as debtor and the
// account owner as creditor; money out names only the owner as debtor.
func (b *Builder) buildRelatedParties(r models.TransactionRecord, iban string) models.RltdPties {
	if r.IsCredit() {
		senderName := textutils.ExtractSenderName(r.Description)

		parties := models.RltdPties{
			Dbtr: models.Party{Nm: senderName},
			Cdtr: &models.Party{
				Nm:      b.profile.OwnerName,
				PstlAdr: b.ownerAddress(),
			},
			CdtrAcct: &models.PartyAcct{
				Id: models.AcctId{IBAN: iban},
				Nm: b.profile.OwnerName,
			},
		}
		if r.BeneficiaryIBAN != "" {
			parties.DbtrAcct = &models.PartyAcct{
				Id: models.AcctId{IBAN: r.BeneficiaryIBAN},
				Nm: senderName,
			}
		}
		return parties
	}

	return models.RltdPties{
		Dbtr: models.Party{
			Nm:      b.profile.OwnerName,
			PstlAdr: b.ownerAddress(),
		},
		DbtrAcct: &models.PartyAcct{
			Id: models.AcctId{IBAN: iban},
			Nm: b.profile.OwnerName,
		},
	}
}

// buildRelatedAgents constructs the agent block. The servicing bank is
// the creditor agent on credits and the debtor agent on debits; the
// debtor agent on credits is the beneficiary BIC when present.
func (b *Builder) buildRelatedAgents(r models.TransactionRecord) models.RltdAgts {
	servicer := models.Agent{
		FinInstnId: models.AgentFinInstnId{
			BIC: b.profile.ServicerBIC,
			Nm:  b.profile.ServicerName,
		},
	}

	if !r.IsCredit() {
		return models.RltdAgts{DbtrAgt: servicer}
	}

	dbtrAgt := servicer
	if r.BeneficiaryBIC != "" {
		dbtrAgt = models.Agent{
			FinInstnId: models.AgentFinInstnId{BIC: r.BeneficiaryBIC},
		}
	}
	return models.RltdAgts{
		DbtrAgt: dbtrAgt,
		CdtrAgt: &servicer,
	}
}

func (b *Builder) ownerAddress() *models.PstlAdr {
	return &models.PstlAdr{
		AdrLine: []string{b.profile.OwnerAddrLine1, b.profile.OwnerAddrLine2},
	}
}

// remittanceText joins the non-empty description and reference with a
// semicolon; when both are empty the raw transaction type stands in.
func remittanceText(r models.TransactionRecord) string {
	var parts []string
	if r.Description != "" {
		parts = append(parts, r.Description)
	}
	if r.Reference != "" {
		parts = append(parts, r.Reference)
	}
	if len(parts) == 0 {
		return r.Type
	}
	return strings.Join(parts, "; ")
}
