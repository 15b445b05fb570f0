package camtbuilder

import (
	"fmt"
	"time"

	"nethemba/revolut-camt/internal/currencyutils"
	"nethemba/revolut-camt/internal/dateutils"
	"nethemba/revolut-camt/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Builder assembles camt.053 documents for one statement profile. The
// clock is injectable so tests get deterministic message ids.
type Builder struct {
	profile Profile
	now     func() time.Time
}

// New creates a Builder with the given profile and the system clock.
func New(profile Profile) *Builder {
	return &Builder{profile: profile, now: time.Now}
}

// NewWithClock creates a Builder with a fixed clock, for tests.
func NewWithClock(profile Profile, now func() time.Time) *Builder {
	return &Builder{profile: profile, now: now}
}

// Build composes the complete document from chronological records and
// the derived statement facts. Entry order matches record order exactly;
// sequence numbers are dense and start at 1.
func (b *Builder) Build(records []models.TransactionRecord, stmt models.Statement, iban string) *models.Camt053Document {
	now := b.now().UTC()
	creDtTm := now.Format(dateutils.DateLayoutISO) + "T" + now.Format("15:04:05") + ".0+00:00"

	entries := make([]models.Ntry, 0, len(records))
	for idx, r := range records {
		entries = append(entries, b.buildEntry(r, idx+1, iban))
	}

	doc := &models.Camt053Document{
		Xmlns:          models.Camt053Namespace,
		XmlnsXsi:       models.XSINamespace,
		SchemaLocation: models.Camt053SchemaLocation,
		BkToCstmrStmt: models.BkToCstmrStmt{
			GrpHdr: models.GrpHdr{
				MsgId:   b.messageID(iban, now),
				CreDtTm: creDtTm,
				MsgPgntn: models.MsgPgntn{
					PgNb:      "1",
					LastPgInd: "true",
				},
				AddtlInf: b.profile.AdditionalInfo,
			},
			Stmt: models.Stmt{
				Id: fmt.Sprintf("%s-%s-%s", iban,
					stmt.FirstDate.Format(dateutils.DateLayoutShort),
					stmt.LastDate.Format(dateutils.DateLayoutShort)),
				ElctrncSeqNb: "1",
				LglSeqNb:     "1",
				CreDtTm:      creDtTm,
				FrToDt: models.FrToDt{
					FrDtTm: dateutils.ToISODate(stmt.FirstDate) + "T00:00:00.0+00:00",
					ToDtTm: dateutils.ToISODate(stmt.LastDate) + "T23:59:59.9+00:00",
				},
				Acct:      b.buildAccount(iban),
				Bal:       b.buildBalances(stmt),
				TxsSummry: b.buildSummary(stmt.Totals),
				Ntry:      entries,
			},
		},
	}

	log.WithFields(logrus.Fields{
		"entries": len(entries),
		"iban":    iban,
	}).Info("Assembled camt.053 document")
	return doc
}

// messageID derives a unique message id from the servicer code, the last
// four IBAN digits and the creation timestamp.
func (b *Builder) messageID(iban string, now time.Time) string {
	suffix := iban
	if len(iban) > 4 {
		suffix = iban[len(iban)-4:]
	}
	return fmt.Sprintf("%s-%s-%s-%s", b.profile.ServicerBIC, suffix,
		now.Format(dateutils.DateLayoutShort), now.Format(dateutils.TimeLayoutShort))
}

func (b *Builder) buildAccount(iban string) models.Acct {
	return models.Acct{
		Id:  models.AcctId{IBAN: iban},
		Tp:  models.AcctTp{Cd: "CACC"},
		Ccy: b.profile.Currency,
		Nm:  b.profile.OwnerName,
		Ownr: models.Ownr{
			Nm: b.profile.OwnerName,
			PstlAdr: models.PstlAdr{
				AdrLine: []string{
					b.profile.OwnerAddrLine1,
					b.profile.OwnerAddrLine2,
					b.profile.OwnerCountryLine,
				},
			},
		},
		Svcr: models.AcctSvcr{
			FinInstnId: models.SvcrFinInstnId{
				BIC:     b.profile.ServicerBIC,
				Nm:      b.profile.ServicerName,
				PstlAdr: models.CtryAddr{Ctry: b.profile.ServicerCountry},
			},
		},
	}
}

func (b *Builder) buildBalances(stmt models.Statement) []models.Bal {
	return []models.Bal{
		b.buildBalance("PRCD", stmt.OpeningBalance, stmt.FirstDate),
		b.buildBalance("CLBD", stmt.ClosingBalance, stmt.LastDate),
	}
}

func (b *Builder) buildBalance(code string, amount decimal.Decimal, date time.Time) models.Bal {
	return models.Bal{
		Tp: models.BalTp{CdOrPrtry: models.CdOrPrtry{Cd: code}},
		Amt: models.Amt{
			Value: currencyutils.FormatAmount(amount),
			Ccy:   b.profile.Currency,
		},
		CdtDbtInd: direction(amount),
		Dt:        models.DtDt{Dt: dateutils.ToISODate(date)},
	}
}

func (b *Builder) buildSummary(totals models.SummaryTotals) models.TxsSummry {
	return models.TxsSummry{
		TtlNtries: models.TtlNtries{
			NbOfNtries:    fmt.Sprintf("%d", totals.EntryCount()),
			Sum:           currencyutils.FormatAmount(totals.GrossSum()),
			TtlNetNtryAmt: currencyutils.FormatAmount(totals.Net()),
			CdtDbtInd:     totals.NetDirection(),
		},
		TtlCdtNtries: models.TtlDirNtries{
			NbOfNtries: fmt.Sprintf("%d", totals.CreditCount),
			Sum:        currencyutils.FormatAmount(totals.CreditSum),
		},
		TtlDbtNtries: models.TtlDirNtries{
			NbOfNtries: fmt.Sprintf("%d", totals.DebitCount),
			Sum:        currencyutils.FormatAmount(totals.DebitSum),
		},
	}
}

// direction classifies an amount as credit or debit; zero is credit.
func direction(d decimal.Decimal) string {
	if d.Sign() >= 0 {
		return models.Credit
	}
	return models.Debit
}
