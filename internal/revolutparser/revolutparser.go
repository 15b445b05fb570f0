// Package revolutparser loads Revolut Business CSV account statements
// into an ordered sequence of transaction records.
//
// The Revolut export lists transactions newest-first; ParseFile reverses
// them unconditionally so callers always see chronological order.
package revolutparser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"nethemba/revolut-camt/internal/common"
	"nethemba/revolut-camt/internal/currencyutils"
	"nethemba/revolut-camt/internal/dateutils"
	"nethemba/revolut-camt/internal/models"
	"nethemba/revolut-camt/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// revolutCSVRow represents a single row in a Revolut Business CSV
// statement. It uses struct tags for gocsv unmarshaling; columns not
// present in the file stay empty.
type revolutCSVRow struct {
	DateCompleted   string `csv:"Date completed (UTC)"`
	Type            string `csv:"Type"`
	Description     string `csv:"Description"`
	Reference       string `csv:"Reference"`
	ID              string `csv:"ID"`
	PaymentCurrency string `csv:"Payment currency"`
	OrigCurrency    string `csv:"Orig currency"`
	OrigAmount      string `csv:"Orig amount"`
	ExchangeRate    string `csv:"Exchange rate"`
	Amount          string `csv:"Amount"`
	TotalAmount     string `csv:"Total amount"`
	Balance         string `csv:"Balance"`
	BeneficiaryIBAN string `csv:"Beneficiary IBAN"`
	BeneficiaryBIC  string `csv:"Beneficiary BIC"`
}

// requiredColumns must be present in the header for the file to be
// treated as a Revolut Business statement export.
var requiredColumns = []string{
	"Date completed (UTC)", "Total amount", "Balance", "Type",
}

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
		common.SetLogger(logger)
	}
}

// ParseFile parses a Revolut Business CSV file and returns the
// transaction records in chronological order, oldest first.
//
// A malformed completion date or a non-numeric amount field aborts the
// whole run: the returned error wraps a *parsererror.ParseError and no
// partial result is produced. Missing optional fields degrade to empty
// strings or zero amounts.
func ParseFile(filePath string) ([]models.TransactionRecord, error) {
	log.WithField("file", filePath).Info("Parsing Revolut Business CSV file")

	valid, err := ValidateFormat(filePath)
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}
	if !valid {
		return nil, &parsererror.ValidationError{
			FilePath: filePath,
			Reason:   "missing required Revolut statement columns",
		}
	}

	rows, err := common.ReadCSVFile[revolutCSVRow](filePath)
	if err != nil {
		log.WithError(err).Error("Failed to read Revolut CSV file")
		return nil, fmt.Errorf("error reading Revolut CSV: %w", err)
	}

	records := make([]models.TransactionRecord, 0, len(rows))
	for i, row := range rows {
		record, err := convertRow(row, i+1)
		if err != nil {
			log.WithError(err).Error("Failed to convert CSV row")
			return nil, err
		}
		records = append(records, record)
	}

	// The feed is newest-first; reverse to chronological order.
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	log.WithField("count", len(records)).Info("Successfully parsed Revolut CSV file")
	return records, nil
}

// convertRow coerces one CSV row into a TransactionRecord. rowNum is the
// 1-based data row number, used in error messages.
func convertRow(row revolutCSVRow, rowNum int) (models.TransactionRecord, error) {
	completedDate, err := dateutils.ParseISODate(row.DateCompleted)
	if err != nil {
		return models.TransactionRecord{}, &parsererror.ParseError{
			Row: rowNum, Field: "Date completed (UTC)", Value: row.DateCompleted, Err: err,
		}
	}

	totalAmount, err := parseDecimalField(row.TotalAmount, "Total amount", rowNum)
	if err != nil {
		return models.TransactionRecord{}, err
	}
	balance, err := parseDecimalField(row.Balance, "Balance", rowNum)
	if err != nil {
		return models.TransactionRecord{}, err
	}
	amount, err := parseDecimalField(row.Amount, "Amount", rowNum)
	if err != nil {
		return models.TransactionRecord{}, err
	}
	origAmount, err := parseDecimalField(row.OrigAmount, "Orig amount", rowNum)
	if err != nil {
		return models.TransactionRecord{}, err
	}

	paymentCurrency := row.PaymentCurrency
	if paymentCurrency == "" {
		paymentCurrency = "EUR"
	}

	return models.TransactionRecord{
		CompletedDate:   completedDate,
		Type:            row.Type,
		Description:     row.Description,
		Reference:       row.Reference,
		ID:              row.ID,
		TotalAmount:     totalAmount,
		Balance:         balance,
		PaymentCurrency: paymentCurrency,
		OrigCurrency:    row.OrigCurrency,
		OrigAmount:      origAmount,
		OrigAmountRaw:   strings.TrimSpace(row.OrigAmount),
		ExchangeRate:    row.ExchangeRate,
		Amount:          amount,
		BeneficiaryIBAN: row.BeneficiaryIBAN,
		BeneficiaryBIC:  row.BeneficiaryBIC,
	}, nil
}

func parseDecimalField(value, field string, rowNum int) (decimal.Decimal, error) {
	d, err := currencyutils.ParseAmount(value)
	if err != nil {
		return decimal.Zero, &parsererror.ParseError{
			Row: rowNum, Field: field, Value: value, Err: err,
		}
	}
	return d, nil
}

// ValidateFormat checks if the file header carries the columns required
// of a Revolut Business statement export.
func ValidateFormat(filePath string) (bool, error) {
	log.WithField("file", filePath).Debug("Validating Revolut CSV format")

	file, err := os.Open(filePath)
	if err != nil {
		log.WithError(err).Error("Failed to open file for validation")
		return false, fmt.Errorf("error opening file for validation: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = common.Delimiter

	header, err := reader.Read()
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		log.WithError(err).Error("Failed to read CSV header")
		return false, fmt.Errorf("error reading CSV header: %w", err)
	}

	headerMap := make(map[string]bool, len(header))
	for _, col := range header {
		headerMap[col] = true
	}

	for _, requiredCol := range requiredColumns {
		if !headerMap[requiredCol] {
			log.WithField("column", requiredCol).Info("Required column missing from Revolut CSV")
			return false, nil
		}
	}

	return true, nil
}
