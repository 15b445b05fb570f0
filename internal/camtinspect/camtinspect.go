// Package camtinspect reads key facts back out of a generated camt.053
// document using XPath. It is a sanity check for produced statements,
// not a schema validator.
package camtinspect

import (
	"fmt"

	"nethemba/revolut-camt/internal/fileutils"
	"nethemba/revolut-camt/internal/xmlutils"

	"github.com/sirupsen/logrus"
	"gopkg.in/xmlpath.v2"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
		xmlutils.SetLogger(logger)
	}
}

// BalanceInfo is one balance line read back from the document.
type BalanceInfo struct {
	Code      string
	Amount    string
	Currency  string
	Direction string
}

// Summary holds the statement facts extracted from a camt.053 file.
type Summary struct {
	MsgID       string
	StatementID string
	IBAN        string
	EntryCount  int
	CreditCount int
	DebitCount  int
	Balances    []BalanceInfo
}

// XPath expressions for the statement facts we read back.
const (
	xpathMsgID       = "//BkToCstmrStmt/GrpHdr/MsgId"
	xpathStatementID = "//BkToCstmrStmt/Stmt/Id"
	xpathIBAN        = "//BkToCstmrStmt/Stmt/Acct/Id/IBAN"
	xpathEntryDir    = "//Stmt/Ntry/CdtDbtInd"
	xpathBalCode     = "//Stmt/Bal/Tp/CdOrPrtry/Cd"
	xpathBalAmount   = "//Stmt/Bal/Amt"
	xpathBalCcy      = "//Stmt/Bal/Amt/@Ccy"
	xpathBalDir      = "//Stmt/Bal/CdtDbtInd"
)

// ValidateFormat checks if a file parses as XML and carries a bank to
// customer statement.
func ValidateFormat(filePath string) (bool, error) {
	file, err := fileutils.OpenFile(filePath)
	if err != nil {
		return false, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	root, err := xmlpath.Parse(file)
	if err != nil {
		log.WithField("file", filePath).Info("File is not valid XML")
		return false, nil
	}

	path := xmlpath.MustCompile("//BkToCstmrStmt/Stmt")
	if iter := path.Iter(root); !iter.Next() {
		log.WithField("file", filePath).Info("File carries no bank statement")
		return false, nil
	}

	return true, nil
}

// Summarize extracts the statement summary from a camt.053 XML file.
func Summarize(filePath string) (Summary, error) {
	log.WithField("file", filePath).Info("Inspecting camt.053 file")

	valid, err := ValidateFormat(filePath)
	if err != nil {
		return Summary{}, err
	}
	if !valid {
		return Summary{}, fmt.Errorf("not a camt.053 statement: %s", filePath)
	}

	root, err := xmlutils.LoadXMLFile(filePath)
	if err != nil {
		return Summary{}, err
	}

	msgIDs, err := xmlutils.ExtractFromXML(root, xpathMsgID)
	if err != nil {
		return Summary{}, err
	}
	stmtIDs, _ := xmlutils.ExtractFromXML(root, xpathStatementID)
	ibans, _ := xmlutils.ExtractFromXML(root, xpathIBAN)
	entryDirs, _ := xmlutils.ExtractFromXML(root, xpathEntryDir)

	balCodes, _ := xmlutils.ExtractFromXML(root, xpathBalCode)
	balAmounts, _ := xmlutils.ExtractFromXML(root, xpathBalAmount)
	balCcys, _ := xmlutils.ExtractFromXML(root, xpathBalCcy)
	balDirs, _ := xmlutils.ExtractFromXML(root, xpathBalDir)

	summary := Summary{
		MsgID:       xmlutils.GetOrEmpty(msgIDs, 0),
		StatementID: xmlutils.GetOrEmpty(stmtIDs, 0),
		IBAN:        xmlutils.GetOrEmpty(ibans, 0),
		EntryCount:  len(entryDirs),
	}

	for _, dir := range entryDirs {
		if dir == "CRDT" {
			summary.CreditCount++
		} else {
			summary.DebitCount++
		}
	}

	for i, code := range balCodes {
		summary.Balances = append(summary.Balances, BalanceInfo{
			Code:      code,
			Amount:    xmlutils.GetOrEmpty(balAmounts, i),
			Currency:  xmlutils.GetOrEmpty(balCcys, i),
			Direction: xmlutils.GetOrEmpty(balDirs, i),
		})
	}

	return summary, nil
}
