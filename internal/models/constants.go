package models

// UnknownTxCode is emitted for transaction types without a proprietary
// code mapping. The raw type string doubles as the label in that case.
const UnknownTxCode = "99999999999"

// TxCodes maps Revolut transaction types to the proprietary bank
// transaction codes expected by the receiving bank.
var TxCodes = map[string]string{
	"CARD_PAYMENT": "30000301000",
	"TOPUP":        "10000405000",
	"FEE":          "40000605000",
	"TRANSFER":     "20000405000",
}

// TxLabels maps Revolut transaction types to the Slovak descriptive
// labels carried in AddtlTxInf.
var TxLabels = map[string]string{
	"CARD_PAYMENT": "Kartova transakcia",
	"TOPUP":        "Prijata platba",
	"FEE":          "Poplatok",
	"TRANSFER":     "Odchadzajuca platba",
}

// LookupTxCode returns the proprietary code and label for a transaction
// type. Unrecognized types get the sentinel code and the raw type string
// as label.
func LookupTxCode(txType string) (code, label string) {
	code, ok := TxCodes[txType]
	if !ok {
		code = UnknownTxCode
	}
	label, ok = TxLabels[txType]
	if !ok {
		label = txType
	}
	return code, label
}
