package models

import "encoding/xml"

// XML namespace constants for the camt.053.001.02 document.
const (
	Camt053Namespace      = "urn:iso:std:iso:20022:tech:xsd:camt.053.001.02"
	XSINamespace          = "http://www.w3.org/2001/XMLSchema-instance"
	Camt053SchemaLocation = Camt053Namespace + " camt.053.001.02.xsd"
)

// Camt053Document is the root of a camt.053.001.02 XML document as
// written by this tool. Struct field order matches the schema's element
// order, which encoding/xml preserves.
type Camt053Document struct {
	XMLName        xml.Name      `xml:"Document"`
	Xmlns          string        `xml:"xmlns,attr"`
	XmlnsXsi       string        `xml:"xmlns:xsi,attr"`
	SchemaLocation string        `xml:"xsi:schemaLocation,attr"`
	BkToCstmrStmt  BkToCstmrStmt `xml:"BkToCstmrStmt"`
}

// BkToCstmrStmt represents the Bank To Customer Statement.
type BkToCstmrStmt struct {
	GrpHdr GrpHdr `xml:"GrpHdr"`
	Stmt   Stmt   `xml:"Stmt"`
}

// GrpHdr represents the Group Header.
type GrpHdr struct {
	MsgId    string   `xml:"MsgId"`
	CreDtTm  string   `xml:"CreDtTm"`
	MsgPgntn MsgPgntn `xml:"MsgPgntn"`
	AddtlInf string   `xml:"AddtlInf"`
}

// MsgPgntn represents the Message Pagination.
type MsgPgntn struct {
	PgNb      string `xml:"PgNb"`
	LastPgInd string `xml:"LastPgInd"`
}

// Stmt represents the Statement.
type Stmt struct {
	Id           string    `xml:"Id"`
	ElctrncSeqNb string    `xml:"ElctrncSeqNb"`
	LglSeqNb     string    `xml:"LglSeqNb"`
	CreDtTm      string    `xml:"CreDtTm"`
	FrToDt       FrToDt    `xml:"FrToDt"`
	Acct         Acct      `xml:"Acct"`
	Bal          []Bal     `xml:"Bal"`
	TxsSummry    TxsSummry `xml:"TxsSummry"`
	Ntry         []Ntry    `xml:"Ntry"`
}

// FrToDt represents the statement period.
type FrToDt struct {
	FrDtTm string `xml:"FrDtTm"`
	ToDtTm string `xml:"ToDtTm"`
}

// Acct represents the statement account.
type Acct struct {
	Id   AcctId   `xml:"Id"`
	Tp   AcctTp   `xml:"Tp"`
	Ccy  string   `xml:"Ccy"`
	Nm   string   `xml:"Nm"`
	Ownr Ownr     `xml:"Ownr"`
	Svcr AcctSvcr `xml:"Svcr"`
}

// AcctId represents the account identification.
type AcctId struct {
	IBAN string `xml:"IBAN"`
}

// AcctTp represents the account type.
type AcctTp struct {
	Cd string `xml:"Cd"`
}

// Ownr represents the account owner.
type Ownr struct {
	Nm      string  `xml:"Nm"`
	PstlAdr PstlAdr `xml:"PstlAdr"`
}

// PstlAdr represents a postal address as unstructured address lines.
type PstlAdr struct {
	AdrLine []string `xml:"AdrLine"`
}

// AcctSvcr represents the account servicer.
type AcctSvcr struct {
	FinInstnId SvcrFinInstnId `xml:"FinInstnId"`
}

// SvcrFinInstnId identifies the servicing financial institution.
type SvcrFinInstnId struct {
	BIC     string   `xml:"BIC"`
	Nm      string   `xml:"Nm"`
	PstlAdr CtryAddr `xml:"PstlAdr"`
}

// CtryAddr is a country-only postal address.
type CtryAddr struct {
	Ctry string `xml:"Ctry"`
}

// Bal represents a balance entry (PRCD or CLBD).
type Bal struct {
	Tp        BalTp  `xml:"Tp"`
	Amt       Amt    `xml:"Amt"`
	CdtDbtInd string `xml:"CdtDbtInd"`
	Dt        DtDt   `xml:"Dt"`
}

// BalTp represents the balance type.
type BalTp struct {
	CdOrPrtry CdOrPrtry `xml:"CdOrPrtry"`
}

// CdOrPrtry represents the Code or Proprietary choice.
type CdOrPrtry struct {
	Cd string `xml:"Cd"`
}

// Amt represents a monetary amount with a currency attribute.
type Amt struct {
	Value string `xml:",chardata"`
	Ccy   string `xml:"Ccy,attr"`
}

// DtDt wraps a plain date element.
type DtDt struct {
	Dt string `xml:"Dt"`
}

// TxsSummry represents the transactions summary block.
type TxsSummry struct {
	TtlNtries    TtlNtries    `xml:"TtlNtries"`
	TtlCdtNtries TtlDirNtries `xml:"TtlCdtNtries"`
	TtlDbtNtries TtlDirNtries `xml:"TtlDbtNtries"`
}

// TtlNtries represents the grand total of entries.
type TtlNtries struct {
	NbOfNtries    string `xml:"NbOfNtries"`
	Sum           string `xml:"Sum"`
	TtlNetNtryAmt string `xml:"TtlNetNtryAmt"`
	CdtDbtInd     string `xml:"CdtDbtInd"`
}

// TtlDirNtries represents a per-direction entry total.
type TtlDirNtries struct {
	NbOfNtries string `xml:"NbOfNtries"`
	Sum        string `xml:"Sum"`
}

// Ntry represents one statement entry.
type Ntry struct {
	NtryRef   string   `xml:"NtryRef"`
	Amt       Amt      `xml:"Amt"`
	CdtDbtInd string   `xml:"CdtDbtInd"`
	RvslInd   string   `xml:"RvslInd"`
	Sts       string   `xml:"Sts"`
	BookgDt   DtDt     `xml:"BookgDt"`
	ValDt     DtDt     `xml:"ValDt"`
	BkTxCd    BkTxCd   `xml:"BkTxCd"`
	NtryDtls  NtryDtls `xml:"NtryDtls"`
}

// BkTxCd represents a proprietary bank transaction code.
type BkTxCd struct {
	Prtry Prtry `xml:"Prtry"`
}

// Prtry represents the proprietary code with its issuer.
type Prtry struct {
	Cd   string `xml:"Cd"`
	Issr string `xml:"Issr"`
}

// NtryDtls represents the entry details.
type NtryDtls struct {
	TxDtls TxDtls `xml:"TxDtls"`
}

// TxDtls represents the transaction details of an entry.
type TxDtls struct {
	Refs       Refs      `xml:"Refs"`
	AmtDtls    AmtDtls   `xml:"AmtDtls"`
	BkTxCd     BkTxCd    `xml:"BkTxCd"`
	RltdPties  RltdPties `xml:"RltdPties"`
	RltdAgts   RltdAgts  `xml:"RltdAgts"`
	RmtInf     RmtInf    `xml:"RmtInf"`
	AddtlTxInf string    `xml:"AddtlTxInf"`
}

// Refs represents the transaction references.
type Refs struct {
	AcctSvcrRef string `xml:"AcctSvcrRef"`
	TxId        string `xml:"TxId"`
}

// AmtDtls represents the amount details. CntrValAmt is present only on
// foreign-exchange transactions.
type AmtDtls struct {
	InstdAmt   InstdAmt    `xml:"InstdAmt"`
	CntrValAmt *CntrValAmt `xml:"CntrValAmt,omitempty"`
}

// InstdAmt represents the instructed amount.
type InstdAmt struct {
	Amt Amt `xml:"Amt"`
}

// CntrValAmt represents the counter-value amount with its exchange.
type CntrValAmt struct {
	Amt     Amt     `xml:"Amt"`
	CcyXchg CcyXchg `xml:"CcyXchg"`
}

// CcyXchg represents the currency exchange triple. XchgRate is the raw
// rate string from the source row, emitted verbatim.
type CcyXchg struct {
	SrcCcy   string `xml:"SrcCcy"`
	TrgtCcy  string `xml:"TrgtCcy"`
	XchgRate string `xml:"XchgRate"`
}

// RltdPties represents the related parties of a transaction. Creditor
// side elements are only present on credit entries.
type RltdPties struct {
	Dbtr     Party      `xml:"Dbtr"`
	DbtrAcct *PartyAcct `xml:"DbtrAcct,omitempty"`
	Cdtr     *Party     `xml:"Cdtr,omitempty"`
	CdtrAcct *PartyAcct `xml:"CdtrAcct,omitempty"`
}

// Party represents a debtor or creditor.
type Party struct {
	Nm      string   `xml:"Nm"`
	PstlAdr *PstlAdr `xml:"PstlAdr,omitempty"`
}

// PartyAcct represents a party's account.
type PartyAcct struct {
	Id AcctId `xml:"Id"`
	Nm string `xml:"Nm"`
}

// RltdAgts represents the related agents. The creditor agent is only
// present on credit entries.
type RltdAgts struct {
	DbtrAgt Agent  `xml:"DbtrAgt"`
	CdtrAgt *Agent `xml:"CdtrAgt,omitempty"`
}

// RmtInf represents the unstructured remittance information.
type RmtInf struct {
	Ustrd string `xml:"Ustrd"`
}

// Agent represents a financial institution agent.
type Agent struct {
	FinInstnId AgentFinInstnId `xml:"FinInstnId"`
}

// AgentFinInstnId identifies an agent's financial institution. Nm is
// omitted when only a BIC is known.
type AgentFinInstnId struct {
	BIC string `xml:"BIC"`
	Nm  string `xml:"Nm,omitempty"`
}
