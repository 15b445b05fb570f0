// Package camtbuilder maps transaction records and statement facts onto
// a camt.053.001.02 document tree and renders it to XML.
package camtbuilder

// Profile holds the fixed identities and statement constants injected
// into the builder at startup. It is read-only once constructed.
type Profile struct {
	OwnerName        string
	OwnerAddrLine1   string
	OwnerAddrLine2   string
	OwnerCountryLine string

	ServicerBIC     string
	ServicerName    string
	ServicerCountry string

	Currency       string
	Issuer         string
	AdditionalInfo string
}

// DefaultProfile returns the statement profile expected by the receiving
// bank for the Nethemba Revolut Business account.
func DefaultProfile() Profile {
	return Profile{
		OwnerName:        "Nethemba s.r.o.",
		OwnerAddrLine1:   "Grosslingova 2503/62",
		OwnerAddrLine2:   "Bratislava - St. Mesto 81109 SK",
		OwnerCountryLine: "LITHUANIA",
		ServicerBIC:      "REVOLT21",
		ServicerName:     "Revolut Bank UAB",
		ServicerCountry:  "LT",
		Currency:         "EUR",
		Issuer:           "SBA",
		AdditionalInfo:   "mesacny",
	}
}
