package textutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSenderName(t *testing.T) {
	tests := []struct {
		name        string
		description string
		expected    string
	}{
		{"plain", "Money added from ACME CORP", "ACME CORP"},
		{"case insensitive", "MONEY ADDED FROM Acme Corp", "Acme Corp"},
		{"trailing whitespace", "Money added from ACME CORP  ", "ACME CORP"},
		{"no match returns verbatim", "Card payment at Amazon", "Card payment at Amazon"},
		{"prefix mid-string does not match", "Note: Money added from X", "Note: Money added from X"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractSenderName(tt.description))
		})
	}
}
