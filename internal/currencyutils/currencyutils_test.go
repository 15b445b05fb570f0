package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"positive", "100.00", "100"},
		{"negative", "-45.95", "-45.95"},
		{"whitespace", " 1.50 ", "1.5"},
		{"empty", "", "0"},
		{"blank", "   ", "0"},
		{"high precision", "0.001", "0.001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseAmount(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d.String())
		})
	}
}

func TestParseAmountInvalid(t *testing.T) {
	_, err := ParseAmount("abc")
	assert.Error(t, err)

	_, err = ParseAmount("1,50")
	assert.Error(t, err, "no separator scrubbing; comma decimals are rejected")
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"100", "100.00"},
		{"-45.95", "45.95"},
		{"0", "0.00"},
		{"1.005", "1.01"},
		{"-1.005", "1.01"},
		{"49.1", "49.10"},
	}

	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, FormatAmount(d), "FormatAmount(%s)", tt.input)
	}
}
