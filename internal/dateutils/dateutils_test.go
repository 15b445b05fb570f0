package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISODate(t *testing.T) {
	d, err := ParseISODate("2026-01-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseISODate("  2026-01-10  ")
	require.NoError(t, err)
	assert.Equal(t, 10, d.Day(), "surrounding whitespace is tolerated")
}

func TestParseISODateInvalid(t *testing.T) {
	for _, input := range []string{"", "10.01.2026", "2026/01/10", "2026-1-10", "not a date"} {
		_, err := ParseISODate(input)
		assert.Error(t, err, "input %q must not parse", input)
	}
}

func TestToISODate(t *testing.T) {
	d := time.Date(2026, 1, 10, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "2026-01-10", ToISODate(d))
}

func TestShortLayouts(t *testing.T) {
	d := time.Date(2026, 2, 1, 12, 34, 56, 0, time.UTC)
	assert.Equal(t, "260201", d.Format(DateLayoutShort))
	assert.Equal(t, "123456", d.Format(TimeLayoutShort))
	assert.Equal(t, "20260201", d.Format(DateLayoutCompact))
}
