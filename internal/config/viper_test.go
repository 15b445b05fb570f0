package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)

	assert.Equal(t, "Nethemba s.r.o.", cfg.Account.OwnerName)
	assert.Equal(t, "Grosslingova 2503/62", cfg.Account.AddressLine1)
	assert.Equal(t, "Bratislava - St. Mesto 81109 SK", cfg.Account.AddressLine2)
	assert.Equal(t, "LITHUANIA", cfg.Account.OwnerCountryLine)
	assert.Equal(t, "EUR", cfg.Account.Currency)

	assert.Equal(t, "REVOLT21", cfg.Servicer.BIC)
	assert.Equal(t, "Revolut Bank UAB", cfg.Servicer.Name)
	assert.Equal(t, "LT", cfg.Servicer.Country)

	assert.Equal(t, "SBA", cfg.Statement.Issuer)
	assert.Equal(t, "mesacny", cfg.Statement.AdditionalInfo)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("RVLT_ACCOUNT_OWNER_NAME", "Other Company s.r.o.")
	t.Setenv("RVLT_SERVICER_BIC", "BANKLT22")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "Other Company s.r.o.", cfg.Account.OwnerName)
	assert.Equal(t, "BANKLT22", cfg.Servicer.BIC)
	assert.Equal(t, "EUR", cfg.Account.Currency, "untouched keys keep their defaults")
}
