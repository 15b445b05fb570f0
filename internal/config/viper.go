package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration. The account
// and servicer sections default to the identities expected by the
// receiving bank; they are read once at startup and treated as
// immutable afterwards.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Account struct {
		OwnerName        string `mapstructure:"owner_name" yaml:"owner_name"`
		AddressLine1     string `mapstructure:"address_line1" yaml:"address_line1"`
		AddressLine2     string `mapstructure:"address_line2" yaml:"address_line2"`
		OwnerCountryLine string `mapstructure:"owner_country_line" yaml:"owner_country_line"`
		Currency         string `mapstructure:"currency" yaml:"currency"`
	} `mapstructure:"account" yaml:"account"`

	Servicer struct {
		BIC     string `mapstructure:"bic" yaml:"bic"`
		Name    string `mapstructure:"name" yaml:"name"`
		Country string `mapstructure:"country" yaml:"country"`
	} `mapstructure:"servicer" yaml:"servicer"`

	Statement struct {
		Issuer         string `mapstructure:"issuer" yaml:"issuer"`
		AdditionalInfo string `mapstructure:"additional_info" yaml:"additional_info"`
	} `mapstructure:"statement" yaml:"statement"`
}

// InitializeConfig initializes Viper configuration with hierarchical
// loading: defaults, then an optional config file, then environment
// variables with the RVLT prefix.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.revolut-camt")
	v.AddConfigPath(".")

	v.SetEnvPrefix("RVLT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file not found is fine; an unreadable one is not.
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values. The identity defaults
// reproduce the statement profile the receiving bank expects.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("account.owner_name", "Nethemba s.r.o.")
	v.SetDefault("account.address_line1", "Grosslingova 2503/62")
	v.SetDefault("account.address_line2", "Bratislava - St. Mesto 81109 SK")
	v.SetDefault("account.owner_country_line", "LITHUANIA")
	v.SetDefault("account.currency", "EUR")

	v.SetDefault("servicer.bic", "REVOLT21")
	v.SetDefault("servicer.name", "Revolut Bank UAB")
	v.SetDefault("servicer.country", "LT")

	v.SetDefault("statement.issuer", "SBA")
	v.SetDefault("statement.additional_info", "mesacny")
}
