// Package root contains the root command for the application
package root

import (
	"nethemba/revolut-camt/internal/camtbuilder"
	"nethemba/revolut-camt/internal/camtinspect"
	"nethemba/revolut-camt/internal/common"
	"nethemba/revolut-camt/internal/config"
	"nethemba/revolut-camt/internal/fileutils"
	"nethemba/revolut-camt/internal/revolutparser"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by the subcommands
type CommonFlags struct {
	IBAN   string
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the application configuration, loaded before any command runs
	Cfg *config.Config

	// SharedFlags holds the common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "revolut-camt",
		Short: "Convert Revolut Business CSV statements to CSOB camt.053.001.02 XML.",
		Long: `revolut-camt converts a Revolut Business account statement CSV into an
ISO 20022 camt.053.001.02 XML bank statement as required by CSOB.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}

			// Push the configured logger into every package that logs.
			revolutparser.SetLogger(Log)
			camtbuilder.SetLogger(Log)
			camtinspect.SetLogger(Log)
			fileutils.SetLogger(Log)

			if Cfg.CSV.Delimiter != "" {
				common.SetDelimiter([]rune(Cfg.CSV.Delimiter)[0])
			}
		},
	}
)

// Profile builds the statement profile from the loaded configuration.
func Profile() camtbuilder.Profile {
	return camtbuilder.Profile{
		OwnerName:        Cfg.Account.OwnerName,
		OwnerAddrLine1:   Cfg.Account.AddressLine1,
		OwnerAddrLine2:   Cfg.Account.AddressLine2,
		OwnerCountryLine: Cfg.Account.OwnerCountryLine,
		ServicerBIC:      Cfg.Servicer.BIC,
		ServicerName:     Cfg.Servicer.Name,
		ServicerCountry:  Cfg.Servicer.Country,
		Currency:         Cfg.Account.Currency,
		Issuer:           Cfg.Statement.Issuer,
		AdditionalInfo:   Cfg.Statement.AdditionalInfo,
	}
}

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (auto-generated if omitted)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.IBAN, "iban", "b", "", "Revolut Business IBAN")
}
