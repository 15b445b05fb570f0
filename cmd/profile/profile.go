// Package profile handles the configuration dump command
package profile

import (
	"fmt"

	"nethemba/revolut-camt/cmd/root"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Cmd represents the profile command
var Cmd = &cobra.Command{
	Use:   "profile",
	Short: "Print the effective statement profile as YAML",
	Long: `Print the effective configuration (account owner identity, servicer
identity, statement constants) after defaults, config file and
environment variables have been merged.`,
	Run: profileFunc,
}

func profileFunc(cmd *cobra.Command, args []string) {
	out, err := yaml.Marshal(root.Cfg)
	if err != nil {
		root.Log.Fatalf("Error rendering configuration: %v", err)
	}
	fmt.Print(string(out))
}
