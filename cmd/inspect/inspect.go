// Package inspect handles the camt.053 read-back command
package inspect

import (
	"fmt"

	"nethemba/revolut-camt/cmd/root"
	"nethemba/revolut-camt/internal/camtinspect"

	"github.com/spf13/cobra"
)

// Cmd represents the inspect command
var Cmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print a summary of a camt.053 XML statement",
	Long: `Read a camt.053 XML file back and print its message id, account,
entry counts and balances. This is a sanity check for generated output,
not a schema validation.`,
	Run: inspectFunc,
}

func inspectFunc(cmd *cobra.Command, args []string) {
	input := root.SharedFlags.Input
	if input == "" {
		root.Log.Fatal("The --input flag is required")
	}

	summary, err := camtinspect.Summarize(input)
	if err != nil {
		root.Log.Fatalf("Error inspecting file: %v", err)
	}

	fmt.Printf("Message:   %s\n", summary.MsgID)
	fmt.Printf("Statement: %s\n", summary.StatementID)
	fmt.Printf("IBAN:      %s\n", summary.IBAN)
	fmt.Printf("Entries:   %d (%d CRDT, %d DBIT)\n",
		summary.EntryCount, summary.CreditCount, summary.DebitCount)
	for _, bal := range summary.Balances {
		fmt.Printf("Balance:   %s %s %s (%s)\n",
			bal.Code, bal.Amount, bal.Currency, bal.Direction)
	}
}
