// Package convert handles the CSV to camt.053 conversion command
package convert

import (
	"fmt"

	"nethemba/revolut-camt/cmd/root"
	"nethemba/revolut-camt/internal/camtbuilder"
	"nethemba/revolut-camt/internal/dateutils"
	"nethemba/revolut-camt/internal/revolutparser"
	"nethemba/revolut-camt/internal/statement"

	"github.com/spf13/cobra"
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a Revolut Business CSV statement to camt.053 XML",
	Long: `Convert a Revolut Business account statement CSV into a camt.053.001.02
XML document. The output path defaults to <iban>_<firstdate>_<lastdate>.xml.`,
	Run: convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) {
	iban := root.SharedFlags.IBAN
	input := root.SharedFlags.Input
	if iban == "" {
		root.Log.Fatal("The --iban flag is required")
	}
	if input == "" {
		root.Log.Fatal("The --input flag is required")
	}

	records, err := revolutparser.ParseFile(input)
	if err != nil {
		root.Log.Fatalf("Error parsing Revolut CSV file: %v", err)
	}

	stmt, err := statement.Aggregate(records)
	if err != nil {
		root.Log.Fatalf("Error: %v", err)
	}

	builder := camtbuilder.New(root.Profile())
	doc := builder.Build(records, stmt, iban)

	outputPath := root.SharedFlags.Output
	if outputPath == "" {
		outputPath = fmt.Sprintf("%s_%s_%s.xml", iban,
			stmt.FirstDate.Format(dateutils.DateLayoutCompact),
			stmt.LastDate.Format(dateutils.DateLayoutCompact))
	}

	if err := camtbuilder.WriteDocument(doc, outputPath); err != nil {
		root.Log.Fatalf("Error writing XML file: %v", err)
	}

	fmt.Printf("Converted %d transactions (%d CRDT, %d DBIT) -> %s\n",
		stmt.Totals.EntryCount(), stmt.Totals.CreditCount, stmt.Totals.DebitCount, outputPath)
}
