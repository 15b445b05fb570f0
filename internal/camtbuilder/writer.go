package camtbuilder

import (
	"fmt"

	"nethemba/revolut-camt/internal/fileutils"
	"nethemba/revolut-camt/internal/models"
	"nethemba/revolut-camt/internal/xmlutils"
)

// WriteDocument renders the document with two-space indentation and
// writes it to the output path in one shot. The file is only touched
// after the whole document serialized successfully, so an error never
// leaves a half-written statement behind.
func WriteDocument(doc *models.Camt053Document, outputPath string) error {
	data, err := xmlutils.MarshalIndented(doc)
	if err != nil {
		return err
	}

	if err := fileutils.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("error writing XML output: %w", err)
	}

	log.WithField("file", outputPath).Info("Wrote camt.053 document")
	return nil
}
