package xmlutils

import (
	"encoding/xml"
	"fmt"
)

// MarshalIndented serializes a document with the standard XML
// declaration and two-space indentation, ready to be written to disk.
func MarshalIndented(doc interface{}) ([]byte, error) {
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal XML document: %w", err)
	}

	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}
