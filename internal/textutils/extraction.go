// Package textutils provides text extraction utilities.
package textutils

import (
	"regexp"
	"strings"
)

var senderPattern = regexp.MustCompile(`(?i)^Money added from (.+)$`)

// ExtractSenderName extracts the sender name from a TOPUP description
// like "Money added from SOME NAME". When the description does not match
// the pattern, it is returned verbatim.
func ExtractSenderName(description string) string {
	matches := senderPattern.FindStringSubmatch(description)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}
	return description
}
