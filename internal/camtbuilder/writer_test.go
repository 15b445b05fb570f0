package camtbuilder

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nethemba/revolut-camt/internal/statement"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDocument(t *testing.T) {
	records := testRecords()
	stmt, err := statement.Aggregate(records)
	require.NoError(t, err)
	doc := testBuilder().Build(records, stmt, testIBAN)

	outputPath := filepath.Join(t.TempDir(), "statement.xml")
	require.NoError(t, WriteDocument(doc, outputPath))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err, "Failed to read output file")
	content := string(data)

	assert.True(t, strings.HasPrefix(content, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>"),
		"output must start with the XML declaration")
	assert.True(t, strings.HasSuffix(content, "\n"), "output must end with a newline")

	assert.Contains(t, content, `xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.02"`)
	assert.Contains(t, content, `xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"`)
	assert.Contains(t, content, "<BkToCstmrStmt>")
	assert.Contains(t, content, "<MsgId>REVOLT21-6541-260201-123456</MsgId>")
	assert.Contains(t, content, "<IBAN>"+testIBAN+"</IBAN>")
	assert.Contains(t, content, `<Amt Ccy="EUR">100.00</Amt>`)

	// Two-space indentation, one level per nesting depth.
	assert.Contains(t, content, "\n  <BkToCstmrStmt>")
	assert.Contains(t, content, "\n    <GrpHdr>")
}

func TestWriteDocumentCreatesParentDirectory(t *testing.T) {
	records := testRecords()
	stmt, err := statement.Aggregate(records)
	require.NoError(t, err)
	doc := testBuilder().Build(records, stmt, testIBAN)

	outputPath := filepath.Join(t.TempDir(), "out", "statement.xml")
	require.NoError(t, WriteDocument(doc, outputPath))
	_, err = os.Stat(outputPath)
	assert.NoError(t, err)
}
