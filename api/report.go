package api

import (
	"fmt"
	"io"
	"strings"

	"github.com/ka2n/ppa/api/field"
)

// Separator is printed below the header and after every record
var Separator = strings.Repeat("-", 79)

// Report renders the selected fields of every record
func Report(result Result, selection field.Selection) string {
	var b strings.Builder

	name := missingValue
	if len(result.Records) > 0 {
		name = result.Records[0].EntityName()
	}
	fmt.Fprintf(&b, "* PANEL APP RESULTS for gene %s has %d entries:\n", name, len(result.Records))
	fmt.Fprintf(&b, "* %s\n", selection.Confirmation())
	b.WriteString(Separator + "\n")

	for _, record := range result.Records {
		for _, f := range selection.Fields {
			fmt.Fprintf(&b, "%s: %s\n\n", f.Label(), record.Value(f))
		}
		b.WriteString(Separator + "\n")
	}

	return b.String()
}

// WriteReport writes the report for result to w
func WriteReport(w io.Writer, result Result, selection field.Selection) error {
	_, err := io.WriteString(w, Report(result, selection))
	return err
}
