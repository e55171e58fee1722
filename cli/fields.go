package cli

import (
	"fmt"
	"strings"

	"github.com/ka2n/ppa/api/field"
	"github.com/spf13/cobra"
)

func newFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List the gene record fields that can be reported",
		Long:  "Display every field accepted by --fields, which of them hold lists, and the defaults",
		Args:  cobra.NoArgs,
		Run:   runFields,
	}
}

func runFields(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Gene record fields:")
	for _, f := range field.Known {
		var notes []string
		if f.IsList() {
			notes = append(notes, "list")
		}
		if f.IsDefault() {
			notes = append(notes, "default")
		}

		if len(notes) == 0 {
			fmt.Fprintf(out, "  %s\n", f)
			continue
		}
		fmt.Fprintf(out, "  %-22s (%s)\n", f, strings.Join(notes, ", "))
	}
}
