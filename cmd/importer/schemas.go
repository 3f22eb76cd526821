package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"explorerLedger/internal/explorer"
)

func runSchemas(cmd *cobra.Command, _ []string) error {
	showColumns, _ := cmd.Flags().GetBool("columns")
	out := cmd.OutOrStdout()

	for i, s := range explorer.DefaultRegistry().Schemas() {
		fmt.Fprintf(out, "%d\t%s\t%s\t%s\t%d columns\n", i+1, s.Chain.Worksheet, s.Name, s.Handler, len(s.Columns))
		if !showColumns {
			continue
		}
		cols := make([]string, len(s.Columns))
		for j, c := range s.Columns {
			cols[j] = c.String()
		}
		fmt.Fprintf(out, "\t%s\n", strings.Join(cols, ", "))
	}
	return nil
}
