package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wordforge/wordforge/internal/output"
)

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types [name]",
		Short: "List the available wordlist types",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				output.WriteTypesTable(cmd.OutOrStdout(), a.types.All(), a.noColor)
				return nil
			}

			t, err := a.types.Resolve(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s — %s\n\n", t.Name, t.Description)
			fmt.Fprintf(w, "Default file: %s\n", t.DefaultFilename)
			if t.SeedHints != "" {
				fmt.Fprintf(w, "\nSeed hints:\n%s\n", t.SeedHints)
			}
			if t.UsageNotes != "" {
				fmt.Fprintf(w, "\nUsage:\n%s\n", t.UsageNotes)
			}
			return nil
		},
	}
}
