package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func labelCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "label CURIE...",
		Short: "Look up ontology labels for terms",
		Long: `Look up the display label for each CURIE through the multi-level
cache (memory, per-prefix CSV files, ontology backend). Prefixes without a
usable adapter are reported at the end.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := newBase(flags)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			for _, curie := range args {
				label, found, err := base.Label(ctx, curie)
				if err != nil {
					return fmt.Errorf("lookup %s: %w", curie, err)
				}
				if !found {
					fmt.Printf("%s\t<no label>\n", curie)
					continue
				}
				fmt.Printf("%s\t%s\n", curie, label)
			}

			if unknown := base.UnknownPrefixes(); len(unknown) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "unknown prefixes: %s\n", strings.Join(unknown, ", "))
			}
			return nil
		},
	}
}
