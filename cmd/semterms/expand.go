package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/c360studio/semterms/enums"
)

func expandCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "expand FILE [ENUM...]",
		Short: "Expand dynamic enum definitions to their value sets",
		Long: `Expand enum definitions from a YAML document with a top-level
"enums" mapping. Without explicit enum names every definition in the file
is expanded. Each expansion prints the enum name followed by its sorted
member values.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defs, err := enums.LoadDefinitions(args[0])
			if err != nil {
				return err
			}

			names := args[1:]
			if len(names) == 0 {
				for name := range defs {
					names = append(names, name)
				}
				sort.Strings(names)
			}

			base, err := newBase(flags)
			if err != nil {
				return err
			}
			lookup := enums.LookupFrom(defs)

			ctx := cmd.Context()
			for _, name := range names {
				def, ok := defs[name]
				if !ok {
					return fmt.Errorf("enum %q not found in %s", name, args[0])
				}
				set := base.ExpandEnum(ctx, def, lookup)
				fmt.Printf("%s (%d values)\n", name, set.Len())
				for _, v := range set.Values() {
					fmt.Printf("  %s\n", v)
				}
			}
			return nil
		},
	}
}
