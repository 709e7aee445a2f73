package main

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.xavd.id/advent/core"
)

func init() {
	rootCmd.AddCommand(conceptsCmd)
}

var conceptsCmd = &cobra.Command{
	Use:   "concepts",
	Short: "List the concepts and how many writeups use them",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, fs, err := loadStore()
		if err != nil {
			return err
		}

		groups, err := core.GetWriteupsByConcept(cmd.Context(), fs, c.Production())
		if err != nil {
			return err
		}

		keys := lo.Keys(groups)
		sort.Strings(keys)

		for _, k := range keys {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", k, len(groups[k]))
		}

		return nil
	},
}
