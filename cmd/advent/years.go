package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.xavd.id/advent/core"
)

func init() {
	rootCmd.AddCommand(yearsCmd)
}

var yearsCmd = &cobra.Command{
	Use:   "years",
	Short: "List the published writeups per year",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, fs, err := loadStore()
		if err != nil {
			return err
		}

		groups, err := core.GetWriteupsByYear(cmd.Context(), fs, c.Production())
		if err != nil {
			return err
		}

		total := 0
		for _, year := range groups.Years() {
			fmt.Fprintf(cmd.OutOrStdout(), "%d: %d\n", year, len(groups[year]))
			total += len(groups[year])
		}

		fmt.Fprintln(cmd.OutOrStdout(), "\nTotal:", total)
		return nil
	},
}
