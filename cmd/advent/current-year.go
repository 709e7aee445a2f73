package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.xavd.id/advent/core"
)

func init() {
	rootCmd.AddCommand(currentYearCmd)
}

var currentYearCmd = &cobra.Command{
	Use:   "current-year",
	Short: "Print the year of the most recent Advent of Code event",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), core.CurrentPuzzleYear(time.Now()))
	},
}
