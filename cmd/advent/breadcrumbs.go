package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.xavd.id/advent/core"
)

func init() {
	rootCmd.AddCommand(breadcrumbsCmd)
}

var breadcrumbsCmd = &cobra.Command{
	Use:   "breadcrumbs [path]",
	Short: "Show the breadcrumbs of a URL path",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url := ""
		if len(args) == 1 {
			url = args[0]
		}

		b := core.ParseBreadcrumbs(url)
		fmt.Fprintln(cmd.OutOrStdout(), "page:", b.Page)
		if b.Path != nil {
			fmt.Fprintln(cmd.OutOrStdout(), "path:", strings.Join(b.Path, " > "))
		}

		return nil
	},
}
