package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.xavd.id/advent/log"
)

func init() {
	rootCmd.AddCommand(addFrontMatterCmd)
}

var addFrontMatterCmd = &cobra.Command{
	Use:   "add-frontmatter",
	Short: "Add front matter to writeup READMEs that lack it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, fs, err := loadStore()
		if err != nil {
			return err
		}

		updated, skipped, err := fs.MigrateFrontMatter()
		if err != nil {
			return err
		}

		for _, filename := range skipped {
			log.S().Warnw("malformed README, skipping", "file", filename)
		}

		for _, filename := range updated {
			log.S().Debugw("added front matter", "file", filename)
			fmt.Fprintln(cmd.OutOrStdout(), filename)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "updated %d files\n", len(updated))
		return nil
	},
}
