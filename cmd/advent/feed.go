package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.xavd.id/advent/core"
)

var (
	feedFormat string
	feedOutput string
)

func init() {
	feedCmd.Flags().StringVarP(&feedFormat, "format", "f", string(core.FeedRSS), "feed format: rss, atom or json")
	feedCmd.Flags().StringVarP(&feedOutput, "output", "o", "", "write the feed to this file instead of stdout")
	rootCmd.AddCommand(feedCmd)
}

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Render the writeups feed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, fs, err := loadStore()
		if err != nil {
			return err
		}

		ww, err := core.GetPublishedWriteups(cmd.Context(), fs, c.Production())
		if err != nil {
			return err
		}

		feed, err := core.RenderFeed(&core.Feed{
			Title:       c.Site.Title,
			Description: c.Site.Description,
			Site:        c.AbsoluteURL("/"),
			Items:       core.BuildFeed(ww),
		}, core.FeedFormat(feedFormat))
		if err != nil {
			return err
		}

		if feedOutput == "" {
			fmt.Fprintln(cmd.OutOrStdout(), feed)
			return nil
		}

		return os.WriteFile(feedOutput, []byte(feed), 0644)
	},
}
