package main

import (
	"github.com/spf13/cobra"
	"go.xavd.id/advent/core"
	"go.xavd.id/advent/log"
)

var configFile string

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to the config file")
}

var rootCmd = &cobra.Command{
	Use:               "advent",
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	Short:             "Advent of Code writeups site tools",
	SilenceUsage:      true,
}

func loadStore() (*core.Config, *core.FS, error) {
	c, err := core.ParseConfig(configFile)
	if err != nil {
		return nil, nil, err
	}

	log.SetDevelopment(c.Development)
	return c, core.NewFS(c.SourceDirectory, c.Production()), nil
}
