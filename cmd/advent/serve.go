package main

import (
	"errors"
	"net/http"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.xavd.id/advent/log"
	"go.xavd.id/advent/server"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the feeds and the writeup listings",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, fs, err := loadStore()
		if err != nil {
			return err
		}

		defer func() {
			_ = log.L().Sync()
		}()

		quit := make(chan os.Signal, 1)
		server := server.NewServer(c, fs)

		log := log.S()

		go func() {
			log.Info("starting server")
			err := server.Start()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Errorf("failed to start server: %s", err)
			}
			quit <- os.Interrupt
		}()

		signal.Notify(quit, os.Interrupt)
		<-quit

		log.Info("stopping server")
		return server.Stop()
	},
}
