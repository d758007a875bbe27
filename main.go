package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/flipbooklib/flipbook/catalog"
	"github.com/flipbooklib/flipbook/config"
	"github.com/flipbooklib/flipbook/log"
	"github.com/flipbooklib/flipbook/server"
	"github.com/flipbooklib/flipbook/storage"
	"github.com/flipbooklib/flipbook/worker"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	greetingBanner = `
███████ ██      ██ ██████  ██████   ██████   ██████  ██   ██
██      ██      ██ ██   ██ ██   ██ ██    ██ ██    ██ ██  ██
█████   ██      ██ ██████  ██████  ██    ██ ██    ██ █████
██      ██      ██ ██      ██   ██ ██    ██ ██    ██ ██  ██
██      ███████ ██ ██      ██████   ██████   ██████  ██   ██
`
)

var (
	configFile string

	rootCmd = &cobra.Command{
		Use:   "flipbook",
		Short: "Flipbook serves a bilingual digital library with a page-flip reader",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			client := catalog.NewClient(config.Opts.SupabaseURL, config.Opts.SupabaseKey)
			objects := storage.NewSupabaseStorage(config.Opts.SupabaseURL, config.Opts.SupabaseKey, config.Opts.Bucket)
			viewPool := worker.NewPool(client, config.Opts.WorkerPoolSize)

			s, err := server.StartServer(ctx, client, objects, viewPool)
			if err != nil {
				log.Error("Error starting server", zap.Error(err))
				return
			}

			fmt.Print(greetingBanner)
			log.Info("Server started",
				zap.String("addr", s.Addr),
				zap.String("public_url", config.Opts.PublicURL))

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			if err := s.Shutdown(shutdownCtx); err != nil {
				log.Error("Error shutting down server", zap.Error(err))
			}
			log.Info("Server stopped")
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file")

	cobra.OnInitialize(func() {
		var err error
		if configFile != "" {
			_, err = config.ParseFile(configFile)
		} else {
			_, err = config.GetConfig()
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "Configuration error:", err)
			os.Exit(1)
		}

		log.Logger = log.NewLogger()
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if log.Logger != nil {
		log.Logger.Sync()
	}
}
