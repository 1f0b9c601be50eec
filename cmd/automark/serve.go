package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/automark"
	"github.com/aretw0/automark/internal/adapters/file"
	redisStore "github.com/aretw0/automark/internal/adapters/redis"
	"github.com/aretw0/automark/internal/logging"
	"github.com/aretw0/automark/pkg/ports"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the grading HTTP server",
	Long:  `Starts the automark grader in server mode, exposing the check and grade endpoints as a JSON API over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		challengeDir, _ := cmd.Flags().GetString("challenges")
		staticDir, _ := cmd.Flags().GetString("static")
		redisAddr, _ := cmd.Flags().GetString("redis")

		var store ports.ChallengeStore
		if redisAddr != "" {
			store = redisStore.New(redisAddr, "", 0)
		} else {
			store = file.New(challengeDir)
		}

		opts := []automark.Option{
			automark.WithStore(store),
			automark.WithLogger(logging.New(slog.LevelInfo)),
		}
		if staticDir != "" {
			opts = append(opts, automark.WithStaticDir(staticDir))
		}
		engine := automark.New(opts...)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: engine.Handler(),
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting automark server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("automark server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("static", "", "Directory of static files to serve at /")
	serveCmd.Flags().String("redis", "", "Redis address for challenge storage (defaults to the filesystem store)")
}
