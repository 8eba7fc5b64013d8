package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	httpAdapter "github.com/aretw0/abacus/internal/adapters/http"
	redisAdapter "github.com/aretw0/abacus/internal/adapters/redis"
	"github.com/aretw0/abacus/internal/generator"
	"github.com/aretw0/abacus/pkg/adapters/gosym"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the generator in server mode, exposing a JSON API over HTTP.
With --redis, generated problems are stored in Redis so the worksheet
survives restarts and can be shared between instances.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		redisAddr, _ := cmd.Flags().GetString("redis")

		gen, _, logger := newGenerator(cmd, 0)
		if redisAddr != "" {
			store := redisAdapter.New(redisAddr, "", 0)
			if _, err := store.Len(cmd.Context()); err != nil {
				fmt.Printf("Error connecting to redis: %v\n", err)
				os.Exit(1)
			}
			defer store.Close()
			gen = generator.New(gosym.New(), store, generator.WithLogger(logger))
		}

		handler := httpAdapter.NewHandler(gen, prometheus.DefaultRegisterer, logger)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Abacus Server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			// Error when starting HTTP server.
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Abacus Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for the problem store (e.g. localhost:6379)")
}
