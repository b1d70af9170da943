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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/aretw0/samovar"
	httpAdapter "github.com/aretw0/samovar/internal/adapters/http"
	"github.com/aretw0/samovar/internal/logging"
	redisStore "github.com/aretw0/samovar/pkg/adapters/redis"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts the ordering flow behind a JSON API: events in, screen descriptors out.`,
	Run: func(cmd *cobra.Command, args []string) {
		menu, _ := cmd.Flags().GetString("menu")
		port, _ := cmd.Flags().GetString("port")
		redisAddr, _ := cmd.Flags().GetString("redis")
		redisDB, _ := cmd.Flags().GetInt("redis-db")
		sessionTTL, _ := cmd.Flags().GetDuration("session-ttl")

		logger := logging.New(slog.LevelInfo)
		registry := prometheus.NewRegistry()

		opts := []samovar.Option{
			samovar.WithLogger(logger),
			samovar.WithMetricsRegistry(registry),
		}

		if redisAddr != "" {
			store := redisStore.New(redisAddr, os.Getenv("SAMOVAR_REDIS_PASSWORD"), redisDB,
				redisStore.WithTTL(sessionTTL))
			defer store.Close()
			opts = append(opts, samovar.WithStore(store))
			logger.Info("using redis session store", "addr", redisAddr, "db", redisDB)
		}

		flow, err := samovar.New(menu, opts...)
		if err != nil {
			fmt.Printf("Error initializing samovar: %v\n", err)
			os.Exit(1)
		}

		handler := httpAdapter.NewHandler(flow, registry, httpAdapter.WithLogger(logger))

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting samovar server", "addr", srv.Addr, "menu", menu)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("shutting down", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				_ = srv.Close()
				fmt.Printf("Could not stop server gracefully: %v\n", err)
				os.Exit(1)
			}
		}
	},
}

func init() {
	serveCmd.Flags().String("port", "8080", "Port to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for durable sessions (empty = in-memory)")
	serveCmd.Flags().Int("redis-db", 0, "Redis database number")
	serveCmd.Flags().Duration("session-ttl", 0, "Session expiry when using redis (0 = no expiry)")
	rootCmd.AddCommand(serveCmd)
}
