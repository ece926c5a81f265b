/*
 * Copyright (c) 2026 RustyDB Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

/*
Package main is the entry point for the RustyDB database server.

Startup Flow:
=============

 1. Load configuration from defaults, file and environment
 2. Apply command-line flag overrides
 3. Configure the global logger
 4. Print the startup banner
 5. Build the storage engine and repository
 6. Start the HTTP server
 7. On SIGINT/SIGTERM, shut down gracefully

Usage Examples:
===============

  Start with defaults (127.0.0.1:3000):
    rustydb serve

  Start on all interfaces with JSON logs:
    rustydb serve --host 0.0.0.0 --log-json

  Start from a configuration file:
    rustydb serve --config /etc/rustydb/rustydb.yaml
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kazuma0606/rustydb/internal/banner"
	"github.com/kazuma0606/rustydb/internal/config"
	"github.com/kazuma0606/rustydb/internal/logging"
	"github.com/kazuma0606/rustydb/internal/repository"
	"github.com/kazuma0606/rustydb/internal/server"
	"github.com/kazuma0606/rustydb/internal/storage"
)

var (
	configFile string
	host       string
	port       int
	logLevel   string
	logJSON    bool
	noBanner   bool
)

var rootCmd = &cobra.Command{
	Use:   "rustydb",
	Short: "Minimal in-memory relational database with a SQL-over-HTTP API",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the RustyDB server",
	RunE:  runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the RustyDB version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("rustydb v" + banner.Version)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to configuration file (YAML)")
	serveCmd.Flags().StringVar(&host, "host", "", "Listen address (overrides config)")
	serveCmd.Flags().IntVarP(&port, "port", "p", 0, "Listen port (overrides config)")
	serveCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	serveCmd.Flags().BoolVar(&logJSON, "log-json", false, "Emit logs as JSON (overrides config)")
	serveCmd.Flags().BoolVar(&noBanner, "no-banner", false, "Suppress the startup banner")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	// Flags override config only when explicitly set.
	if cmd.Flags().Changed("host") {
		cfg.Host = host
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = port
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if cmd.Flags().Changed("log-json") {
		cfg.LogJSON = logJSON
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.SetGlobalLevel(logging.ParseLevel(cfg.LogLevel))
	logging.SetJSONMode(cfg.LogJSON)

	if !noBanner {
		banner.PrintServerWithConfig(cfg)
	}

	log := logging.NewLogger("main")
	repo := repository.NewMemory(storage.NewMemoryEngine())
	srv := server.New(cfg.Addr(), repo)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Info("signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
