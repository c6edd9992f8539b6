// Package main implements the Kaggle notebooks MCP server executable.
// It provides a Model Context Protocol server that exposes notebook
// operations on Kaggle (list, fetch, update, run) as MCP tools,
// delegating the actual platform communication to the kaggle CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"kaggle-mcp/internal/cmd"
	"kaggle-mcp/internal/config"
	"kaggle-mcp/internal/kaggle"
	"kaggle-mcp/internal/logging"
	"kaggle-mcp/internal/server"
	"kaggle-mcp/pkg/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kaggle-mcp",
	Short: "Kaggle notebooks MCP server",
	Long: `Kaggle notebooks MCP server provides a Model Context Protocol server that
exposes notebook operations on Kaggle (list, fetch, update, run) as MCP
tools backed by the kaggle command-line tool.`,
	RunE: runServer,
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information and exit")

	rootCmd.AddCommand(cmd.NewVersionCmd())
	rootCmd.AddCommand(statusCmd)
}

// runServer starts the MCP server
func runServer(c *cobra.Command, args []string) error {
	if versionFlag, _ := c.Flags().GetBool("version"); versionFlag {
		fmt.Println(version.GetVersion().String())
		return nil
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logger := logging.NewLogger(logLevel)

	// Credentials are resolved once here; their absence is fatal before
	// any request is served.
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Configuration error", slog.Any("error", err))
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client := kaggle.New(cfg, logger)
	if err := client.Configure(ctx); err != nil {
		logger.Error("Failed to configure kaggle CLI", slog.Any("error", err))
		return fmt.Errorf("failed to configure kaggle CLI: %w", err)
	}

	srv, err := server.New(&server.Options{
		Config: cfg,
		Logger: logger,
		Client: client,
	})
	if err != nil {
		logger.Error("Failed to create server", slog.Any("error", err))
		return fmt.Errorf("failed to create server: %w", err)
	}

	if err := srv.Start(ctx); err != nil {
		logger.Error("Failed to start server", slog.Any("error", err))
		return fmt.Errorf("failed to start server: %w", err)
	}

	transport := mcp.NewStdioTransport()

	logger.Info("Kaggle MCP Server starting",
		slog.String("version", version.GetVersion().Version),
		slog.Int("tools_available", srv.GetRegistry().Count()))

	serverDone := make(chan error, 1)
	go func() {
		serverDone <- srv.Serve(ctx, transport)
	}()

	select {
	case err := <-serverDone:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Server error", slog.Any("error", err))
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("Error stopping server", slog.Any("error", err))
	}

	logger.Info("Kaggle MCP Server stopped")
	return nil
}
