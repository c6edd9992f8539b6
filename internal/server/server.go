// Package server implements the MCP server for the Kaggle notebook tools.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"kaggle-mcp/internal/config"
	"kaggle-mcp/internal/kaggle"
	"kaggle-mcp/internal/logging"
	"kaggle-mcp/internal/tools"
	"kaggle-mcp/internal/tools/notebooks"
	"kaggle-mcp/pkg/version"
)

// loggerAdapter wraps logging.Logger to implement tools.Logger interface.
// This avoids circular dependency between logging and tools packages.
type loggerAdapter struct {
	*logging.Logger
}

// WithTool implements tools.Logger interface.
func (a *loggerAdapter) WithTool(toolName string) tools.Logger {
	return &loggerAdapter{Logger: a.Logger.WithTool(toolName)}
}

// WithNotebook implements tools.Logger interface.
func (a *loggerAdapter) WithNotebook(ref string) tools.Logger {
	return &loggerAdapter{Logger: a.Logger.WithNotebook(ref)}
}

// Server represents the Kaggle notebooks MCP server.
type Server struct {
	mcpServer *mcp.Server
	registry  *tools.Registry
	logger    *logging.Logger
	client    *kaggle.Client
}

// Options configures the server instance.
type Options struct {
	Config *config.Config
	Logger *logging.Logger

	// Client overrides the kaggle client built from Config. Used by tests.
	Client *kaggle.Client
}

// New creates a new Kaggle notebooks MCP server with the given options.
func New(opts *Options) (*Server, error) {
	if opts.Config == nil && opts.Client == nil {
		return nil, fmt.Errorf("config is required")
	}

	if opts.Logger == nil {
		logLevel := os.Getenv("LOG_LEVEL")
		if logLevel == "" {
			logLevel = "info"
		}
		opts.Logger = logging.NewLogger(logLevel)
	}

	client := opts.Client
	if client == nil {
		client = kaggle.New(opts.Config, opts.Logger)
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "kaggle-mcp",
		Version: version.GetVersion().Version,
	}, nil)

	server := &Server{
		mcpServer: mcpServer,
		registry:  tools.NewRegistry(),
		logger:    opts.Logger,
		client:    client,
	}

	if err := server.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	return server, nil
}

// Start validates the registry before the server begins serving.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("Starting Kaggle notebooks MCP server",
		slog.String("version", version.GetVersion().Version),
		slog.Int("tools", s.registry.Count()),
	)

	if err := s.registry.Validate(); err != nil {
		return fmt.Errorf("tool registry validation failed: %w", err)
	}

	return nil
}

// Stop stops the MCP server gracefully.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping Kaggle notebooks MCP server")

	select {
	case <-ctx.Done():
		s.logger.Warn("Server stop timed out")
		return ctx.Err()
	default:
		s.logger.Info("Server stopped successfully")
		return nil
	}
}

// GetRegistry returns the tool registry.
func (s *Server) GetRegistry() *tools.Registry {
	return s.registry
}

// registerTools registers the notebook tools with the MCP server.
func (s *Server) registerTools() error {
	s.logger.Debug("Registering tools with MCP server")

	toolCtx := &tools.Context{
		Logger: &loggerAdapter{Logger: s.logger},
		Kaggle: s.client,
	}

	notebookTools := notebooks.CreateNotebookTools(toolCtx)

	var toolNames []string
	for _, tool := range notebookTools {
		if err := s.registry.Register(tool); err != nil {
			return err
		}

		tool.RegisterFunc(s.mcpServer)
		toolNames = append(toolNames, tool.Tool.Name)

		s.logger.Debug("Registered tool", "name", tool.Tool.Name)
	}

	s.logger.Info("Successfully registered tools",
		slog.Int("count", len(notebookTools)),
		slog.Any("tools", toolNames),
	)

	return nil
}

// Serve runs the MCP server with the specified transport.
// It connects the MCP server to the transport and waits for either
// the session to complete or the context to be cancelled.
func (s *Server) Serve(ctx context.Context, transport mcp.Transport) error {
	s.logger.Info("Starting MCP server transport",
		slog.String("transport", fmt.Sprintf("%T", transport)),
	)

	session, err := s.mcpServer.Connect(ctx, transport)
	if err != nil {
		return fmt.Errorf("failed to connect MCP server: %w", err)
	}

	sessionDone := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("MCP session goroutine panicked",
					slog.Any("panic", r))
				sessionDone <- fmt.Errorf("session panicked: %v", r)
			}
		}()
		sessionDone <- session.Wait()
	}()

	select {
	case err := <-sessionDone:
		s.logger.Info("MCP session finished")
		return err
	case <-ctx.Done():
		s.logger.Info("MCP server shutting down due to context cancellation")
		return ctx.Err()
	}
}
