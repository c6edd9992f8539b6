// Package tools provides the tool registry and common types for MCP tools.
package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ServerTool pairs a tool schema with the closure that registers its
// typed handler on an MCP server.
type ServerTool struct {
	Tool         *mcp.Tool
	RegisterFunc func(server *mcp.Server)
}

// Context contains common dependencies needed by tools.
type Context struct {
	Logger Logger
	Kaggle NotebookService
}

// Logger defines the logging interface for tools.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	WithTool(toolName string) Logger
	WithNotebook(ref string) Logger
}

// NotebookService is the collaborator contract implemented by the kaggle
// client. Handlers never spawn subprocesses themselves.
type NotebookService interface {
	ListKernels(ctx context.Context) (string, error)
	Pull(ctx context.Context, ref, dir string) error
	Push(ctx context.Context, path string) (string, error)
	Run(ctx context.Context, ref string) (string, error)
}
