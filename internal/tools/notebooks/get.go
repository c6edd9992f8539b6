package notebooks

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"kaggle-mcp/internal/errors"
	"kaggle-mcp/internal/prompts"
	"kaggle-mcp/internal/tools"
)

// notebookExtension is the file extension of a downloaded notebook.
const notebookExtension = ".ipynb"

// GetNotebookArgs represents the arguments for the get_notebook tool.
type GetNotebookArgs struct {
	NotebookRef string `json:"notebook_ref" jsonschema:"Notebook identifier in owner/slug form"`
}

// CreateGetNotebookTool creates the get_notebook tool.
func CreateGetNotebookTool(ctx *tools.Context) *tools.ServerTool {
	handler := func(ctxReq context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[GetNotebookArgs]) (*mcp.CallToolResultFor[any], error) {
		return getNotebook(ctxReq, ctx, params.Arguments)
	}

	tool := &mcp.Tool{
		Name:        "get_notebook",
		Description: prompts.GetNotebookToolDoc,
	}

	return &tools.ServerTool{
		Tool: tool,
		RegisterFunc: func(server *mcp.Server) {
			mcp.AddTool(server, tool, handler)
		},
	}
}

// getNotebook pulls the notebook into a per-call workspace, reads the
// .ipynb file verbatim and removes the workspace before returning.
func getNotebook(ctxReq context.Context, ctx *tools.Context, args GetNotebookArgs) (*mcp.CallToolResultFor[any], error) {
	if args.NotebookRef == "" {
		return tools.ErrorResponse(errors.InvalidParams("notebook_ref is required").Error()), nil
	}

	logger := ctx.Logger.WithTool("get_notebook").WithNotebook(args.NotebookRef)

	workspace, err := os.MkdirTemp("", "kaggle-mcp-pull-")
	if err != nil {
		return tools.ErrorResponse(errors.Internal("failed to create workspace", err).Error()), nil
	}
	defer func() {
		if err := os.RemoveAll(workspace); err != nil {
			logger.Warn("Failed to remove workspace", slog.String("workspace", workspace), slog.Any("error", err))
		}
	}()

	if err := ctx.Kaggle.Pull(ctxReq, args.NotebookRef, workspace); err != nil {
		logger.Error("Pull failed", slog.Any("error", err))
		return tools.ErrorResponse(err.Error()), nil
	}

	notebookPath, err := findNotebookFile(workspace)
	if err != nil {
		logger.Error("No notebook file after pull", slog.Any("error", err))
		return tools.ErrorResponse(err.Error()), nil
	}

	content, err := os.ReadFile(notebookPath)
	if err != nil {
		return tools.ErrorResponse(errors.Internal("failed to read pulled notebook", err).Error()), nil
	}

	if len(content) == 0 {
		return tools.ErrorResponse(errors.NotebookFileMissing(fmt.Sprintf("pulled notebook file for %s is empty", args.NotebookRef)).Error()), nil
	}

	logger.Debug("Notebook fetched", slog.Int("bytes", len(content)))

	return tools.SuccessResponse(string(content)), nil
}

// findNotebookFile returns the first entry in dir carrying the notebook
// extension, or NotebookFileMissing when none exists.
func findNotebookFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", errors.Internal("failed to list workspace", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), notebookExtension) {
			return filepath.Join(dir, entry.Name()), nil
		}
	}

	return "", errors.NotebookFileMissing(fmt.Sprintf("no %s file found in pulled workspace", notebookExtension))
}
