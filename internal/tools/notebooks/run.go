package notebooks

import (
	"context"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"kaggle-mcp/internal/errors"
	"kaggle-mcp/internal/prompts"
	"kaggle-mcp/internal/tools"
)

// RunNotebookArgs represents the arguments for the run_notebook tool.
type RunNotebookArgs struct {
	NotebookRef string `json:"notebook_ref" jsonschema:"Notebook identifier in owner/slug form"`
}

// CreateRunNotebookTool creates the run_notebook tool.
func CreateRunNotebookTool(ctx *tools.Context) *tools.ServerTool {
	handler := func(ctxReq context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[RunNotebookArgs]) (*mcp.CallToolResultFor[any], error) {
		return runNotebook(ctxReq, ctx, params.Arguments)
	}

	tool := &mcp.Tool{
		Name:        "run_notebook",
		Description: prompts.RunNotebookToolDoc,
	}

	return &tools.ServerTool{
		Tool: tool,
		RegisterFunc: func(server *mcp.Server) {
			mcp.AddTool(server, tool, handler)
		},
	}
}

// runNotebook triggers a remote run. Success means the run was accepted;
// the CLI may return before remote execution completes.
func runNotebook(ctxReq context.Context, ctx *tools.Context, args RunNotebookArgs) (*mcp.CallToolResultFor[any], error) {
	if args.NotebookRef == "" {
		return tools.ErrorResponse(errors.InvalidParams("notebook_ref is required").Error()), nil
	}

	logger := ctx.Logger.WithTool("run_notebook").WithNotebook(args.NotebookRef)

	output, err := ctx.Kaggle.Run(ctxReq, args.NotebookRef)
	if err != nil {
		logger.Error("Run failed", slog.Any("error", err))
		return tools.ErrorResponse(err.Error()), nil
	}

	logger.Info("Run started")

	if strings.TrimSpace(output) == "" {
		return tools.SuccessResponsef("Run started for notebook %s", args.NotebookRef), nil
	}

	return tools.SuccessResponse(output), nil
}
