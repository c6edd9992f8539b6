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

// UpdateNotebookArgs represents the arguments for the update_notebook tool.
type UpdateNotebookArgs struct {
	NotebookRef string `json:"notebook_ref" jsonschema:"Notebook identifier in owner/slug form"`
	FilePath    string `json:"file_path" jsonschema:"Local path of the notebook file to push"`
}

// CreateUpdateNotebookTool creates the update_notebook tool.
func CreateUpdateNotebookTool(ctx *tools.Context) *tools.ServerTool {
	handler := func(ctxReq context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[UpdateNotebookArgs]) (*mcp.CallToolResultFor[any], error) {
		return updateNotebook(ctxReq, ctx, params.Arguments)
	}

	tool := &mcp.Tool{
		Name:        "update_notebook",
		Description: prompts.UpdateNotebookToolDoc,
	}

	return &tools.ServerTool{
		Tool: tool,
		RegisterFunc: func(server *mcp.Server) {
			mcp.AddTool(server, tool, handler)
		},
	}
}

// updateNotebook pushes the local file. The push targets the notebook
// named by the metadata embedded alongside file_path; notebook_ref is
// validated and echoed in the confirmation but not forwarded to the CLI.
func updateNotebook(ctxReq context.Context, ctx *tools.Context, args UpdateNotebookArgs) (*mcp.CallToolResultFor[any], error) {
	var missing []string
	if args.NotebookRef == "" {
		missing = append(missing, "notebook_ref")
	}
	if args.FilePath == "" {
		missing = append(missing, "file_path")
	}
	if len(missing) > 0 {
		return tools.ErrorResponse(errors.InvalidParamsf("missing required parameters: %s", strings.Join(missing, ", ")).Error()), nil
	}

	logger := ctx.Logger.WithTool("update_notebook").WithNotebook(args.NotebookRef)

	if _, err := ctx.Kaggle.Push(ctxReq, args.FilePath); err != nil {
		logger.Error("Push failed", slog.Any("error", err))
		return tools.ErrorResponse(err.Error()), nil
	}

	logger.Info("Notebook pushed", slog.String("file", args.FilePath))

	return tools.SuccessResponsef("Notebook %s updated successfully", args.NotebookRef), nil
}
