// Package notebooks provides the Kaggle notebook operation tools using
// the MCP SDK patterns.
package notebooks

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"kaggle-mcp/internal/kaggle"
	"kaggle-mcp/internal/prompts"
	"kaggle-mcp/internal/tools"
)

// ListNotebooksArgs represents the arguments for the list_notebooks tool.
// page and page_size are accepted but not forwarded; the CLI listing
// always returns its default page.
type ListNotebooksArgs struct {
	Page     *int `json:"page,omitempty" jsonschema:"Page number (currently unused)"`
	PageSize *int `json:"page_size,omitempty" jsonschema:"Page size (currently unused)"`
}

// CreateListNotebooksTool creates the list_notebooks tool.
func CreateListNotebooksTool(ctx *tools.Context) *tools.ServerTool {
	handler := func(ctxReq context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[ListNotebooksArgs]) (*mcp.CallToolResultFor[any], error) {
		return listNotebooks(ctxReq, ctx, params.Arguments)
	}

	tool := &mcp.Tool{
		Name:        "list_notebooks",
		Description: prompts.ListNotebooksToolDoc,
	}

	return &tools.ServerTool{
		Tool: tool,
		RegisterFunc: func(server *mcp.Server) {
			mcp.AddTool(server, tool, handler)
		},
	}
}

// listNotebooks fetches the CLI listing and reshapes the text table into
// a JSON array of header-keyed records.
func listNotebooks(ctxReq context.Context, ctx *tools.Context, args ListNotebooksArgs) (*mcp.CallToolResultFor[any], error) {
	logger := ctx.Logger.WithTool("list_notebooks")

	output, err := ctx.Kaggle.ListKernels(ctxReq)
	if err != nil {
		logger.Error("Listing notebooks failed", slog.Any("error", err))
		return tools.ErrorResponse(err.Error()), nil
	}

	records := kaggle.ParseTable(output)
	logger.Debug("Parsed notebook listing", slog.Int("records", len(records)))

	return tools.JSONResponse(records), nil
}
