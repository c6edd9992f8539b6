// Package notebooks provides registration for the Kaggle notebook
// operation tools.
package notebooks

import (
	"kaggle-mcp/internal/tools"
)

// CreateNotebookTools creates all notebook operation tools.
func CreateNotebookTools(ctx *tools.Context) []*tools.ServerTool {
	return []*tools.ServerTool{
		CreateListNotebooksTool(ctx),
		CreateGetNotebookTool(ctx),
		CreateUpdateNotebookTool(ctx),
		CreateRunNotebookTool(ctx),
	}
}
