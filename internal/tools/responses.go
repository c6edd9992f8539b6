// Package tools provides centralized response utilities for MCP tool handlers.
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ErrorResponse creates a standardized error response for MCP tools.
func ErrorResponse(message string) *mcp.CallToolResultFor[any] {
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{&mcp.TextContent{Text: "Error: " + message}},
		IsError: true,
	}
}

// ErrorResponsef creates a standardized error response with formatted message.
func ErrorResponsef(format string, args ...any) *mcp.CallToolResultFor[any] {
	return ErrorResponse(fmt.Sprintf(format, args...))
}

// SuccessResponse creates a standardized success response with text content.
func SuccessResponse(message string) *mcp.CallToolResultFor[any] {
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{&mcp.TextContent{Text: message}},
		IsError: false,
	}
}

// SuccessResponsef creates a standardized success response with formatted message.
func SuccessResponsef(format string, args ...any) *mcp.CallToolResultFor[any] {
	return SuccessResponse(fmt.Sprintf(format, args...))
}

// JSONResponse creates a response with JSON content.
func JSONResponse(data any) *mcp.CallToolResultFor[any] {
	jsonBytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return ErrorResponsef("failed to marshal JSON: %v", err)
	}

	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{&mcp.TextContent{Text: string(jsonBytes)}},
		IsError: false,
	}
}
