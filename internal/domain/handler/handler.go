package handler

import (
	"context"

	"github.com/danieldunderfelt/ai-therapist-mcp/internal/domain/shared"
)

// ToolHandler defines a handler for tools
type ToolHandler interface {
	// ListTools returns a list of available tools
	ListTools(ctx context.Context) ([]shared.Tool, error)

	// CallTool executes a tool with the given arguments
	CallTool(ctx context.Context, name string, arguments map[string]interface{}) ([]shared.Content, error)
}
