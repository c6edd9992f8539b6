package tools

import (
	"sort"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"kaggle-mcp/internal/errors"
)

// Registry manages the collection of available tools. It is populated
// once at startup and read-only afterwards.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]*ServerTool
}

// NewRegistry creates a new empty tool registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]*ServerTool),
	}
}

// Register registers a tool with the registry.
func (r *Registry) Register(tool *ServerTool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tool.Tool == nil || tool.Tool.Name == "" {
		return errors.New("tool name cannot be empty")
	}

	name := tool.Tool.Name
	if _, exists := r.tools[name]; exists {
		return errors.New("tool %s is already registered", name)
	}

	r.tools[name] = tool
	return nil
}

// Lookup retrieves a tool by name. A miss yields UnknownOperation
// carrying the offending name.
func (r *Registry) Lookup(name string) (*ServerTool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, exists := r.tools[name]
	if !exists {
		return nil, errors.UnknownOperation(name)
	}
	return tool, nil
}

// List returns all registered tool names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Descriptors returns MCP tool schemas for all registered tools, in name
// order.
func (r *Registry) Descriptors() []*mcp.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)

	descriptors := make([]*mcp.Tool, 0, len(names))
	for _, name := range names {
		descriptors = append(descriptors, r.tools[name].Tool)
	}

	return descriptors
}

// Count returns the number of registered tools.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.tools)
}

// Validate checks if all registered tools are properly configured.
func (r *Registry) Validate() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for name, tool := range r.tools {
		if tool.Tool.Name != name {
			return errors.New("tool name mismatch: registered as %s but reports name %s", name, tool.Tool.Name)
		}

		if tool.Tool.Description == "" {
			return errors.New("tool %s has empty description", name)
		}

		if tool.RegisterFunc == nil {
			return errors.New("tool %s has nil register function", name)
		}
	}

	return nil
}
