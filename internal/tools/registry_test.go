package tools

import (
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"kaggle-mcp/internal/errors"
)

func newTestTool(name string) *ServerTool {
	return &ServerTool{
		Tool:         &mcp.Tool{Name: name, Description: name + " description"},
		RegisterFunc: func(server *mcp.Server) {},
	}
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(newTestTool("list_notebooks")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	tool, err := registry.Lookup("list_notebooks")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if tool.Tool.Name != "list_notebooks" {
		t.Errorf("Expected list_notebooks, got %s", tool.Tool.Name)
	}

	if registry.Count() != 1 {
		t.Errorf("Expected count 1, got %d", registry.Count())
	}
}

func TestRegistryLookupUnknown(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(newTestTool("list_notebooks")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err := registry.Lookup("delete_notebook")
	if err == nil {
		t.Fatal("Expected error for unknown tool")
	}
	if errors.Code(err) != errors.CodeUnknownOperation {
		t.Errorf("Expected code %s, got %s", errors.CodeUnknownOperation, errors.Code(err))
	}
	if !strings.Contains(err.Error(), "delete_notebook") {
		t.Errorf("Expected offending name in error, got %q", err.Error())
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(newTestTool("run_notebook")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := registry.Register(newTestTool("run_notebook")); err == nil {
		t.Fatal("Expected error registering duplicate tool")
	}
}

func TestRegistryRejectsEmptyName(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(newTestTool("")); err == nil {
		t.Fatal("Expected error registering tool with empty name")
	}
}

func TestRegistryListSorted(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"run_notebook", "get_notebook", "list_notebooks"} {
		if err := registry.Register(newTestTool(name)); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
	}

	names := registry.List()
	want := []string{"get_notebook", "list_notebooks", "run_notebook"}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("Expected names[%d]=%s, got %s", i, name, names[i])
		}
	}

	descriptors := registry.Descriptors()
	if len(descriptors) != 3 {
		t.Fatalf("Expected 3 descriptors, got %d", len(descriptors))
	}
	for i, name := range want {
		if descriptors[i].Name != name {
			t.Errorf("Expected descriptors[%d]=%s, got %s", i, name, descriptors[i].Name)
		}
	}
}

func TestRegistryValidate(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(newTestTool("get_notebook")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := registry.Validate(); err != nil {
		t.Errorf("Expected valid registry, got %v", err)
	}

	noDesc := newTestTool("update_notebook")
	noDesc.Tool.Description = ""
	if err := registry.Register(noDesc); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := registry.Validate(); err == nil {
		t.Error("Expected validation failure for empty description")
	}
}
