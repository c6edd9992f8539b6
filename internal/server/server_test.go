package server

import (
	"context"
	"testing"
	"time"

	"kaggle-mcp/internal/config"
	"kaggle-mcp/internal/kaggle"
	"kaggle-mcp/internal/logging"
)

// stubRunner satisfies kaggle.Runner without spawning subprocesses.
type stubRunner struct{}

func (stubRunner) Run(ctx context.Context, env []string, args ...string) (*kaggle.Result, error) {
	return &kaggle.Result{}, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		Username:       "alice",
		Key:            "secret",
		Binary:         "kaggle",
		CommandTimeout: time.Second,
	}
	logger := logging.NewLogger("error")

	srv, err := New(&Options{
		Config: cfg,
		Logger: logger,
		Client: kaggle.NewWithRunner(cfg, logger, stubRunner{}),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return srv
}

func TestNewRegistersAllTools(t *testing.T) {
	srv := newTestServer(t)

	registry := srv.GetRegistry()
	if registry.Count() != 4 {
		t.Fatalf("Expected 4 tools, got %d", registry.Count())
	}

	for _, name := range []string{"list_notebooks", "get_notebook", "update_notebook", "run_notebook"} {
		if _, err := registry.Lookup(name); err != nil {
			t.Errorf("Expected %s registered: %v", name, err)
		}
	}
}

func TestStartValidatesRegistry(t *testing.T) {
	srv := newTestServer(t)

	if err := srv.Start(context.Background()); err != nil {
		t.Errorf("Start failed: %v", err)
	}
	if err := srv.Stop(context.Background()); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
}

func TestNewRequiresConfig(t *testing.T) {
	if _, err := New(&Options{Logger: logging.NewLogger("error")}); err == nil {
		t.Fatal("Expected error when neither config nor client is provided")
	}
}
