package kaggle

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"kaggle-mcp/internal/config"
	"kaggle-mcp/internal/errors"
	"kaggle-mcp/internal/logging"
)

// Client invokes the kaggle CLI on behalf of the tool handlers. It holds
// the credentials resolved at startup; no handler reads the environment.
type Client struct {
	runner   Runner
	username string
	key      string
	logger   *logging.Logger
}

// New creates a client that executes the configured kaggle binary.
func New(cfg *config.Config, logger *logging.Logger) *Client {
	return NewWithRunner(cfg, logger, NewExecRunner(cfg.Binary, cfg.CommandTimeout))
}

// NewWithRunner creates a client with an explicit runner. Tests use this
// to substitute a fake for the subprocess layer.
func NewWithRunner(cfg *config.Config, logger *logging.Logger, runner Runner) *Client {
	return &Client{
		runner:   runner,
		username: cfg.Username,
		key:      cfg.Key,
		logger:   logger,
	}
}

// Configure writes the credentials into the CLI's persisted configuration.
// Executed once at startup, before the request loop begins; failure here
// is fatal.
func (c *Client) Configure(ctx context.Context) error {
	if _, err := c.exec(ctx, "config", "set", "-n", "username", "-v", c.username); err != nil {
		return err
	}
	if _, err := c.exec(ctx, "config", "set", "-n", "key", "-v", c.key); err != nil {
		return err
	}
	return nil
}

// ListKernels runs `kaggle kernels list -m` and returns the raw
// whitespace-aligned table from stdout.
func (c *Client) ListKernels(ctx context.Context) (string, error) {
	return c.exec(ctx, "kernels", "list", "-m")
}

// Pull runs `kaggle kernels pull <ref> -p <dir>`, populating dir with the
// notebook file and its metadata.
func (c *Client) Pull(ctx context.Context, ref, dir string) error {
	_, err := c.exec(ctx, "kernels", "pull", ref, "-p", dir)
	return err
}

// Push runs `kaggle kernels push -p <path>`. The target notebook is
// determined by the metadata embedded at path, not by any reference
// passed to the tool.
func (c *Client) Push(ctx context.Context, path string) (string, error) {
	return c.exec(ctx, "kernels", "push", "-p", path)
}

// Run runs `kaggle kernels run <ref>` and returns whatever the CLI wrote
// to stdout. The CLI may return before remote execution completes.
func (c *Client) Run(ctx context.Context, ref string) (string, error) {
	return c.exec(ctx, "kernels", "run", ref)
}

// exec invokes the CLI and maps any failure into ExternalToolFailure,
// preserving the tool's own message.
func (c *Client) exec(ctx context.Context, args ...string) (string, error) {
	c.logger.Debug("Invoking kaggle CLI", slog.String("args", strings.Join(args, " ")))

	result, err := c.runner.Run(ctx, c.env(), args...)
	if err != nil {
		return "", errors.ExternalTool(fmt.Sprintf("kaggle %s", strings.Join(args[:min(len(args), 2)], " ")), err)
	}

	if result.ExitCode != 0 {
		msg := strings.TrimSpace(result.Stderr)
		if msg == "" {
			msg = strings.TrimSpace(result.Stdout)
		}
		if msg == "" {
			msg = fmt.Sprintf("exit code %d", result.ExitCode)
		}
		return "", errors.ExternalTool(fmt.Sprintf("kaggle %s: %s", strings.Join(args[:min(len(args), 2)], " "), msg), nil)
	}

	c.logger.Debug("kaggle CLI completed",
		slog.Duration("duration", result.Duration),
		slog.Int("stdout_bytes", len(result.Stdout)))

	return result.Stdout, nil
}

// env builds the child process environment with the credentials exported,
// so invocations work even before Configure has persisted them.
func (c *Client) env() []string {
	return append(os.Environ(),
		config.EnvUsername+"="+c.username,
		config.EnvKey+"="+c.key,
	)
}
