// Package main implements the CLI commands for the Kaggle notebooks MCP server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kaggle-mcp/internal/config"
	"kaggle-mcp/internal/kaggle"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check kaggle CLI and credential status",
	Long: `Check that the kaggle command-line tool is installed and that the
required credentials are present in the environment. This command is
diagnostic only; it performs no remote calls.`,
	RunE: runStatus,
}

// runStatus reports local prerequisites for serving requests.
func runStatus(cmd *cobra.Command, args []string) error {
	binary := os.Getenv(config.EnvBinary)
	if binary == "" {
		binary = "kaggle"
	}

	path, err := kaggle.FindBinary(binary)
	if err != nil {
		fmt.Printf("❌ kaggle CLI not found (%s)\n", binary)
		fmt.Println("   Install it with 'pip install kaggle'")
	} else {
		fmt.Printf("✓ kaggle CLI found: %s\n", path)
	}

	missing := false
	for _, env := range []string{config.EnvUsername, config.EnvKey} {
		if os.Getenv(env) == "" {
			fmt.Printf("❌ %s is not set\n", env)
			missing = true
		} else {
			fmt.Printf("✓ %s is set\n", env)
		}
	}

	if missing {
		fmt.Println("   Set the missing variables before starting the server")
	}

	return nil
}
