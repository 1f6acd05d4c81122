package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/promptvault/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

Tools:
  search_prompts  - filter and search the gallery, page by page
  get_prompt      - full text and metadata of one prompt
  list_facets     - style and tool categories with counts

By default, the server communicates over stdio using JSON-RPC. Use --port to
start an HTTP server instead, e.g. for MCP Inspector.

Examples:
  # Stdio mode (default, for desktop assistants)
  promptvault mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  promptvault mcp serve --port 8081

Assistant configuration:
  {
    "mcpServers": {
      "promptvault": {
        "command": "/path/to/promptvault",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	if err := loadRecords(cmd.Context()); err != nil {
		return fmt.Errorf("loading prompts: %w", err)
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Catalog:  catalogService,
		Settings: settingsService,
	})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
