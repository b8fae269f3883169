package main

import (
	"github.com/spf13/cobra"

	"tip-time/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long:  `Start the Model Context Protocol server on stdio so AI agents can call the tip calculator.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server := mcp.NewServer(version, formatter)
		return server.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
