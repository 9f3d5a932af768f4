package main

import (
	"fmt"
	"log/slog"

	json "github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"

	notesserver "github.com/HendryAvila/apple-notes-mcp/internal/server"
	"github.com/HendryAvila/apple-notes-mcp/internal/tools"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Print the MCP tool definitions as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := notesserver.NewService(cfg, slog.Default())

		var defs []mcp.Tool
		for _, t := range tools.All(svc) {
			defs = append(defs, t.Definition())
		}

		data, err := json.MarshalIndent(defs, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding tool definitions: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}
