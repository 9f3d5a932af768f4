package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/HendryAvila/apple-notes-mcp/internal/notes"
	notesserver "github.com/HendryAvila/apple-notes-mcp/internal/server"
)

var (
	callJSON string
	callArgs []string
)

var callCmd = &cobra.Command{
	Use:   "call [operation]",
	Short: "Run one note operation and print its reply",
	Long: `Run one operation without an MCP host. Arguments are given as a JSON
object with --args, as repeated --arg key=value pairs, or both; --arg wins.

Operations: ` + strings.Join(notes.OperationNames(), ", "),
	Example: `  apple-notes-mcp call list_notes --arg account=iCloud
  apple-notes-mcp call read_note --args '{"note_name":"Groceries","plain":true}'`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opArgs, err := parseArgs(callJSON, callArgs)
		if err != nil {
			fatal("Invalid arguments", err)
		}

		svc := notesserver.NewService(cfg, slog.Default())
		reply := svc.Dispatch(cmd.Context(), args[0], opArgs)
		if reply.IsError {
			fmt.Fprintln(os.Stderr, reply.Text)
			os.Exit(1)
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(reply.Text, "\n"))
	},
}

func init() {
	rootCmd.AddCommand(callCmd)
	callCmd.Flags().StringVar(&callJSON, "args", "", "Arguments as a JSON object")
	callCmd.Flags().StringArrayVar(&callArgs, "arg", nil, "Argument as key=value (repeatable)")
}

// parseArgs merges a JSON object and key=value pairs into operation
// arguments. Non-string JSON values are rendered with fmt.
func parseArgs(raw string, pairs []string) (notes.Args, error) {
	out := notes.Args{}

	if strings.TrimSpace(raw) != "" {
		var obj map[string]interface{}
		if err := json.Unmarshal([]byte(raw), &obj); err != nil {
			return nil, fmt.Errorf("--args must be a JSON object: %w", err)
		}
		for k, v := range obj {
			switch v := v.(type) {
			case nil:
			case string:
				out[k] = v
			default:
				out[k] = fmt.Sprint(v)
			}
		}
	}

	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("--arg %q: want key=value", p)
		}
		out[strings.TrimSpace(k)] = v
	}
	return out, nil
}
