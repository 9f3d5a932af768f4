package main

import (
	"fmt"

	"github.com/spf13/cobra"

	notesserver "github.com/HendryAvila/apple-notes-mcp/internal/server"
	"github.com/HendryAvila/apple-notes-mcp/internal/updater"
)

var checkUpdates bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of apple-notes-mcp",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "apple-notes-mcp version %s\n", notesserver.Version)
		if !checkUpdates {
			return nil
		}

		res, err := updater.NewChecker().Check(cmd.Context(), notesserver.Version)
		if err != nil {
			return fmt.Errorf("checking for updates: %w", err)
		}
		if res.UpdateAvailable {
			fmt.Fprintf(out, "Update available: v%s -> v%s\n%s\n", res.CurrentVersion, res.LatestVersion, res.ReleaseURL)
		} else {
			fmt.Fprintln(out, "Already at the latest version")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&checkUpdates, "check", false, "Check GitHub for a newer release")
}
