package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seytic/seytic/internal/printer"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the dashboard counts",
	Long: `Show the dashboard: total tickets and per-status counts, derived from
the current collection. Tickets whose status is not one of open,
in_progress, or closed count toward the total only.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	env, err := setupEnv(ctx)
	if err != nil {
		return err
	}
	defer env.Close()

	stats, err := env.tickets.Stats(ctx)
	if err != nil {
		return printer.Error("Failed to load ticket stats", err.Error(), nil)
	}

	if statsJSON {
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		printer.Println(string(data))
		return nil
	}

	// Greet the logged-in user the way the dashboard header does.
	sess, err := env.sessions.Current(ctx)
	if err != nil {
		return printer.Error("Failed to load session", err.Error(), nil)
	}
	if sess != nil {
		printer.Info("Welcome, %s\n\n", sess.User.Name)
	}

	printer.Printf("%-12s %d\n", "Total", stats.Total)
	printer.Printf("%-12s %d\n", "Open", stats.Open)
	printer.Printf("%-12s %d\n", "In progress", stats.InProgress)
	printer.Printf("%-12s %d\n", "Closed", stats.Closed)
	return nil
}
