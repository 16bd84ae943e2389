package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/seytic/seytic/internal/printer"
	"github.com/seytic/seytic/pkg/ticket"
)

var (
	listStatus string
	listJSON   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tickets",
	Long: `List the ticket collection in insertion order.

Use --status to show only tickets in one state, and --json for
machine-readable output.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "", "Only show tickets with this status")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if listStatus != "" {
		if err := ticket.Status(listStatus).Validate(); err != nil {
			return printer.Error(
				"invalid status filter",
				fmt.Sprintf("%q is not a known status.", listStatus),
				[]string{"Use one of: open, in_progress, closed"},
			)
		}
	}

	env, err := setupEnv(ctx)
	if err != nil {
		return err
	}
	defer env.Close()

	tickets, err := env.tickets.List(ctx)
	if err != nil {
		return printer.Error("Failed to load tickets", err.Error(), nil)
	}

	if listStatus != "" {
		filtered := tickets[:0]
		for _, t := range tickets {
			if t.Status == ticket.Status(listStatus) {
				filtered = append(filtered, t)
			}
		}
		tickets = filtered
	}

	if listJSON {
		data, err := json.MarshalIndent(tickets, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		printer.Println(string(data))
		return nil
	}

	if len(tickets) == 0 {
		printer.Info("No tickets found.\n")
		printer.Info("\nRun 'seytic add --title \"...\"' to create one.\n")
		return nil
	}

	outputTicketTable(tickets)
	return nil
}

func outputTicketTable(tickets []ticket.Ticket) {
	fmt.Printf("%-15s %-12s %-8s %-16s %s\n", "ID", "STATUS", "PRIORITY", "UPDATED", "TITLE")

	for _, t := range tickets {
		title := t.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		fmt.Printf("%-15d %-12s %-8s %-16s %s\n", t.ID, t.Status, t.Priority, formatMillis(t.UpdatedAt), title)
	}
}

func formatMillis(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return time.UnixMilli(ms).Format("2006-01-02 15:04")
}
