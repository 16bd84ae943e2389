package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/seytic/seytic/internal/printer"
	"github.com/seytic/seytic/pkg/ticket"
)

var (
	addTitle       string
	addDescription string
	addStatus      string
	addPriority    string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a ticket",
	Long: `Create a ticket and append it to the collection.

Examples:
  seytic add --title "Fix login page"
  seytic add --title "Fix crash" --priority high --description "Crashes on save"`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "Ticket title (required, max 200 characters)")
	addCmd.Flags().StringVar(&addDescription, "description", "", "Ticket description (max 1000 characters)")
	addCmd.Flags().StringVar(&addStatus, "status", "open", "Status: open, in_progress, or closed")
	addCmd.Flags().StringVar(&addPriority, "priority", "medium", "Priority: low, medium, or high")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	now := time.Now().UnixMilli()
	fields := ticket.Fields{
		Title:       addTitle,
		Description: addDescription,
		Status:      ticket.Status(addStatus),
		Priority:    ticket.Priority(addPriority),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Validation gate: the repository accepts whatever it is handed.
	errs := ticket.ValidateFields(fields)
	if err := fields.Priority.Validate(); err != nil {
		errs["priority"] = "Invalid priority"
	}
	if len(errs) > 0 {
		return printer.FieldErrors("Please fix the errors in the form", errs)
	}

	env, err := setupEnv(ctx)
	if err != nil {
		return err
	}
	defer env.Close()

	created, err := env.tickets.Add(ctx, fields)
	if err != nil {
		return printer.Error("Failed to create ticket", err.Error(), nil)
	}

	printer.Success("Ticket created successfully\n")
	printer.Info("  id: %d\n", created.ID)
	return nil
}
