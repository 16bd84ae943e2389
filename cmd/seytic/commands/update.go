package commands

import (
	"context"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/seytic/seytic/internal/printer"
	"github.com/seytic/seytic/pkg/ticket"
)

var (
	updateTitle       string
	updateDescription string
	updateStatus      string
	updatePriority    string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a ticket",
	Long: `Merge the supplied fields over the ticket with the given id.
Fields not supplied keep their current values. Updating an id that does
not exist leaves the collection unchanged.

Examples:
  seytic update 1700000000000 --status closed
  seytic update 1700000000000 --title "New title" --priority low`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "New description")
	updateCmd.Flags().StringVar(&updateStatus, "status", "", "New status: open, in_progress, or closed")
	updateCmd.Flags().StringVar(&updatePriority, "priority", "", "New priority: low, medium, or high")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return printer.Error(
			"invalid ticket id",
			"Ticket ids are numeric. Run 'seytic list' to find the id.",
			nil,
		)
	}

	patch, errs := buildPatch(cmd)
	if len(errs) > 0 {
		return printer.FieldErrors("Please fix the errors in the form", errs)
	}
	if patch == (ticket.Patch{}) {
		return printer.Error(
			"nothing to update",
			"Supply at least one of --title, --description, --status, --priority.",
			nil,
		)
	}

	now := time.Now().UnixMilli()
	patch.UpdatedAt = &now

	env, err := setupEnv(ctx)
	if err != nil {
		return err
	}
	defer env.Close()

	if _, err := env.tickets.Update(ctx, id, patch); err != nil {
		return printer.Error("Failed to update ticket", err.Error(), nil)
	}

	printer.Success("Ticket updated successfully\n")
	return nil
}

// buildPatch turns only the flags the user actually set into a patch,
// validating each supplied value.
func buildPatch(cmd *cobra.Command) (ticket.Patch, map[string]string) {
	patch := ticket.Patch{}
	errs := make(map[string]string)

	if cmd.Flags().Changed("title") {
		if updateTitle == "" {
			errs["title"] = "Title is required"
		} else if len(updateTitle) > ticket.MaxTitleLength {
			errs["title"] = "Title must be less than 200 characters"
		} else {
			patch.Title = &updateTitle
		}
	}

	if cmd.Flags().Changed("description") {
		if len(updateDescription) > ticket.MaxDescriptionLength {
			errs["description"] = "Description too long"
		} else {
			patch.Description = &updateDescription
		}
	}

	if cmd.Flags().Changed("status") {
		status := ticket.Status(updateStatus)
		if status.Validate() != nil {
			errs["status"] = "Invalid status"
		} else {
			patch.Status = &status
		}
	}

	if cmd.Flags().Changed("priority") {
		priority := ticket.Priority(updatePriority)
		if priority.Validate() != nil {
			errs["priority"] = "Invalid priority"
		} else {
			patch.Priority = &priority
		}
	}

	return patch, errs
}
