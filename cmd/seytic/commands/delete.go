package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/seytic/seytic/internal/printer"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a ticket",
	Long: `Remove the ticket with the given id from the collection.
Deleting an id that does not exist leaves the collection unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return printer.Error(
			"invalid ticket id",
			"Ticket ids are numeric. Run 'seytic list' to find the id.",
			nil,
		)
	}

	env, err := setupEnv(ctx)
	if err != nil {
		return err
	}
	defer env.Close()

	remaining, err := env.tickets.Delete(ctx, id)
	if err != nil {
		return printer.Error("Failed to delete ticket", err.Error(), nil)
	}

	printer.Success("Ticket deleted successfully\n")
	printer.Info("  %d ticket(s) remaining\n", len(remaining))
	return nil
}
