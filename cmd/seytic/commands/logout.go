package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/seytic/seytic/internal/printer"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	env, err := setupEnv(ctx)
	if err != nil {
		return err
	}
	defer env.Close()

	if err := env.sessions.Logout(ctx); err != nil {
		return printer.Error("Logout failed", err.Error(), nil)
	}

	printer.Success("Logged out successfully\n")
	return nil
}
