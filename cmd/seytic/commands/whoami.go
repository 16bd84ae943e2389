package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/seytic/seytic/internal/printer"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	env, err := setupEnv(ctx)
	if err != nil {
		return err
	}
	defer env.Close()

	sess, err := env.sessions.Current(ctx)
	if err != nil {
		return printer.Error("Operation failed", err.Error(), nil)
	}
	if sess == nil {
		printer.Info("Not logged in.\n")
		printer.Info("\nRun 'seytic login' or 'seytic signup' to start a session.\n")
		return nil
	}

	printer.Info("%s <%s> (user id %d)\n", sess.User.Name, sess.User.Email, sess.User.ID)
	return nil
}
