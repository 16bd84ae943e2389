package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/seytic/seytic/internal/printer"
	"github.com/seytic/seytic/internal/session"
)

var (
	signupEmail    string
	signupPassword string
	signupName     string
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and log in",
	Long: `Register a new user and start a session.

Examples:
  seytic signup --email ana@example.com --name Ana --password hunter22`,
	RunE: runSignup,
}

func init() {
	signupCmd.Flags().StringVar(&signupEmail, "email", "", "Email address")
	signupCmd.Flags().StringVar(&signupPassword, "password", "", "Password (at least 6 characters)")
	signupCmd.Flags().StringVar(&signupName, "name", "", "Display name")
	rootCmd.AddCommand(signupCmd)
}

func runSignup(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if errs := session.ValidateSignup(signupEmail, signupPassword, signupName); len(errs) > 0 {
		return printer.FieldErrors("Please fix the errors in the form", errs)
	}

	env, err := setupEnv(ctx)
	if err != nil {
		return err
	}
	defer env.Close()

	sess, err := env.sessions.Signup(ctx, signupEmail, signupPassword, signupName)
	if errors.Is(err, session.ErrEmailTaken) {
		return printer.Error(
			"Signup failed",
			"That email address is already registered.",
			[]string{"Log in instead:\n  seytic login --email " + signupEmail},
		)
	}
	if err != nil {
		return printer.Error("Signup failed", err.Error(), nil)
	}

	printer.Success("Account created successfully!\n")
	printer.Info("Logged in as %s <%s>\n", sess.User.Name, sess.User.Email)
	return nil
}
