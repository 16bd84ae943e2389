package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/seytic/seytic/internal/printer"
	"github.com/seytic/seytic/internal/session"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and start a session",
	RunE:  runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email address")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if errs := session.ValidateLogin(loginEmail, loginPassword); len(errs) > 0 {
		return printer.FieldErrors("Please fix the errors in the form", errs)
	}

	env, err := setupEnv(ctx)
	if err != nil {
		return err
	}
	defer env.Close()

	sess, err := env.sessions.Login(ctx, loginEmail, loginPassword)
	if errors.Is(err, session.ErrInvalidCredentials) {
		return printer.Error(
			"Login failed",
			"Invalid email or password.",
			[]string{"No account yet? Sign up:\n  seytic signup --email " + loginEmail},
		)
	}
	if err != nil {
		return printer.Error("Login failed", err.Error(), nil)
	}

	printer.Success("Login successful!\n")
	printer.Info("Welcome back, %s\n", sess.User.Name)
	return nil
}
