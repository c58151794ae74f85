package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and open the dashboard",
	Long:  "Register a new account on the proxy, log in with it, and enter the interactive dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newClientEnv()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		email, password := credentialArgs(cmd)

		// The proxy surfaces "Email already registered" as a 400 detail;
		// show it verbatim.
		if _, err := env.gateway.Register(ctx, email, password); err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}
		fmt.Println("Account created.")

		// Registration and the follow-up login are separate operations: if
		// the login fails here the account still exists, so report the
		// login failure as such.
		return runDashboard(ctx, env, email, password)
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	addCredentialFlags(registerCmd)
}
