package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OzgurKaptann/mini-market-dashboard/internal/market"
)

var marketsCmd = &cobra.Command{
	Use:   "markets",
	Short: "Fetch the asset list once and print it",
	Long:  "Sign in, load the dashboard view a single time, and print the asset table",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newClientEnv()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		email, password := credentialArgs(cmd)
		query, _ := cmd.Flags().GetString("query")

		if err := env.signIn(ctx, email, password); err != nil {
			return err
		}

		view := env.builder.Load(ctx)
		switch view.State {
		case market.StateNeedsReauth:
			return fmt.Errorf("session expired before the load completed")
		case market.StateErrored:
			return fmt.Errorf("%s", view.Message)
		}

		renderView(view, env.favorites, query)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(marketsCmd)
	addCredentialFlags(marketsCmd)
	marketsCmd.Flags().StringP("query", "q", "", "filter by name or symbol substring")
}
