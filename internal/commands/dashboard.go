package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OzgurKaptann/mini-market-dashboard/internal/market"
	"github.com/OzgurKaptann/mini-market-dashboard/internal/store"
	"github.com/OzgurKaptann/mini-market-dashboard/pkg/logger"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive market dashboard",
	Long:  "Sign in and browse the asset list interactively: refresh, search, and favorite assets",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newClientEnv()
		if err != nil {
			return err
		}

		email, password := credentialArgs(cmd)
		return runDashboard(cmd.Context(), env, email, password)
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	addCredentialFlags(dashboardCmd)
}

// runDashboard signs in and drives the interactive session loop. The
// session ends on quit, logout, stdin EOF, or authentication expiry.
func runDashboard(ctx context.Context, env *clientEnv, email, password string) error {
	log := logger.WithComponent(env.logger, "dashboard")

	// Best-effort probe before first paint
	if err := env.client.Health(ctx); err != nil {
		log.WithError(err).Warn("Proxy health check failed")
	}

	if err := env.signIn(ctx, email, password); err != nil {
		return err
	}

	query := ""
	view := env.builder.Load(ctx)
	if view.State == market.StateNeedsReauth {
		fmt.Println("Session expired. Sign in again.")
		return nil
	}
	renderView(view, env.favorites, query)
	printHelp()

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "q" || line == "quit":
			return nil

		case line == "logout":
			env.session.Clear()
			fmt.Println("Logged out.")
			return nil

		case line == "" || line == "r":
			view = env.builder.Load(ctx)
			if view.State == market.StateNeedsReauth {
				fmt.Println("Session expired. Sign in again.")
				return nil
			}
			renderView(view, env.favorites, query)

		case strings.HasPrefix(line, "/"):
			// Search is a pure projection, no refetch
			query = strings.TrimPrefix(line, "/")
			renderView(env.builder.View(), env.favorites, query)

		case strings.HasPrefix(line, "f "):
			id := strings.TrimSpace(strings.TrimPrefix(line, "f "))
			env.favorites.Toggle(id)
			renderView(env.builder.View(), env.favorites, query)

		default:
			printHelp()
		}

		fmt.Print("> ")
	}

	return scanner.Err()
}

func printHelp() {
	fmt.Println("Commands: <enter>/r refresh · /text search · / clear search · f <id> toggle favorite · logout · q quit")
}

// renderView prints the quota banner, any inline failure message, and the
// ranked asset table.
func renderView(view market.View, favorites *store.FavoriteStore, query string) {
	if view.Profile != nil {
		fmt.Printf("\n%s · Plan: %s\n", view.Profile.Email, view.Profile.PlanType)
	}

	if view.Quota != nil {
		fmt.Printf("Free plan usage: %d/%d · Left: %d\n",
			view.Quota.Used, market.FreeDailyLimit, view.Quota.Left)
	}

	if view.Message != "" {
		fmt.Printf("\n! %s\n", view.Message)
	}

	favs := favorites.List()
	assets := market.Project(view.Assets, favs, query)

	if len(assets) == 0 {
		if view.Message == "" {
			fmt.Println("No results.")
		}
		return
	}

	favSet := make(map[string]struct{}, len(favs))
	for _, id := range favs {
		favSet[id] = struct{}{}
	}

	fmt.Printf("\n%-4s %-6s %-24s %-10s %16s %10s\n",
		"Fav", "Rank", "Name", "Symbol", "Price", "24h %")
	fmt.Println(strings.Repeat("-", 76))

	for _, asset := range assets {
		star := " "
		if _, ok := favSet[asset.ID]; ok {
			star = "*"
		}

		rank := "-"
		if asset.MarketCapRank != nil {
			rank = fmt.Sprintf("%d", *asset.MarketCapRank)
		}

		price := "-"
		if asset.CurrentPrice != nil {
			price = "$" + asset.CurrentPrice.String()
		}

		change := "-"
		if asset.PriceChange24h != nil {
			change = asset.PriceChange24h.StringFixed(2) + "%"
		}

		fmt.Printf("%-4s %-6s %-24s %-10s %16s %10s\n",
			star, rank, asset.Name, strings.ToUpper(asset.Symbol), price, change)
	}

	fmt.Printf("\nTotal: %d assets\n", len(assets))
}
