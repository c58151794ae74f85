package commands

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/OzgurKaptann/mini-market-dashboard/internal/auth"
	"github.com/OzgurKaptann/mini-market-dashboard/internal/market"
	"github.com/OzgurKaptann/mini-market-dashboard/internal/store"
	"github.com/OzgurKaptann/mini-market-dashboard/internal/transport"
	"github.com/OzgurKaptann/mini-market-dashboard/pkg/config"
	"github.com/OzgurKaptann/mini-market-dashboard/pkg/logger"
)

// clientEnv wires the full client stack for one command invocation. The
// key-value store is process-local: the session and favorites live exactly
// as long as the command runs, like a browser tab's session storage.
type clientEnv struct {
	cfg       *config.Config
	logger    *logrus.Logger
	client    *transport.Client
	session   *store.SessionStore
	favorites *store.FavoriteStore
	gateway   *auth.Gateway
	builder   *market.Builder
}

func newClientEnv() (*clientEnv, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if verbose {
		cfg.Logging.Level = "debug"
	}

	// Initialize logger
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	client := transport.NewClient(&cfg.API)
	kv := store.NewMemoryKV()
	session := store.NewSessionStore(kv)
	favorites := store.NewFavoriteStore(kv)

	return &clientEnv{
		cfg:       cfg,
		logger:    log,
		client:    client,
		session:   session,
		favorites: favorites,
		gateway:   auth.NewGateway(client, log),
		builder:   market.NewBuilder(client, session, &cfg.API, log),
	}, nil
}

// signIn logs in and stores the bearer token for this process
func (env *clientEnv) signIn(ctx context.Context, email, password string) error {
	resp, err := env.gateway.Login(ctx, email, password)
	if err != nil {
		if auth.IsBadCredentials(err) {
			return fmt.Errorf("invalid email or password")
		}
		return fmt.Errorf("login failed: %w", err)
	}

	env.session.Set(resp.AccessToken)
	return nil
}

func addCredentialFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("email", "e", "", "account email")
	cmd.Flags().StringP("password", "p", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
}

func credentialArgs(cmd *cobra.Command) (string, string) {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	return email, password
}
