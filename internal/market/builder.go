// Package market turns raw proxy responses into the ranked, quota-annotated
// dashboard view, classifying authentication expiry, upstream throttling and
// per-user quota exhaustion as distinct conditions.
package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/OzgurKaptann/mini-market-dashboard/internal/store"
	"github.com/OzgurKaptann/mini-market-dashboard/internal/transport"
	"github.com/OzgurKaptann/mini-market-dashboard/pkg/config"
	"github.com/OzgurKaptann/mini-market-dashboard/pkg/models"
)

// State is the view lifecycle state
type State string

const (
	StateIdle        State = "idle"
	StateLoading     State = "loading"
	StateReady       State = "ready"
	StateNeedsReauth State = "needs-reauth"
	StateErrored     State = "errored"
)

// User-facing failure messages. 503 is the shared upstream throttling the
// proxy; 429 is this user's own quota. The two must never be conflated.
var (
	upstreamThrottledMessage = "Market data provider is rate limiting the proxy (shared upstream). Try again in 30-60 seconds."
	quotaExhaustedMessage    = fmt.Sprintf("Daily request limit reached (Free plan: %d/day). The counter resets daily.", FreeDailyLimit)
	genericFailureMessage    = "Server error. Try again."
)

// View is the renderable dashboard state
type View struct {
	State   State
	Profile *models.UserProfile
	Assets  []models.Asset
	Quota   *models.QuotaSnapshot
	Message string // inline error text, empty unless errored
}

// Builder orchestrates the concurrent profile + markets fetch and owns the
// view state machine.
type Builder struct {
	client  *transport.Client
	session *store.SessionStore
	cfg     *config.APIConfig
	logger  *logrus.Entry

	mu   sync.Mutex
	seq  uint64
	view View
}

// NewBuilder creates a new view builder
func NewBuilder(client *transport.Client, session *store.SessionStore, cfg *config.APIConfig, logger *logrus.Logger) *Builder {
	return &Builder{
		client:  client,
		session: session,
		cfg:     cfg,
		logger:  logger.WithField("component", "market"),
		view:    View{State: StateIdle},
	}
}

// View returns the current view
func (b *Builder) View() View {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.view
}

// Load runs one refresh: fan out the profile and asset-list fetches, wait
// for both, then either publish the new view or classify the failure. Each
// load carries a sequence number; a completion superseded by a newer load
// is discarded so a stale response never clobbers a fresher view.
func (b *Builder) Load(ctx context.Context) View {
	token, ok := b.session.Get()
	if !ok {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.view = View{State: StateNeedsReauth}
		return b.view
	}

	b.mu.Lock()
	b.seq++
	seq := b.seq
	b.view.State = StateLoading
	b.view.Message = ""
	b.mu.Unlock()

	profile, assets, err := b.fetch(ctx, token)

	b.mu.Lock()
	defer b.mu.Unlock()

	if seq != b.seq {
		b.logger.WithField("seq", seq).Debug("Discarding superseded load")
		return b.view
	}

	if err != nil {
		b.fail(err)
		return b.view
	}

	b.view = View{
		State:   StateReady,
		Profile: profile,
		Assets:  assets,
		Quota:   Quota(profile),
	}

	b.logger.WithFields(logrus.Fields{
		"assets": len(assets),
		"plan":   profile.PlanType,
	}).Debug("Dashboard view loaded")

	return b.view
}

// fetch issues both requests concurrently. Neither depends on the other, but
// both must settle before the load resolves; the profile failure wins when
// both legs fail.
func (b *Builder) fetch(ctx context.Context, token string) (*models.UserProfile, []models.Asset, error) {
	var (
		profile models.UserProfile
		raw     json.RawMessage
		meErr   error
		listErr error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		meErr = b.client.Get(ctx, "/me", &profile, token)
	}()
	go func() {
		defer wg.Done()
		listErr = b.client.Get(ctx, b.marketsPath(), &raw, token)
	}()
	wg.Wait()

	if meErr != nil {
		return nil, nil, meErr
	}
	if listErr != nil {
		return nil, nil, listErr
	}

	assets, err := NormalizeAssets(raw)
	if err != nil {
		return nil, nil, err
	}

	return &profile, assets, nil
}

// fail classifies a load failure, first match wins. 401 is the only case
// with a destructive side effect: the stored token is cleared and no error
// message is rendered. Every other case keeps the previously loaded assets
// on screen and only sets the inline message.
func (b *Builder) fail(err error) {
	var apiErr *transport.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case http.StatusUnauthorized:
			b.session.Clear()
			b.view = View{State: StateNeedsReauth}
			b.logger.Info("Session expired, re-authentication required")
			return
		case http.StatusServiceUnavailable:
			b.view.State = StateErrored
			b.view.Message = messageOr(apiErr.Detail, upstreamThrottledMessage)
		case http.StatusTooManyRequests:
			b.view.State = StateErrored
			b.view.Message = messageOr(apiErr.Detail, quotaExhaustedMessage)
		default:
			b.view.State = StateErrored
			b.view.Message = messageOr(apiErr.Detail, genericFailureMessage)
		}
	} else {
		// Transport-level failure: no status to classify
		b.view.State = StateErrored
		b.view.Message = genericFailureMessage
	}

	b.logger.WithError(err).Warn("Dashboard load failed")
}

func (b *Builder) marketsPath() string {
	params := url.Values{}
	params.Set("vs_currency", b.cfg.VsCurrency)
	params.Set("per_page", fmt.Sprintf("%d", b.cfg.PerPage))
	params.Set("page", fmt.Sprintf("%d", b.cfg.Page))
	return "/api/coins/markets?" + params.Encode()
}

func messageOr(detail, fallback string) string {
	if detail != "" {
		return detail
	}
	return fallback
}
