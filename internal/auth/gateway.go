// Package auth wraps the transport for registration and login against the
// identity endpoints of the backend proxy.
package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/OzgurKaptann/mini-market-dashboard/internal/transport"
	"github.com/OzgurKaptann/mini-market-dashboard/pkg/models"
)

// Gateway performs registration and login
type Gateway struct {
	client *transport.Client
	logger *logrus.Entry
}

// NewGateway creates a new auth gateway
func NewGateway(client *transport.Client, logger *logrus.Logger) *Gateway {
	return &Gateway{
		client: client,
		logger: logger.WithField("component", "auth"),
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account. A 400-class failure typically means the
// email is already registered; its detail must be surfaced verbatim.
func (g *Gateway) Register(ctx context.Context, email, password string) (*models.TokenResponse, error) {
	var resp models.TokenResponse
	err := g.client.Post(ctx, "/register", credentials{Email: email, Password: password}, &resp, "")
	if err != nil {
		return nil, err
	}

	g.logger.WithField("email", email).Info("Registered new account")
	return &resp, nil
}

// Login exchanges credentials for a bearer token. A 401 means the
// credentials were wrong; check it with IsBadCredentials.
func (g *Gateway) Login(ctx context.Context, email, password string) (*models.TokenResponse, error) {
	var resp models.TokenResponse
	err := g.client.Post(ctx, "/login", credentials{Email: email, Password: password}, &resp, "")
	if err != nil {
		return nil, err
	}

	g.logger.WithField("email", email).Info("Logged in")
	return &resp, nil
}

// IsBadCredentials reports whether err is a failed-login rejection
func IsBadCredentials(err error) bool {
	var apiErr *transport.APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}
