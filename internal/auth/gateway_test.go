package auth

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/OzgurKaptann/mini-market-dashboard/internal/transport"
	"github.com/OzgurKaptann/mini-market-dashboard/pkg/config"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newGatewayFor(srv *httptest.Server) *Gateway {
	client := transport.NewClient(&config.APIConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	})
	return NewGateway(client, testLogger())
}

func TestGateway_LoginReturnsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login" || r.Method != http.MethodPost {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var creds struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Errorf("failed to decode credentials: %v", err)
		}
		if creds.Email != "a@b.c" || creds.Password != "secret" {
			t.Errorf("Unexpected credentials: %+v", creds)
		}

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"access_token":"tok-1","token_type":"bearer"}`)
	}))
	defer srv.Close()

	resp, err := newGatewayFor(srv).Login(context.Background(), "a@b.c", "secret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.AccessToken != "tok-1" || resp.TokenType != "bearer" {
		t.Errorf("token mismatch. Got %+v", resp)
	}
}

func TestGateway_LoginRejectionIsBadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"detail":"Invalid credentials"}`)
	}))
	defer srv.Close()

	_, err := newGatewayFor(srv).Login(context.Background(), "a@b.c", "wrong")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !IsBadCredentials(err) {
		t.Errorf("expected bad-credentials classification, got %v", err)
	}
}

func TestGateway_RegisterSurfacesDetailVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"detail":"Email already registered"}`)
	}))
	defer srv.Close()

	_, err := newGatewayFor(srv).Register(context.Background(), "a@b.c", "secret")
	if err == nil {
		t.Fatal("expected an error")
	}

	var apiErr *transport.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Detail != "Email already registered" {
		t.Errorf("Detail mismatch. Got %q", apiErr.Detail)
	}
	if IsBadCredentials(err) {
		t.Error("a 400 must not classify as bad credentials")
	}
}
