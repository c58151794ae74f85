package transport

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/OzgurKaptann/mini-market-dashboard/pkg/config"
)

// MockRoundTripper allows us to mock HTTP responses
type MockRoundTripper struct {
	Func func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.Func(req)
}

func newTestClient(fn func(req *http.Request) (*http.Response, error)) *Client {
	client := NewClient(&config.APIConfig{
		BaseURL: "http://proxy.test",
		Timeout: 5 * time.Second,
	})
	client.httpClient.Transport = &MockRoundTripper{Func: fn}
	return client
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

func TestClient_Do_AttachesBearerOnlyWithToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		gotAuth = req.Header.Get("Authorization")
		if ct := req.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Unexpected content type: %s", ct)
		}
		return jsonResponse(200, `{}`), nil
	})

	if err := client.Get(context.Background(), "/me", nil, "tok-123"); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization mismatch. Got %q", gotAuth)
	}

	if err := client.Get(context.Background(), "/health", nil, ""); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected no Authorization header without token, got %q", gotAuth)
	}
}

func TestClient_Do_NonSuccessCarriesStatusAndDetail(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(429, `{"detail":"Daily request limit reached (Free plan: 10/day)"}`), nil
	})

	err := client.Get(context.Background(), "/api/coins/markets", nil, "tok")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Status != 429 {
		t.Errorf("Status mismatch. Got %d", apiErr.Status)
	}
	if apiErr.Detail != "Daily request limit reached (Free plan: 10/day)" {
		t.Errorf("Detail mismatch. Got %q", apiErr.Detail)
	}
}

func TestClient_Do_UnparseableFailureBodyYieldsAbsentDetail(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(503, `<html>Service Unavailable</html>`), nil
	})

	err := client.Get(context.Background(), "/api/coins/markets", nil, "tok")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Status != 503 || apiErr.Detail != "" {
		t.Errorf("mismatch. Got status=%d detail=%q", apiErr.Status, apiErr.Detail)
	}
	// With no detail the error string falls back to the status
	if apiErr.Error() != "HTTP 503" {
		t.Errorf("Error() mismatch. Got %q", apiErr.Error())
	}
}

func TestClient_Do_UnparseableSuccessBodyIsNotAnError(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(200, `not json at all`), nil
	})

	var out struct {
		Email string `json:"email"`
	}
	if err := client.Get(context.Background(), "/me", &out, "tok"); err != nil {
		t.Fatalf("expected no error for unparseable success body, got %v", err)
	}
	if out.Email != "" {
		t.Errorf("expected untouched out, got %+v", out)
	}
}

func TestClient_Do_EncodesRequestBody(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		raw, _ := io.ReadAll(req.Body)
		if string(raw) != `{"email":"a@b.c","password":"secret"}` {
			t.Errorf("Unexpected body: %s", raw)
		}
		return jsonResponse(200, `{"access_token":"tok","token_type":"bearer"}`), nil
	})

	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{"a@b.c", "secret"}

	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := client.Post(context.Background(), "/login", body, &out, ""); err != nil {
		t.Fatalf("Post failed: %v", err)
	}
	if out.AccessToken != "tok" {
		t.Errorf("decode mismatch. Got %+v", out)
	}
}

func TestClient_Do_TransportFailureIsNotAPIError(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	err := client.Get(context.Background(), "/me", nil, "tok")
	if err == nil {
		t.Fatal("expected an error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Errorf("network failure must not be an APIError, got %+v", apiErr)
	}
}
