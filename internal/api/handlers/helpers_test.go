package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"arkadasai/internal/billing"
	"arkadasai/internal/config"
	"arkadasai/internal/core"
	"arkadasai/internal/store"
	"arkadasai/internal/types"
)

// testEnv wires real stores and all handlers through the core chassis, so
// handler tests exercise routing, middleware, and store behavior together.
type testEnv struct {
	srv    *core.Server
	users  *store.UserStore
	tokens *store.TokenStore
}

// newTestEnv builds a fully mounted server. replyDelay keeps chat tests fast;
// production default is configured separately.
func newTestEnv(t *testing.T, replyDelay time.Duration) *testEnv {
	t.Helper()

	cfg := &config.Config{
		Environment: "local",
		Service:     "arkadasai-demo-api",
		LogLevel:    "error",
		Chat:        config.ChatConfig{ReplyDelay: replyDelay},
		Security:    config.SecurityConfig{CorsAllowedOrigins: []string{"*"}},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	users := store.NewUserStore()
	tokens := store.NewTokenStore()

	srv, err := core.NewServer(cfg, tokens, logger)
	require.NoError(t, err)

	authHandler := NewAuthHandler(users, tokens, srv.Validator, logger)
	plansHandler := NewPlansHandler(billing.NewStaticPlanCatalog())
	accountHandler := NewAccountHandler(users, srv.Validator, logger)
	chatHandler := NewChatHandler(users, replyDelay, srv.Validator, logger)

	srv.RouteRegistrars = append(srv.RouteRegistrars, func(r chi.Router) {
		authHandler.RegisterRoutes(r)
		plansHandler.RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(srv.RequireAuth)
			accountHandler.RegisterRoutes(r)
			chatHandler.RegisterRoutes(r)
		})
	})
	srv.MountRoutes()

	return &testEnv{srv: srv, users: users, tokens: tokens}
}

// do performs a request against the mounted router.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.srv.Handler().ServeHTTP(rec, req)
	return rec
}

// register creates a user via the HTTP surface and returns the issued token
// and record.
func (e *testEnv) register(t *testing.T, email, name string) (string, types.User) {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    email,
		"password": "irrelevant",
		"name":     name,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Token, resp.User
}

// decodeInto unmarshals a recorded response body into dst.
func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

// errDetail extracts the detail string from an error response body.
func errDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body core.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Detail
}
