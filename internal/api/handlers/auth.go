// Package handlers contains the HTTP handler implementations for the
// ArkadasAI demo API.
//
// Each handler is responsible for:
//   - Decoding and validating HTTP requests
//   - Delegating to the stores and catalog
//   - Encoding responses and managing HTTP-specific concerns
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"arkadasai/internal/core"
	"arkadasai/internal/types"
)

// --- DTOs ---

// RegisterRequest is the request body for POST /auth/register.
// The password is accepted but never inspected or stored; name defaults to
// "Guest" when omitted.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"`
}

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is the unified response for Register and Login.
type AuthResponse struct {
	OK    bool       `json:"ok"`
	Token string     `json:"token"`
	User  types.User `json:"user"`
}

// --- Store Interfaces ---
//
// These interfaces allow the handler to depend on abstractions rather than
// the concrete stores, enabling testability via mocks.

// UserProvisioner covers the user store operations the auth endpoints need.
type UserProvisioner interface {
	// GetOrCreate returns the record for email, auto-provisioning a Guest
	// record on first sight. Idempotent for known emails.
	GetOrCreate(email string) types.User

	// CreateNew creates a record with the supplied name, or fails with a
	// conflict error if the email is already registered.
	CreateNew(email, name string) (types.User, error)
}

// TokenIssuer mints bearer tokens bound to an email.
type TokenIssuer interface {
	Issue(email string) string
}

// --- Handler ---

// AuthHandler maps the register and login endpoints onto the user and token
// stores.
type AuthHandler struct {
	users     UserProvisioner
	tokens    TokenIssuer
	validator *core.Validator
	logger    *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the provided dependencies.
func NewAuthHandler(users UserProvisioner, tokens TokenIssuer, v *core.Validator, l *slog.Logger) *AuthHandler {
	if l == nil {
		l = slog.Default()
	}
	return &AuthHandler{
		users:     users,
		tokens:    tokens,
		validator: v,
		logger:    l,
	}
}

// RegisterRoutes mounts the auth routes onto the provided router. Both are
// public; authentication starts existing only after one of them succeeds.
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/register", h.HandleRegister)
	r.Post("/auth/login", h.HandleLogin)
}

// HandleRegister processes POST /auth/register requests.
//
//  1. Decode and validate the RegisterRequest.
//  2. Create the user; a duplicate email fails with 409 before any mutation.
//  3. Issue a fresh token and return it with the new record.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.Error(w, r, err)
		return
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		core.Error(w, r, err)
		return
	}

	user, err := h.users.CreateNew(req.Email, req.Name)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	token := h.tokens.Issue(user.Email)

	h.logger.Info("user registered", slog.String("user_id", user.ID))

	core.JSON(w, r, http.StatusOK, AuthResponse{
		OK:    true,
		Token: token,
		User:  user,
	})
}

// HandleLogin processes POST /auth/login requests.
//
// The password is ignored entirely and unknown emails are auto-provisioned
// rather than rejected. This is the documented demo contract, not an
// oversight; login is an idempotent get-or-create followed by a fresh token.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.Error(w, r, err)
		return
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		core.Error(w, r, err)
		return
	}

	user := h.users.GetOrCreate(req.Email)
	token := h.tokens.Issue(user.Email)

	h.logger.Info("user logged in", slog.String("user_id", user.ID))

	core.JSON(w, r, http.StatusOK, AuthResponse{
		OK:    true,
		Token: token,
		User:  user,
	})
}
