package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"arkadasai/internal/core"
	"arkadasai/internal/types"
)

// --- DTOs ---

// MeResponse is the response body for GET /me.
type MeResponse struct {
	OK   bool       `json:"ok"`
	User types.User `json:"user"`
}

// PurchaseRequest is the request body for POST /purchase/confirm.
// The plan value is normalized (trimmed, lowercased) before matching. The
// pointer distinguishes an absent field (structural, 422) from a present but
// unknown value such as "" (rejected tier, 400).
type PurchaseRequest struct {
	Plan *string `json:"plan" validate:"required"`
}

// PurchaseResponse is the response body for POST /purchase/confirm.
type PurchaseResponse struct {
	OK   bool       `json:"ok"`
	User types.User `json:"user"`
}

// --- Store Interface ---

// AccountStore covers the user store operations the account endpoints need.
type AccountStore interface {
	// Get returns a copy of the record for email.
	Get(email string) (types.User, bool)

	// SetPlan overwrites the plan field in place and returns the updated
	// record. The email is guaranteed to exist by token resolution.
	SetPlan(email string, plan types.PlanTier) (types.User, error)
}

// --- Handler ---

// AccountHandler serves the authenticated account endpoints: the current
// user's record and the mock purchase confirmation.
type AccountHandler struct {
	users     AccountStore
	validator *core.Validator
	logger    *slog.Logger
}

// NewAccountHandler creates a new AccountHandler with the provided dependencies.
func NewAccountHandler(users AccountStore, v *core.Validator, l *slog.Logger) *AccountHandler {
	if l == nil {
		l = slog.Default()
	}
	return &AccountHandler{
		users:     users,
		validator: v,
		logger:    l,
	}
}

// RegisterRoutes mounts the account routes onto the provided router.
// The caller mounts these inside an authenticated route group.
func (h *AccountHandler) RegisterRoutes(r chi.Router) {
	r.Get("/me", h.HandleMe)
	r.Post("/purchase/confirm", h.HandlePurchaseConfirm)
}

// HandleMe processes GET /me requests: it returns the current stored record
// for the identity resolved by the auth middleware.
func (h *AccountHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	email, ok := types.GetIdentity(r.Context())
	if !ok {
		core.Error(w, r, types.NewAppError(types.ErrCodeAuthTokenMissing, "Missing or invalid token", nil))
		return
	}

	user, found := h.users.Get(email)
	if !found {
		// A resolved token always maps to an existing record; reaching here
		// means the stores disagree.
		h.logger.Error("no user record for resolved token", slog.String("email", email))
		core.Error(w, r, types.NewAppError(types.ErrCodeInternalUnexpected, "an unexpected error occurred", nil))
		return
	}

	core.JSON(w, r, http.StatusOK, MeResponse{OK: true, User: user})
}

// HandlePurchaseConfirm processes POST /purchase/confirm requests.
//
//  1. Decode and validate the PurchaseRequest.
//  2. Normalize the plan value: trim whitespace, lowercase.
//  3. Only "plus" and "pro" are purchasable; any other value, the empty
//     string included, fails 400 and leaves the stored plan unchanged.
//  4. Overwrite the plan with its canonical capitalized form and return the
//     full updated record.
//
// This is a mock confirmation: no payment provider is involved and there is
// no pending state or downgrade path.
func (h *AccountHandler) HandlePurchaseConfirm(w http.ResponseWriter, r *http.Request) {
	email, ok := types.GetIdentity(r.Context())
	if !ok {
		core.Error(w, r, types.NewAppError(types.ErrCodeAuthTokenMissing, "Missing or invalid token", nil))
		return
	}

	var req PurchaseRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.Error(w, r, err)
		return
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		core.Error(w, r, err)
		return
	}

	var tier types.PlanTier
	switch strings.ToLower(strings.TrimSpace(*req.Plan)) {
	case "plus":
		tier = types.PlanPlus
	case "pro":
		tier = types.PlanPro
	default:
		core.Error(w, r, types.NewAppError(types.ErrCodeInvalidPlan, "plan must be Plus or Pro", nil))
		return
	}

	user, err := h.users.SetPlan(email, tier)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	h.logger.Info("plan updated",
		slog.String("user_id", user.ID),
		slog.String("plan", string(user.Plan)),
	)

	core.JSON(w, r, http.StatusOK, PurchaseResponse{OK: true, User: user})
}
