package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"arkadasai/internal/core"
	"arkadasai/internal/types"
)

// defaultPersona is substituted when the request omits the persona field.
const defaultPersona = "Arkadaş"

// chatSender is the fixed sender attribution on every reply.
const chatSender = "assistant"

// --- DTOs ---

// ChatRequest is the request body for POST /chat/send. The message content
// is accepted but does not influence the generated reply (demo stub).
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
	Persona string `json:"persona"`
}

// ChatResponse is the response body for POST /chat/send. UserPlan reflects
// the user's plan at the time of response, after the simulated delay.
type ChatResponse struct {
	OK       bool           `json:"ok"`
	Sender   string         `json:"sender"`
	Reply    string         `json:"reply"`
	UserPlan types.PlanTier `json:"user_plan"`
}

// --- Store Interface ---

// PlanReader covers the single read the chat endpoint performs.
type PlanReader interface {
	Get(email string) (types.User, bool)
}

// --- Handler ---

// ChatHandler serves the simulated chat endpoint. The reply is a fixed
// template; the delay mimics real conversation latency.
type ChatHandler struct {
	users      PlanReader
	replyDelay time.Duration
	validator  *core.Validator
	logger     *slog.Logger
}

// NewChatHandler creates a new ChatHandler. replyDelay is how long each
// request is suspended before the reply is produced.
func NewChatHandler(users PlanReader, replyDelay time.Duration, v *core.Validator, l *slog.Logger) *ChatHandler {
	if l == nil {
		l = slog.Default()
	}
	return &ChatHandler{
		users:      users,
		replyDelay: replyDelay,
		validator:  v,
		logger:     l,
	}
}

// RegisterRoutes mounts the chat routes onto the provided router.
// The caller mounts these inside an authenticated route group.
func (h *ChatHandler) RegisterRoutes(r chi.Router) {
	r.Post("/chat/send", h.HandleChatSend)
}

// HandleChatSend processes POST /chat/send requests.
//
// The handler suspends only its own goroutine for the configured delay; no
// store lock is held while waiting, so concurrent requests (including a
// purchase for the same user) proceed freely. The user's plan is read after
// the delay, not before, so a purchase completing during the wait is visible
// in the response.
func (h *ChatHandler) HandleChatSend(w http.ResponseWriter, r *http.Request) {
	email, ok := types.GetIdentity(r.Context())
	if !ok {
		core.Error(w, r, types.NewAppError(types.ErrCodeAuthTokenMissing, "Missing or invalid token", nil))
		return
	}

	var req ChatRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.Error(w, r, err)
		return
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		core.Error(w, r, err)
		return
	}

	persona := req.Persona
	if persona == "" {
		persona = defaultPersona
	}

	// Simulated latency. Nothing has been mutated, so abandoning the
	// response on client cancellation leaves no inconsistent state.
	timer := time.NewTimer(h.replyDelay)
	defer timer.Stop()
	select {
	case <-r.Context().Done():
		return
	case <-timer.C:
	}

	user, found := h.users.Get(email)
	if !found {
		h.logger.Error("no user record for resolved token", slog.String("email", email))
		core.Error(w, r, types.NewAppError(types.ErrCodeInternalUnexpected, "an unexpected error occurred", nil))
		return
	}

	reply := fmt.Sprintf("%s modu: Mesajını aldım — kısa demo yanıt.", capitalize(strings.ToLower(persona)))

	core.JSON(w, r, http.StatusOK, ChatResponse{
		OK:       true,
		Sender:   chatSender,
		Reply:    reply,
		UserPlan: user.Plan,
	})
}

// capitalize uppercases the first rune of s, leaving the rest untouched.
// Callers lowercase s first, so the combined effect matches the documented
// persona normalization.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
