package core

import (
	"net/http"
	"strings"

	"arkadasai/internal/types"
)

// bearerPrefix is the literal Authorization scheme prefix. The token contract
// requires this exact form; other casings are rejected.
const bearerPrefix = "Bearer "

// RequireAuth wraps handlers requiring authentication.
//
//  1. Extracts the bearer token from the Authorization header.
//  2. Resolves the token to an email via the token store.
//  3. Injects the email into the request context via types.WithIdentity.
//  4. Returns 401 Unauthorized on failure with distinct details:
//     - "Missing or invalid token": no Authorization header or no "Bearer " prefix.
//     - "Invalid token": the token is not present in the store.
//
// Token resolution has no side effects, so a rejected request performs no
// mutation of any store.
func (s *Server) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			Error(w, r, types.NewAppError(types.ErrCodeAuthTokenMissing, "Missing or invalid token", nil))
			return
		}

		token := strings.TrimPrefix(authHeader, bearerPrefix)
		email, ok := s.Tokens.Resolve(token)
		if !ok {
			Error(w, r, types.NewAppError(types.ErrCodeAuthTokenInvalid, "Invalid token", nil))
			return
		}

		ctx := types.WithIdentity(r.Context(), email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
