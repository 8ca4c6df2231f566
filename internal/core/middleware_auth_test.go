package core

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arkadasai/internal/types"
)

func TestRequireAuth(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"demo_1_alice_example.com": "alice@example.com",
	})

	var gotEmail string
	handler := srv.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEmail, _ = types.GetIdentity(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantDetail string
		wantEmail  string
	}{
		{
			name:       "no header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Missing or invalid token",
		},
		{
			name:       "wrong scheme",
			header:     "Basic demo_1_alice_example.com",
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Missing or invalid token",
		},
		{
			name:       "lowercase scheme rejected",
			header:     "bearer demo_1_alice_example.com",
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Missing or invalid token",
		},
		{
			name:       "unknown token",
			header:     "Bearer demo_9_ghost",
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Invalid token",
		},
		{
			name:       "valid token",
			header:     "Bearer demo_1_alice_example.com",
			wantStatus: http.StatusOK,
			wantEmail:  "alice@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotEmail = ""

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, decodeErrorBody(t, rec).Detail)
			}
			if tt.wantStatus == http.StatusOK {
				require.Equal(t, tt.wantEmail, gotEmail)
			}
		})
	}
}
