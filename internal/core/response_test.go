package core

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arkadasai/internal/types"
)

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestJSON_WritesStatusAndBody(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	JSON(rec, req, http.StatusOK, map[string]any{"ok": true, "value": 42})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"ok":true,"value":42}`, rec.Body.String())
}

func TestJSON_MarshalFailureFallsBack(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	// Channels are not marshallable.
	JSON(rec, req, http.StatusOK, map[string]any{"ch": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "detail")
}

func TestError_AppErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "auth missing",
			err:        types.NewAppError(types.ErrCodeAuthTokenMissing, "Missing or invalid token", nil),
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Missing or invalid token",
		},
		{
			name:       "conflict",
			err:        types.NewAppError(types.ErrCodeConflictEmail, "User already exists", nil),
			wantStatus: http.StatusConflict,
			wantDetail: "User already exists",
		},
		{
			name:       "invalid plan",
			err:        types.NewAppError(types.ErrCodeInvalidPlan, "plan must be Plus or Pro", nil),
			wantStatus: http.StatusBadRequest,
			wantDetail: "plan must be Plus or Pro",
		},
		{
			name:       "wrapped app error",
			err:        errors.Join(errors.New("outer"), types.NewAppError(types.ErrCodeAuthTokenInvalid, "Invalid token", nil)),
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Invalid token",
		},
		{
			name:       "generic error",
			err:        errors.New("database exploded"),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "an unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			Error(rec, req, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantDetail, decodeErrorBody(t, rec).Detail)
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Email string `json:"email"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"email":"a@b.co"}`},
		{name: "unknown fields tolerated", body: `{"email":"a@b.co","extra":true}`},
		{name: "empty body", body: "", wantErr: true},
		{name: "malformed", body: `{"email":`, wantErr: true},
		{name: "type mismatch", body: `{"email":42}`, wantErr: true},
		{name: "trailing second value", body: `{"email":"a@b.co"}{"email":"c@d.co"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var dst payload
			err := DecodeJSON(rec, req, &dst)

			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			var appErr *types.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, types.ErrCodeValidationInvalidJSON, appErr.Code)
			assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPStatus())
		})
	}
}
