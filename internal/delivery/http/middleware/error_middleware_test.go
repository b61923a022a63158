package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"campus/internal/delivery/http/validator"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func handle(t *testing.T, err error) (*httptest.ResponseRecorder, errorBody, string) {
	t.Helper()

	var logs bytes.Buffer
	m := NewErrorMiddleware(slog.New(slog.NewJSONHandler(&logs, nil)))

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), rec)
	m.HandleHTTPError(err, c)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body, logs.String()
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails bool
		wantLogged  bool
	}{
		{
			name:       "app error",
			err:        domainerrors.ErrGroupNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "GROUP_NOT_FOUND",
		},
		{
			name:       "wrapped app error",
			err:        domainerrors.ErrEmailInUse.WrapMessage("register"),
			wantStatus: http.StatusConflict,
			wantCode:   "EMAIL_IN_USE",
		},
		{
			name:        "app error with details",
			err:         domainerrors.ErrValidationFailed.WithDetails("password is too short"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: true,
		},
		{
			name:       "details hidden on 401",
			err:        domainerrors.ErrUnauthenticated.WithDetails("missing header"),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHENTICATED",
		},
		{
			name:        "field errors",
			err:         validator.FieldErrors{"name": "is required"},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: true,
		},
		{
			name:       "echo http error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "METHOD_NOT_ALLOWED",
		},
		{
			name:       "server app error is logged",
			err:        domainerrors.ErrTransactionFailed,
			wantStatus: http.StatusInternalServerError,
			wantCode:   "TRANSACTION_FAILED",
			wantLogged: true,
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantLogged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body, logs := handle(t, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, len(body.Error.Details) > 0)
			assert.Equal(t, tt.wantLogged, logs != "")
			assert.NotContains(t, rec.Body.String(), "boom")
		})
	}
}

func TestErrorMiddleware_CommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.Default())

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.NoContent(http.StatusAccepted))

	m.HandleHTTPError(domainerrors.ErrInternalError, c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHTTPErrorCode(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", httpErrorCode(http.StatusNotFound))
	assert.Equal(t, "REQUEST_ENTITY_TOO_LARGE", httpErrorCode(http.StatusRequestEntityTooLarge))
	assert.Equal(t, "HTTP_ERROR", httpErrorCode(799))
}
