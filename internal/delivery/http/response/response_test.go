package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "campus/internal/delivery/context"
	domainerrors "campus/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func TestHandleAppError_ClientErrorIsRendered(t *testing.T) {
	c, rec := newContext()

	err := HandleAppError(c, domainerrors.ErrGroupNotFound)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "GROUP_NOT_FOUND", body.Error.Code)
	assert.Equal(t, "req-1", body.Meta.RequestID)
}

func TestHandleAppError_ServerErrorIsReturned(t *testing.T) {
	for _, err := range []error{
		domainerrors.NewDatabaseExecuteError(assert.AnError, "insert failed"),
		domainerrors.ErrTransactionFailed,
		assert.AnError,
	} {
		c, rec := newContext()

		got := HandleAppError(c, err)

		require.ErrorIs(t, got, err)
		assert.False(t, c.Response().Committed)
		assert.Zero(t, rec.Body.Len())
	}
}

func TestError_HidesDetailsOnAuthAndServerErrors(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusInternalServerError} {
		c, rec := newContext()

		require.NoError(t, Error(c, status, "CODE", "message", "secret detail"))
		assert.NotContains(t, rec.Body.String(), "secret detail")
	}

	c, rec := newContext()
	require.NoError(t, Error(c, http.StatusBadRequest, "CODE", "message", "field is wrong"))
	assert.Contains(t, rec.Body.String(), "field is wrong")
}
