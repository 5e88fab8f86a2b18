package common

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Amount string `json:"amount" validate:"required"`
}

func TestValidateAndDecode(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"amount":"100"}`))
		var p samplePayload
		assert.Nil(t, ValidateAndDecode(r, &p))
		assert.Equal(t, "100", p.Amount)
	})

	t.Run("malformed json", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{bad`))
		var p samplePayload
		appErr := ValidateAndDecode(r, &p)
		require.NotNil(t, appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Equal(t, "Invalid request body", appErr.Message)
	})

	t.Run("missing field", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		var p samplePayload
		appErr := ValidateAndDecode(r, &p)
		require.NotNil(t, appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Contains(t, appErr.Message, "Amount")
	})
}

func TestAppError_Send(t *testing.T) {
	rr := httptest.NewRecorder()
	cause := errors.New("boom")
	appErr := NewAppError(http.StatusNotFound, "receiver not found", cause)

	appErr.Send(rr)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"code":404,"message":"receiver not found"}`, rr.Body.String())
	assert.ErrorIs(t, appErr, cause)
}
