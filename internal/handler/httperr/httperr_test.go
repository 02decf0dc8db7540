//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hall-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set(httperr.RequestIDKey, "req-1")

	httperr.AbortWithError(c, http.StatusConflict, errors.New("boom"), "already booked", gin.H{"date": "2024-03-04"})

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusConflict, w.Code)
	require.Len(t, c.Errors, 1)
	assert.EqualError(t, c.Errors[0].Err, "boom")

	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Detail    map[string]string `json:"detail"`
		RequestID string            `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "already booked", body.Error.Message)
	assert.Equal(t, "2024-03-04", body.Detail["date"])
	assert.Equal(t, "req-1", body.RequestID)
}

func TestAbortWithError_NilErrorPanics(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Panics(t, func() {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "bad", nil)
	})
}
