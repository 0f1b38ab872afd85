package dto

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrCodeFromStatus(t *testing.T) {
	tests := []struct {
		status       int
		expectedCode string
	}{
		{http.StatusBadRequest, ErrCodeInvalidRequest},
		{http.StatusNotFound, ErrCodeNotFound},
		{http.StatusTooManyRequests, ErrCodeRateLimit},
		{http.StatusRequestTimeout, ErrCodeTimeout},
		{http.StatusGatewayTimeout, ErrCodeTimeout},
		{http.StatusBadGateway, ErrCodeBadGateway},
		{http.StatusServiceUnavailable, ErrCodeUnavailable},
		{http.StatusInternalServerError, ErrCodeInternal},
		{http.StatusTeapot, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expectedCode, ErrCodeFromStatus(tt.status))
		})
	}
}

func TestNewError(t *testing.T) {
	err := NewError(ErrCodeBadGateway, "catalog offline").
		WithRequestID("req-1").
		WithDetails(map[string]string{"source": "http"})

	assert.Equal(t, ErrCodeBadGateway, err.Error)
	assert.Equal(t, "catalog offline", err.Message)
	assert.Equal(t, "req-1", err.RequestID)
	assert.Equal(t, "http", err.Details["source"])
	assert.WithinDuration(t, time.Now(), err.Timestamp, time.Second)
}

func TestNewCheckoutView(t *testing.T) {
	state := model.NewCartState()
	state.FetchSucceeded(model.DefaultCatalog())
	for i := 0; i < 5; i++ {
		state.Increment(1)
	}

	view := NewCheckoutView(state)
	assert.Equal(t, "500", view.Summary.Subtotal.String())
	assert.True(t, view.Summary.Discount.IsZero())
	assert.Equal(t, 5, view.Summary.ItemCount)

	data, err := json.Marshal(view)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"summary":{"subtotal":500,"discount":0,"total":500,"itemCount":5}`)
	assert.Contains(t, string(data), `"runningTotal":500`)
}
