package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthReportsConfiguredSMTPFromInjectedHost(t *testing.T) {
	handler := NewHealthHandler(nil, nil, "smtp.liguemedicina.com")

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	handler.Handle(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response HealthResponse
	json.NewDecoder(w.Body).Decode(&response)
	assert.Equal(t, "configured", response.Dependencies["smtp"])
	assert.Equal(t, "not configured", response.Dependencies["database"])
	assert.Equal(t, "not configured", response.Dependencies["rabbitmq"])
}

func TestHealthReportsUnconfiguredSMTP(t *testing.T) {
	handler := NewHealthHandler(nil, nil, "")

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	handler.Handle(w, req)

	var response HealthResponse
	json.NewDecoder(w.Body).Decode(&response)
	assert.Equal(t, "not configured", response.Dependencies["smtp"])
}
