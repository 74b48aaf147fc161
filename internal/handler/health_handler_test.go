package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"arctic-chronicler/internal/handler"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("dial tcp: connection refused") }

	tests := []struct {
		name       string
		checks     map[string]handler.HealthCheck
		wantStatus int
		wantBody   string
	}{
		{"all up", map[string]handler.HealthCheck{"redis": ok, "oracle": ok}, 200, `"status":"ok"`},
		{"redis down", map[string]handler.HealthCheck{"redis": down, "oracle": ok}, 503, `"redis":"down"`},
		{"no checks", nil, 200, `"status":"ok"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/health", handler.NewHealthHandler(tt.checks).Health)

			resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			raw, _ := io.ReadAll(resp.Body)
			assert.Contains(t, string(raw), tt.wantBody)
		})
	}
}
