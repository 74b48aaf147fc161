package main

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"arctic-chronicler/internal/catalog"
	"arctic-chronicler/internal/config"
	"arctic-chronicler/internal/handler"
	"arctic-chronicler/internal/metrics"
	"arctic-chronicler/internal/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	catalogPath = ""
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAskCommand(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	out, err := runCommand(t, "ask", "Почему", "тают", "ЛЬДЫ?")
	require.NoError(t, err)
	assert.Contains(t, out, cat.AssistantName()+": ")
	assert.NotContains(t, out, cat.Fallback())

	out, err = runCommand(t, "ask", "какая", "завтра", "погода")
	require.NoError(t, err)
	assert.Contains(t, out, cat.Fallback())
}

func TestCheckCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{name: "within tolerance", args: []string{"check", "ice-melt", "6,5"}, want: "correct: 6.5"},
		{name: "outside tolerance", args: []string{"check", "ice-melt", "9"}, want: "incorrect: 9"},
		{name: "not a number", args: []string{"check", "ice-melt", "много"}, want: "unparsable"},
		{name: "unknown mission", args: []string{"check", "moon-landing", "1"}, wantErr: true},
		{name: "missing answer", args: []string{"check", "ice-melt"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestNewApp(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	recorder, err := metrics.NewRecorder(reg)
	require.NoError(t, err)
	tokens, err := service.NewTokenService(config.TokenConfig{
		Secret: "0123456789abcdef0123456789abcdef",
		Issuer: "arctic-chronicler",
	}, time.Hour)
	require.NoError(t, err)

	app := newApp(config.ServerConfig{AllowOrigins: "*"}, appDeps{
		Handlers: handler.Handlers{
			Catalog:  handler.NewCatalogHandler(service.NewCatalogService(cat)),
			Timeline: handler.NewTimelineHandler(service.NewTimelineService(cat)),
		},
		Tokens:   tokens,
		Recorder: recorder,
		Gatherer: reg,
		Health:   handler.NewHealthHandler(nil),
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/catalog/roles", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/missions", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "chronicler_http_requests_total")

	resp, err = app.Test(httptest.NewRequest("GET", "/swagger/doc.json", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
