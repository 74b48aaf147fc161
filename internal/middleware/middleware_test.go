package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"arctic-chronicler/internal/domain"
	"arctic-chronicler/internal/dto"
	"arctic-chronicler/internal/metrics"
	"arctic-chronicler/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ManualMockTokenService implements service.TokenService with function fields.
type ManualMockTokenService struct {
	ValidateFunc func(ctx context.Context, token string) (*dto.ExpeditionClaims, error)
}

func (m *ManualMockTokenService) Issue(string) (string, time.Time, error) {
	panic("not implemented in mock")
}

func (m *ManualMockTokenService) Validate(ctx context.Context, token string) (*dto.ExpeditionClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(ctx, token)
	}
	return nil, errors.New("ValidateFunc not set on mock")
}

func newApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
}

func decode[T any](t *testing.T, body io.Reader) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"expedition not found", domain.NewExpeditionNotFoundError("x"), 404, "EXPEDITION_NOT_FOUND"},
		{"mission not found", domain.NewMissionNotFoundError("x"), 404, "MISSION_NOT_FOUND"},
		{"invalid role", domain.NewInvalidRoleError("pilot"), 400, "INVALID_ROLE"},
		{"unauthorized", domain.NewUnauthorizedError("no", nil), 401, "UNAUTHORIZED"},
		{"internal", domain.NewInternalError("boom", errors.New("cause")), 500, "INTERNAL_ERROR"},
		{"wrapped domain error", errors.Join(errors.New("ctx"), domain.NewInvalidYearError(1900)), 400, "INVALID_YEAR"},
		{"validation", domain.ValidationErrors{domain.NewMissingFieldError("name")}, 400, "VALIDATION_ERROR"},
		{"fiber error", fiber.NewError(fiber.StatusMethodNotAllowed, "nope"), 405, "HTTP_ERROR"},
		{"unknown", errors.New("mystery"), 500, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp()
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			body := decode[map[string]interface{}](t, resp.Body)
			assert.Equal(t, tt.wantCode, body["code"])
			assert.EqualValues(t, tt.wantStatus, body["status"])
		})
	}
}

func TestErrorHandler_Details(t *testing.T) {
	app := newApp()
	app.Get("/", func(c *fiber.Ctx) error { return domain.NewMissionNotFoundError("ice-melt") })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	body := decode[dto.ErrorResponse](t, resp.Body)
	assert.Equal(t, "ice-melt", body.Details["mission_id"])
}

func TestProtected(t *testing.T) {
	tokens := &ManualMockTokenService{
		ValidateFunc: func(_ context.Context, token string) (*dto.ExpeditionClaims, error) {
			if token == "good" {
				return &dto.ExpeditionClaims{ExpeditionID: "01HEXP"}, nil
			}
			return nil, domain.NewUnauthorizedError("invalid expedition token", nil)
		},
	}

	app := newApp()
	app.Get("/me", middleware.Protected(tokens), func(c *fiber.Ctx) error {
		id, err := middleware.ExpeditionID(c)
		if err != nil {
			return err
		}
		return c.SendString(id)
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"valid token", "Bearer good", 200, "01HEXP"},
		{"missing header", "", 401, ""},
		{"wrong scheme", "Basic abc", 401, ""},
		{"empty token", "Bearer ", 401, ""},
		{"invalid token", "Bearer bad", 401, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tt.header != "" {
				req.Header.Set(middleware.AuthorizationHeader, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantBody != "" {
				raw, _ := io.ReadAll(resp.Body)
				assert.Equal(t, tt.wantBody, string(raw))
			}
		})
	}
}

func TestExpeditionID_WithoutProtected(t *testing.T) {
	app := newApp()
	app.Get("/", func(c *fiber.Ctx) error {
		_, err := middleware.ExpeditionID(c)
		return err
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestValidationMiddleware(t *testing.T) {
	vm := middleware.NewValidationMiddleware()
	app := newApp()
	app.Get("/missions/:id", vm.ValidateMissionID(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(middleware.ValidatedMissionIDKey).(string))
	})
	app.Get("/timeline/:year", vm.ValidateTimelineQuery(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"year":   c.Locals(middleware.ValidatedYearKey).(int),
			"layers": c.Locals(middleware.ValidatedLayersKey).([]string),
		})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/missions/ice-melt", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/missions/ICE_MELT", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/timeline/2050?layers=ice,co2", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	body := decode[struct {
		Year   int      `json:"year"`
		Layers []string `json:"layers"`
	}](t, resp.Body)
	assert.Equal(t, 2050, body.Year)
	assert.Equal(t, []string{"ice", "co2"}, body.Layers)

	resp, err = app.Test(httptest.NewRequest("GET", "/timeline/soon", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestRequestLogger_RecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	app := newApp()
	app.Use(middleware.RequestLogger(recorder))
	app.Get("/ok/:id", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/fail", func(c *fiber.Ctx) error { return domain.NewMissionNotFoundError("x") })

	resp, err := app.Test(httptest.NewRequest("GET", "/ok/1", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	n, err := testutil.GatherAndCount(reg, "chronicler_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
