package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NeuralTrust/InclusionGuard/pkg/common"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/auth/jwt"
	jwtMocks "github.com/NeuralTrust/InclusionGuard/pkg/infra/auth/jwt/mocks"
	"github.com/NeuralTrust/InclusionGuard/pkg/server/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthApp(t *testing.T, manager jwt.Manager) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(middleware.NewAuthMiddleware(logrus.New(), manager).Middleware())
	app.Get("/test", func(c *fiber.Ctx) error {
		teamID, _ := c.Locals(common.TeamIdKey).(string)
		userID, _ := c.Locals(common.UserIdKey).(string)
		return c.SendString(teamID + "/" + userID)
	})
	return app
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "empty token", header: "Bearer "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := jwtMocks.NewManager(t)
			app := newAuthApp(t, manager)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)

			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	manager := jwtMocks.NewManager(t)
	manager.EXPECT().DecodeToken("bad").Return(nil, jwt.ErrInvalidToken).Once()
	app := newAuthApp(t, manager)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer bad")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"error":"Invalid token"}`, string(body))
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	manager := jwtMocks.NewManager(t)
	manager.EXPECT().DecodeToken("old").Return(nil, jwt.ErrExpiredToken).Once()
	app := newAuthApp(t, manager)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer old")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"error":"Token expired"}`, string(body))
}

func TestAuthMiddleware_ValidTokenSetsIdentity(t *testing.T) {
	manager := jwtMocks.NewManager(t)
	manager.EXPECT().DecodeToken("good").Return(&jwt.Claims{TeamID: "team-1", UserID: "user-1"}, nil).Once()
	app := newAuthApp(t, manager)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer good")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "team-1/user-1", string(body))
}
