package server

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/NeuralTrust/InclusionGuard/pkg/config"
	"github.com/NeuralTrust/InclusionGuard/pkg/server/router"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRouter struct {
	err error
}

func (r stubRouter) BuildRoutes(app *fiber.App) error {
	if r.err != nil {
		return r.err
	}
	app.Get("/stub", func(c *fiber.Ctx) error {
		return c.SendString("stub")
	})
	return nil
}

func TestAPIServer_HealthAndRouters(t *testing.T) {
	logger, hook := test.NewNullLogger()
	s := NewAPIServer(APIServerDI{
		Routers: []router.ServerRouter{stubRouter{}, stubRouter{err: errors.New("broken")}},
		Config:  &config.Config{},
		Logger:  logger,
	})

	for _, path := range []string{HealthPath, AdminHealthPath, "/stub"} {
		resp, err := s.Router.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "failed to build routes", hook.LastEntry().Message)
}

func TestAPIServer_ShutdownWithoutMetrics(t *testing.T) {
	logger, _ := test.NewNullLogger()
	s := NewAPIServer(APIServerDI{Config: &config.Config{}, Logger: logger})

	assert.NoError(t, s.Shutdown())
}
