package server

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes_ServesHealthAndDocs(t *testing.T) {
	s, _ := newTestServer()

	app := fiber.New()
	s.SetupRoutes(app)

	t.Run("liveness probe", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/health/live", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("swagger ui", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/swagger/index.html", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("swagger spec", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/swagger/doc.json", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
