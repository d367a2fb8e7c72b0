package middlewares

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// The user context handed to handlers must carry the deadline, since
// that context is what the handlers pass into the database layer.
func TestRequestContextSetsDeadline(t *testing.T) {
	app := fiber.New()
	app.Use(RequestContext(5 * time.Second))

	var hasDeadline bool
	app.Get("/ping", func(c *fiber.Ctx) error {
		_, hasDeadline = c.UserContext().Deadline()
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, hasDeadline, "user context must have a deadline")
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestRequestContextKeepsClientRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestContext(5 * time.Second))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("ok") })

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Request-ID", "req-123")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get("X-Request-ID"))
}
