package rayid_test

import (
	"net/http/httptest"
	"testing"

	"relic-manager/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(seen *string) *fiber.App {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		*seen = rayid.FromContext(c)
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func TestNew_GeneratesID(t *testing.T) {
	var seen string
	resp, err := newApp(&seen).Test(httptest.NewRequest("GET", "/", nil), 2000)
	require.NoError(t, err)

	rid := resp.Header.Get(rayid.Header)
	_, err = uuid.Parse(rid)
	assert.NoError(t, err)
	assert.Equal(t, rid, seen)
}

func TestNew_KeepsClientID(t *testing.T) {
	var seen string
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.Header, "scan-42")

	resp, err := newApp(&seen).Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, "scan-42", resp.Header.Get(rayid.Header))
	assert.Equal(t, "scan-42", seen)
}
