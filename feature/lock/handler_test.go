package lock_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"relic-manager/feature/lock"
	"relic-manager/feature/lock/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *lock.Service) {
	t.Helper()
	svc := newTestService(t)
	app := fiber.New()
	lock.NewHandler(svc).RegisterRoutes(app)
	return app, svc
}

func TestHandlePut(t *testing.T) {
	app, svc := newTestApp(t)

	req := httptest.NewRequest("PUT", "/locks/00000000000000aa", strings.NewReader(`{"save": true}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var record models.LockRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&record))
	assert.Equal(t, "00000000000000aa", record.Token)
	assert.True(t, record.Save)

	stored, err := svc.Get(context.Background(), "00000000000000aa")
	require.NoError(t, err)
	assert.True(t, stored.Save)
}

func TestHandlePut_BadRequests(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("PUT", "/locks/not-a-token", strings.NewReader(`{"save": true}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	req = httptest.NewRequest("PUT", "/locks/00000000000000aa", strings.NewReader(`{"save":`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleList(t *testing.T) {
	app, svc := newTestApp(t)
	require.NoError(t, svc.RecordLocks(context.Background(), []string{"00000000000000bb", "00000000000000aa"}))

	resp, err := app.Test(httptest.NewRequest("GET", "/locks", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var records []models.LockRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	require.Len(t, records, 2)
	assert.Equal(t, "00000000000000aa", records[0].Token)
}

func TestHandleGetAndDelete(t *testing.T) {
	app, svc := newTestApp(t)
	require.NoError(t, svc.RecordLocks(context.Background(), []string{"00000000000000aa"}))

	resp, err := app.Test(httptest.NewRequest("GET", "/locks/00000000000000aa", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/locks/00000000000000aa", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/locks/00000000000000aa", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/locks/00000000000000aa", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "lock not found")
}
