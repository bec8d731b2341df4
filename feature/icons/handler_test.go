package icons

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http/httptest"
	"net/url"
	"testing"

	"relic-manager/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newIconApp(client *mocks.Client) (*fiber.App, *Catalogue) {
	feature := NewFeature(client, "assets", Config{Prefix: "/icons/characters/"}, nil)
	app := fiber.New()
	_ = feature.Load(app)
	return app, feature.Catalogue()
}

func iconPath(name string) string {
	return "/icons/" + url.PathEscape(name)
}

func TestHandleGet(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "assets", "icons/characters/希儿.png", mock.Anything).
		Return(pngBytes(t, 3, 2), nil)
	client.On("GetObject", mock.Anything, "assets", mock.Anything, mock.Anything).Return(nil, noSuchKey)
	app, _ := newIconApp(client)

	resp, err := app.Test(httptest.NewRequest("GET", iconPath("希儿"), nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	img, err := png.Decode(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, 3, img.Bounds().Dx())

	resp, err = app.Test(httptest.NewRequest("GET", iconPath("青雀"), nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", iconPath("路人甲"), nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleList(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "assets", "icons/characters/银狼.png", mock.Anything).
		Return(pngBytes(t, 4, 4), nil)
	app, cat := newIconApp(client)

	_, err := cat.Load(t.Context(), "银狼")
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/icons", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var out []IconStatus
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, len(CharacterNames))
	for _, s := range out {
		if s.Name == "银狼" {
			assert.True(t, s.Loaded)
			assert.Equal(t, 4, s.Width)
			continue
		}
		assert.False(t, s.Loaded)
	}
}

func TestHandleMissingAndOrphans(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "assets", mock.Anything).
		Return([]string{"icons/characters/希儿.png", "icons/characters/readme.md"})
	app, _ := newIconApp(client)

	resp, err := app.Test(httptest.NewRequest("GET", "/icons/missing", nil), 2000)
	require.NoError(t, err)
	var missing []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&missing))
	assert.Len(t, missing, len(CharacterNames)-1)

	resp, err = app.Test(httptest.NewRequest("GET", "/icons/orphans", nil), 2000)
	require.NoError(t, err)
	var orphans []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&orphans))
	assert.Equal(t, []string{"icons/characters/readme.md"}, orphans)
}

func TestHandleRemoveOrphans_Empty(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "assets", mock.Anything).Return([]string{"icons/characters/希儿.png"})
	app, _ := newIconApp(client)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/icons/orphans", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string][]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body["removed"])
	client.AssertNotCalled(t, "RemoveObjects", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleUpload(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "assets", "icons/characters/花火.png", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
	client.On("RemoveObject", mock.Anything, "assets", "icons/characters/花火.webp", mock.Anything).Return(nil)
	app, cat := newIconApp(client)

	req := httptest.NewRequest("PUT", iconPath("花火"), bytes.NewReader(pngBytes(t, 6, 6)))
	req.Header.Set("Content-Type", "image/png")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var status IconStatus
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, IconStatus{Name: "花火", Loaded: true, Width: 6, Height: 6}, status)
	_, ok := cat.Cached("花火")
	assert.True(t, ok)

	req = httptest.NewRequest("PUT", iconPath("花火"), bytes.NewReader([]byte("nope")))
	resp, err = app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	req = httptest.NewRequest("PUT", iconPath("路人甲"), bytes.NewReader(pngBytes(t, 1, 1)))
	resp, err = app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestFeature_IsEnabled(t *testing.T) {
	assert.True(t, NewFeature(new(mocks.Client), "assets", Config{}, nil).IsEnabled())
	assert.False(t, NewFeature(nil, "assets", Config{}, nil).IsEnabled())
	assert.Equal(t, "icons", NewFeature(nil, "", Config{}, nil).Name())
}
