package icons

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"

	"relic-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var noSuchKey = minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.NRGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newTestCatalogue(client *mocks.Client, cfg Config) *Catalogue {
	if cfg.Prefix == "" {
		cfg.Prefix = "icons/characters"
	}
	return NewCatalogue(client, "assets", cfg, zap.NewNop())
}

func TestCatalogue_LoadPNG(t *testing.T) {
	client := new(mocks.Client)
	data := pngBytes(t, 4, 3)
	client.On("GetObject", mock.Anything, "assets", "icons/characters/希儿.png", mock.Anything).
		Return(data, nil).Once()

	cat := newTestCatalogue(client, Config{})

	img, err := cat.Load(context.Background(), "希儿")
	require.NoError(t, err)
	assert.Equal(t, "希儿", img.Name)
	assert.Equal(t, image.Rect(0, 0, 4, 3), img.Image.Bounds())
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.Image.RGBAAt(0, 0))

	// Second load is served from the cache.
	again, err := cat.Load(context.Background(), "希儿")
	require.NoError(t, err)
	assert.Same(t, img, again)
	client.AssertExpectations(t)
}

func TestCatalogue_LoadScales(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "assets", "icons/characters/白露.png", mock.Anything).
		Return(pngBytes(t, 10, 6), nil)

	img, err := newTestCatalogue(client, Config{Size: 8}).Load(context.Background(), "白露")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 8), img.Bounds())
}

func TestCatalogue_LoadFallsBackToWebp(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "assets", "icons/characters/符玄.png", mock.Anything).
		Return(nil, noSuchKey)
	client.On("GetObject", mock.Anything, "assets", "icons/characters/符玄.webp", mock.Anything).
		Return([]byte("not an image"), nil)

	_, err := newTestCatalogue(client, Config{}).Load(context.Background(), "符玄")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "符玄.webp")
}

func TestCatalogue_LoadErrors(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "assets", mock.Anything, mock.Anything).Return(nil, noSuchKey)
	cat := newTestCatalogue(client, Config{})

	_, err := cat.Load(context.Background(), "青雀")
	assert.ErrorIs(t, err, ErrIconNotFound)

	_, err = cat.Load(context.Background(), "路人甲")
	assert.ErrorIs(t, err, ErrUnknownCharacter)

	broken := new(mocks.Client)
	broken.On("GetObject", mock.Anything, "assets", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))
	_, err = newTestCatalogue(broken, Config{}).Load(context.Background(), "青雀")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrIconNotFound)
}

func TestCatalogue_ConcurrentLoadsShareFetch(t *testing.T) {
	client := new(mocks.Client)
	data := pngBytes(t, 2, 2)
	client.On("GetObject", mock.Anything, "assets", "icons/characters/银狼.png", mock.Anything).
		Return(data, nil).Once()
	cat := newTestCatalogue(client, Config{})

	var wg sync.WaitGroup
	results := make([]*EquipImage, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			img, err := cat.Load(context.Background(), "银狼")
			if err == nil {
				results[i] = img
			}
		}(i)
	}
	wg.Wait()

	require.NotNil(t, results[0])
	for _, img := range results {
		assert.Same(t, results[0], img)
	}
	client.AssertNumberOfCalls(t, "GetObject", 1)
}

func TestCatalogue_LoadAll(t *testing.T) {
	client := new(mocks.Client)
	data := pngBytes(t, 2, 2)
	client.On("GetObject", mock.Anything, "assets", "icons/characters/希儿.png", mock.Anything).
		Return(data, nil)
	client.On("GetObject", mock.Anything, "assets", mock.Anything, mock.Anything).Return(nil, noSuchKey)

	report := newTestCatalogue(client, Config{}).LoadAll(context.Background())
	assert.Equal(t, []string{"希儿"}, report.Loaded)
	assert.Len(t, report.Failed, len(CharacterNames)-1)
}

func TestCatalogue_MissingAndOrphans(t *testing.T) {
	client := new(mocks.Client)
	stored := []string{
		"icons/characters/希儿.png",
		"icons/characters/白露.webp",
		"icons/characters/old/希儿.png",
		"icons/characters/路人甲.png",
		"icons/characters/卡芙卡.gif",
	}
	opts := minio.ListObjectsOptions{Prefix: "icons/characters/", Recursive: true}
	client.On("ListObjects", mock.Anything, "assets", opts).Return(stored)
	cat := newTestCatalogue(client, Config{})

	missing, err := cat.Missing(context.Background())
	require.NoError(t, err)
	assert.Len(t, missing, len(CharacterNames)-2)
	assert.NotContains(t, missing, "希儿")
	assert.NotContains(t, missing, "白露")
	assert.Contains(t, missing, "卡芙卡")

	orphans, err := cat.Orphans(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"icons/characters/old/希儿.png",
		"icons/characters/卡芙卡.gif",
		"icons/characters/路人甲.png",
	}, orphans)
}

func TestCatalogue_ListError(t *testing.T) {
	client := new(mocks.Client)
	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Err: errors.New("access denied")}
	close(ch)
	client.On("ListObjects", mock.Anything, "assets", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	_, err := newTestCatalogue(client, Config{}).Missing(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestCatalogue_RemoveOrphans(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "assets", mock.Anything).
		Return([]string{"icons/characters/希儿.png", "icons/characters/tmp.txt"})
	client.On("RemoveObjects", mock.Anything, "assets", mock.Anything, mock.Anything).
		Return((<-chan minio.RemoveObjectError)(closedRemoveErrors()))

	removed, err := newTestCatalogue(client, Config{}).RemoveOrphans(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"icons/characters/tmp.txt"}, removed)

	call := client.Calls[len(client.Calls)-1]
	objectsCh := call.Arguments.Get(2).(<-chan minio.ObjectInfo)
	var keys []string
	for obj := range objectsCh {
		keys = append(keys, obj.Key)
	}
	assert.Equal(t, []string{"icons/characters/tmp.txt"}, keys)
}

func closedRemoveErrors() chan minio.RemoveObjectError {
	ch := make(chan minio.RemoveObjectError)
	close(ch)
	return ch
}

func TestCatalogue_Upload(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "assets", "icons/characters/流萤.png", mock.Anything, mock.Anything,
		mock.MatchedBy(func(o minio.PutObjectOptions) bool { return o.ContentType == "image/png" })).
		Return(minio.UploadInfo{}, nil)
	client.On("RemoveObject", mock.Anything, "assets", "icons/characters/流萤.webp", mock.Anything).Return(noSuchKey)
	cat := newTestCatalogue(client, Config{})

	img, err := cat.Upload(context.Background(), "流萤", pngBytes(t, 5, 5))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 5, 5), img.Bounds())

	cached, ok := cat.Cached("流萤")
	require.True(t, ok)
	assert.Same(t, img, cached)
	assert.Len(t, cat.Images(), 1)

	_, err = cat.Upload(context.Background(), "流萤", []byte("garbage"))
	assert.Error(t, err)

	_, err = cat.Upload(context.Background(), "路人甲", pngBytes(t, 1, 1))
	assert.ErrorIs(t, err, ErrUnknownCharacter)
	client.AssertNumberOfCalls(t, "PutObject", 1)
}
