package icons

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"relic-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrUnknownCharacter is returned for a name outside CharacterNames.
	ErrUnknownCharacter = errors.New("unknown character")
	// ErrIconNotFound is returned when storage holds no icon for a character.
	ErrIconNotFound = errors.New("icon not found")
)

// extensions are tried in order when loading an icon.
var extensions = []string{".png", ".webp"}

// LoadReport summarises a LoadAll run.
type LoadReport struct {
	Loaded []string          `json:"loaded"`
	Failed map[string]string `json:"failed"`
}

// Catalogue loads character icons from object storage and caches them.
type Catalogue struct {
	client storage.Client
	bucket string
	cfg    Config
	logger *zap.Logger

	mu     sync.RWMutex
	images map[string]*EquipImage
	sf     singleflight.Group
}

// NewCatalogue creates an empty catalogue over bucket.
func NewCatalogue(client storage.Client, bucket string, cfg Config, logger *zap.Logger) *Catalogue {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg.Prefix = strings.Trim(cfg.Prefix, "/")
	return &Catalogue{
		client: client,
		bucket: bucket,
		cfg:    cfg,
		logger: logger,
		images: make(map[string]*EquipImage),
	}
}

func (c *Catalogue) objectKey(name, ext string) string {
	return path.Join(c.cfg.Prefix, name+ext)
}

// Cached returns the icon for name if it has been loaded.
func (c *Catalogue) Cached(name string) (*EquipImage, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	img, ok := c.images[name]
	return img, ok
}

// Load returns the icon for name, fetching it from storage on first use.
// Concurrent loads of the same name share one fetch.
func (c *Catalogue) Load(ctx context.Context, name string) (*EquipImage, error) {
	if !IsKnown(name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharacter, name)
	}
	if img, ok := c.Cached(name); ok {
		return img, nil
	}

	result, err, _ := c.sf.Do(name, func() (interface{}, error) {
		if img, ok := c.Cached(name); ok {
			return img, nil
		}

		img, err := c.fetch(ctx, name)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.images[name] = img
		c.mu.Unlock()
		return img, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*EquipImage), nil
}

func (c *Catalogue) fetch(ctx context.Context, name string) (*EquipImage, error) {
	for _, ext := range extensions {
		key := c.objectKey(name, ext)
		obj, err := c.client.GetObject(ctx, c.bucket, key, minio.GetObjectOptions{})
		if err != nil {
			if isNotFound(err) {
				continue
			}
			return nil, fmt.Errorf("failed to get %s: %w", key, err)
		}

		// minio reports a missing key lazily, on Stat or the first read.
		if st, ok := obj.(statter); ok {
			if _, err := st.Stat(); err != nil {
				obj.Close()
				if isNotFound(err) {
					continue
				}
				return nil, fmt.Errorf("failed to stat %s: %w", key, err)
			}
		}

		rgba, _, err := decodeRGBA(obj, c.cfg.Size)
		obj.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}

		c.logger.Debug("Icon loaded", zap.String("name", name), zap.String("key", key))
		return &EquipImage{Name: name, Image: rgba}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrIconNotFound, name)
}

type statter interface {
	Stat() (minio.ObjectInfo, error)
}

func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}

// LoadAll loads every catalogue icon. Missing or undecodable icons are
// reported in the result and logged; they do not stop the others.
func (c *Catalogue) LoadAll(ctx context.Context) LoadReport {
	report := LoadReport{Failed: map[string]string{}}
	for _, name := range CharacterNames {
		if _, err := c.Load(ctx, name); err != nil {
			c.logger.Warn("Icon unavailable", zap.String("name", name), zap.Error(err))
			report.Failed[name] = err.Error()
			continue
		}
		report.Loaded = append(report.Loaded, name)
	}
	return report
}

// Images returns the loaded icons in catalogue order.
func (c *Catalogue) Images() []*EquipImage {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*EquipImage, 0, len(c.images))
	for _, name := range CharacterNames {
		if img, ok := c.images[name]; ok {
			out = append(out, img)
		}
	}
	return out
}

// storedNames lists the icon objects under the prefix, split into catalogue
// names and orphan object keys.
func (c *Catalogue) storedNames(ctx context.Context) (map[string]struct{}, []string, error) {
	prefix := c.cfg.Prefix
	if prefix != "" {
		prefix += "/"
	}

	present := make(map[string]struct{})
	var orphans []string
	for obj := range c.client.ListObjects(ctx, c.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, nil, fmt.Errorf("failed to list icons: %w", obj.Err)
		}

		base := strings.TrimPrefix(obj.Key, prefix)
		ext := path.Ext(base)
		name := strings.TrimSuffix(base, ext)
		if IsKnown(name) && isIconExt(ext) {
			present[name] = struct{}{}
			continue
		}
		orphans = append(orphans, obj.Key)
	}
	sort.Strings(orphans)
	return present, orphans, nil
}

func isIconExt(ext string) bool {
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Missing returns the catalogue names without an icon in storage.
func (c *Catalogue) Missing(ctx context.Context) ([]string, error) {
	present, _, err := c.storedNames(ctx)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, name := range CharacterNames {
		if _, ok := present[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing, nil
}

// Orphans returns object keys under the prefix that belong to no catalogue name.
func (c *Catalogue) Orphans(ctx context.Context) ([]string, error) {
	_, orphans, err := c.storedNames(ctx)
	return orphans, err
}

// RemoveOrphans deletes every orphan object and returns the removed keys.
func (c *Catalogue) RemoveOrphans(ctx context.Context) ([]string, error) {
	orphans, err := c.Orphans(ctx)
	if err != nil || len(orphans) == 0 {
		return nil, err
	}

	objectsCh := make(chan minio.ObjectInfo, len(orphans))
	for _, key := range orphans {
		objectsCh <- minio.ObjectInfo{Key: key}
	}
	close(objectsCh)

	var errs []string
	for rerr := range c.client.RemoveObjects(ctx, c.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		if rerr.Err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", rerr.ObjectName, rerr.Err))
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("orphan removal had %d errors: %v", len(errs), errs)
	}
	return orphans, nil
}

// Upload validates data as a png or webp icon, stores it as png for name and
// replaces any cached copy.
func (c *Catalogue) Upload(ctx context.Context, name string, data []byte) (*EquipImage, error) {
	if !IsKnown(name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharacter, name)
	}

	rgba, _, err := decodeRGBA(bytes.NewReader(data), c.cfg.Size)
	if err != nil {
		return nil, err
	}
	encoded, err := encodePNG(rgba)
	if err != nil {
		return nil, err
	}

	key := c.objectKey(name, ".png")
	_, err = c.client.PutObject(ctx, c.bucket, key, bytes.NewReader(encoded), int64(len(encoded)), minio.PutObjectOptions{
		ContentType: "image/png",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to put %s: %w", key, err)
	}

	// Keep a single stored icon per name.
	if err := c.client.RemoveObject(ctx, c.bucket, c.objectKey(name, ".webp"), minio.RemoveObjectOptions{}); err != nil && !isNotFound(err) {
		c.logger.Warn("Stale webp icon not removed", zap.String("name", name), zap.Error(err))
	}

	img := &EquipImage{Name: name, Image: rgba}
	c.mu.Lock()
	c.images[name] = img
	c.mu.Unlock()

	c.logger.Info("Icon uploaded", zap.String("name", name), zap.String("key", key))
	return img, nil
}
