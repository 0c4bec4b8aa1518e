package gcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
)

// SlideBucket is read access to the bucket holding slide images and the
// content team's mapping spreadsheets.
type SlideBucket interface {
	ListKeys(ctx context.Context, prefix string) ([]string, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	PublicURL(key string) string
	Close() error
}

type slideBucket struct {
	log           *logger.Logger
	storageClient *storage.Client
	cfg           ObjectStorageConfig
}

func NewSlideBucket(log *logger.Logger) (SlideBucket, error) {
	cfg, err := ResolveObjectStorageConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("resolve object storage config: %w", err)
	}
	return NewSlideBucketWithConfig(log, cfg)
}

func NewSlideBucketWithConfig(log *logger.Logger, cfg ObjectStorageConfig) (SlideBucket, error) {
	if err := ValidateObjectStorageConfig(cfg); err != nil {
		return nil, fmt.Errorf("validate object storage config: %w", err)
	}
	serviceLog := log.With("service", "SlideBucket")

	stClient, err := newStorageClientForMode(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	serviceLog.Info("Object storage initialized",
		"mode", cfg.Mode,
		"emulator_host", cfg.EmulatorHost,
		"bucket", cfg.Bucket,
		"prefix", cfg.Prefix,
	)
	return &slideBucket{log: serviceLog, storageClient: stClient, cfg: cfg}, nil
}

func newStorageClientForMode(ctx context.Context, cfg ObjectStorageConfig) (*storage.Client, error) {
	if cfg.IsEmulatorMode() {
		_ = os.Setenv("STORAGE_EMULATOR_HOST", cfg.EmulatorHost)
		return storage.NewClient(ctx, option.WithoutAuthentication())
	}
	opts := ClientOptionsFromEnv()
	opts = append(opts, option.WithScopes(storage.ScopeReadOnly))
	return storage.NewClient(ctx, opts...)
}

func (b *slideBucket) fullKey(key string) string {
	return b.cfg.Prefix + strings.TrimPrefix(key, "/")
}

// ListKeys returns object names under prefix with the configured bucket
// prefix removed.
func (b *slideBucket) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	it := b.storageClient.Bucket(b.cfg.Bucket).Objects(ctx, &storage.Query{Prefix: b.fullKey(prefix)})
	out := []string{}
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		if strings.HasSuffix(attrs.Name, "/") {
			continue
		}
		out = append(out, strings.TrimPrefix(attrs.Name, b.cfg.Prefix))
	}
	return out, nil
}

func (b *slideBucket) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	// The reader outlives this call; cancel when it is closed.
	ctx2, cancel := context.WithTimeout(ctx, 2*time.Minute)
	r, err := b.storageClient.Bucket(b.cfg.Bucket).Object(b.fullKey(key)).NewReader(ctx2)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to open GCS reader: %w", err)
	}
	return &readCloserWithCancel{ReadCloser: r, cancel: cancel}, nil
}

func (b *slideBucket) PublicURL(key string) string {
	return PublicObjectURL(b.cfg, key)
}

func (b *slideBucket) Close() error {
	if b == nil || b.storageClient == nil {
		return nil
	}
	return b.storageClient.Close()
}

// PublicObjectURL builds the browser URL for key: the configured public base
// first, then the emulator media endpoint, then storage.googleapis.com.
func PublicObjectURL(cfg ObjectStorageConfig, key string) string {
	full := cfg.Prefix + strings.TrimPrefix(key, "/")
	escaped := escapeObjectPath(full)
	switch {
	case cfg.PublicBaseURL != "":
		return fmt.Sprintf("%s/%s/%s", cfg.PublicBaseURL, url.PathEscape(cfg.Bucket), escaped)
	case cfg.IsEmulatorMode():
		return fmt.Sprintf("%s/storage/v1/b/%s/o/%s?alt=media", cfg.EmulatorHost, url.PathEscape(cfg.Bucket), url.PathEscape(full))
	default:
		return fmt.Sprintf("https://storage.googleapis.com/%s/%s", cfg.Bucket, escaped)
	}
}

func escapeObjectPath(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

type readCloserWithCancel struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (r *readCloserWithCancel) Close() error {
	err := r.ReadCloser.Close()
	if r.cancel != nil {
		r.cancel()
	}
	return err
}
