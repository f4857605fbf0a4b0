// Package storage persists uploaded files and reports where they are served from.
package storage

import (
	"context"
	"fmt"
	"strings"

	sharedConfig "github.com/sevendesk/helpdesk/internal/shared/config"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
)

const (
	DriverLocal = "local"
	DriverMinio = "minio"
)

// ObjectStore writes an object under key and returns its public URL. Local
// stores return a root-relative path, remote stores an absolute URL.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// NewObjectStore selects the backend configured in storage.driver.
func NewObjectStore(ctx context.Context, cfg sharedConfig.StorageConfig, log logger.Interface) (ObjectStore, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", DriverLocal:
		return NewLocalStore(cfg.UploadDir, cfg.PublicPath, log)
	case DriverMinio:
		return NewMinioStore(ctx, cfg.Minio, log)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}

func cleanKey(key string) (string, error) {
	key = strings.TrimLeft(key, "/")
	if key == "" || strings.Contains(key, "..") || strings.Contains(key, "\\") {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return key, nil
}
