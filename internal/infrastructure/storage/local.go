package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/sevendesk/helpdesk/internal/shared/logger"
)

// LocalStore writes objects below a directory that the HTTP server exposes
// under publicPath.
type LocalStore struct {
	root       string
	publicPath string
	logger     logger.Interface
}

func NewLocalStore(dir, publicPath string, log logger.Interface) (*LocalStore, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve upload directory: %w", err)
	}
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	if publicPath == "" {
		publicPath = "/uploads"
	}
	return &LocalStore{
		root:       root,
		publicPath: "/" + strings.Trim(publicPath, "/"),
		logger:     log,
	}, nil
}

// Root is the directory served as static files.
func (s *LocalStore) Root() string { return s.root }

// PublicPath is the URL prefix the root is mounted on.
func (s *LocalStore) PublicPath() string { return s.publicPath }

func (s *LocalStore) Put(ctx context.Context, key string, data []byte, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	key, err := cleanKey(key)
	if err != nil {
		return "", err
	}

	dst := filepath.Join(s.root, filepath.FromSlash(key))
	if !strings.HasPrefix(dst, s.root+string(filepath.Separator)) {
		s.logger.Errorw("path traversal attempt detected", "key", key)
		return "", fmt.Errorf("invalid object key %q", key)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(dst, data, 0o640); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	s.logger.Debugw("object stored", "path", dst, "size", len(data))
	return path.Join(s.publicPath, key), nil
}
