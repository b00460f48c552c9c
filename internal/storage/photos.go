// Package storage keeps uploaded cat photos on the local filesystem.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/kennygrant/sanitize"
)

// ErrInvalidName is returned for names that would resolve outside the upload directory.
var ErrInvalidName = errors.New("invalid photo name")

// PhotoStore writes and removes photo files by name.
type PhotoStore interface {
	// Save stores r under a name derived from filename and returns the name
	// actually used. Existing files are never overwritten.
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
	// Remove deletes the named photo. Failures are logged, not returned.
	Remove(ctx context.Context, name string)
}

type diskPhotoStore struct {
	dir string
}

// NewDiskPhotoStore creates dir if needed and stores photos inside it.
func NewDiskPhotoStore(dir string) (PhotoStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve upload dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &diskPhotoStore{dir: abs}, nil
}

func (s *diskPhotoStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	name := sanitize.Name(filepath.Base(filename))
	if name == "" || name == "." || strings.HasPrefix(name, ".") {
		name = "photo" + name
	}

	f, name, err := s.create(name)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(filepath.Join(s.dir, name))
		return "", fmt.Errorf("failed to write photo: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(filepath.Join(s.dir, name))
		return "", fmt.Errorf("failed to write photo: %w", err)
	}

	slog.DebugContext(ctx, "Photo saved", "name", name)
	return name, nil
}

// create opens name exclusively, falling back to a uuid-prefixed name when it
// is already taken.
func (s *diskPhotoStore) create(name string) (*os.File, string, error) {
	for attempt := 0; attempt < 3; attempt++ {
		path, err := s.path(name)
		if err != nil {
			return nil, "", err
		}
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, name, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", fmt.Errorf("failed to create photo file: %w", err)
		}
		name = uuid.New().String() + "-" + strings.TrimLeft(stripPrefix(name), "-")
	}
	return nil, "", fmt.Errorf("failed to find a free name for photo %q", name)
}

func (s *diskPhotoStore) Remove(ctx context.Context, name string) {
	path, err := s.path(name)
	if err != nil {
		slog.WarnContext(ctx, "Refusing to remove photo", "name", name, "error", err)
		return
	}
	if err := os.Remove(path); err != nil {
		slog.WarnContext(ctx, "Failed to remove photo", "name", name, "error", err)
	}
}

// path confines name to the upload directory.
func (s *diskPhotoStore) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", ErrInvalidName
	}
	path := filepath.Join(s.dir, name)
	if filepath.Dir(path) != s.dir {
		return "", ErrInvalidName
	}
	return path, nil
}

// stripPrefix drops a uuid prefix added by an earlier collision.
func stripPrefix(name string) string {
	if len(name) > 37 && name[36] == '-' {
		if _, err := uuid.Parse(name[:36]); err == nil {
			return name[37:]
		}
	}
	return name
}
