package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

const tmpSuffix = ".tmp"

// ArtifactDir keeps each artifact as a file in one directory.
type ArtifactDir struct {
	dir string
}

// NewArtifactDir creates dir if needed.
func NewArtifactDir(dir string) (*ArtifactDir, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create chart dir %q: %w", dir, err)
	}
	return &ArtifactDir{dir: dir}, nil
}

// Put writes to a temp file and renames it over the target, so readers
// never see a partial chart and concurrent writers resolve last-writer-wins.
func (r *ArtifactDir) Put(ctx context.Context, name string, data []byte) error {
	if !validName(name) {
		return fmt.Errorf("invalid artifact name %q", name)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	target := filepath.Join(r.dir, name)
	tmp := filepath.Join(r.dir, "."+name+"."+uuid.NewString()+tmpSuffix)

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write artifact %q: %w", name, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace artifact %q: %w", name, err)
	}
	return nil
}

func (r *ArtifactDir) Get(ctx context.Context, name string) ([]byte, error) {
	if !validName(name) {
		return nil, ErrArtifactNotFound
	}
	b, err := os.ReadFile(filepath.Join(r.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrArtifactNotFound
		}
		return nil, fmt.Errorf("read artifact %q: %w", name, err)
	}
	return b, nil
}

// List returns regular files in the directory, sorted by name, skipping
// in-flight temp files.
func (r *ArtifactDir) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("list chart dir %q: %w", r.dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasSuffix(e.Name(), tmpSuffix) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
