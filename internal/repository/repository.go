package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// ErrArtifactNotFound is returned by Get for unknown or invalid names.
var ErrArtifactNotFound = errors.New("artifact not found")

// ArtifactRepo is a flat blob store of rendered charts keyed by filename.
// Put overwrites an existing artifact of the same name.
type ArtifactRepo interface {
	Put(ctx context.Context, name string, data []byte) error
	Get(ctx context.Context, name string) ([]byte, error)
	List(ctx context.Context) ([]string, error)
}

type Repository struct {
	Artifacts ArtifactRepo
}

// NewSQLiteRepository stores artifacts in the chart_artifacts table.
func NewSQLiteRepository(db *sql.DB) *Repository {
	return &Repository{Artifacts: NewArtifactSQLite(db)}
}

// NewDirRepository stores artifacts as files under dir.
func NewDirRepository(dir string) (*Repository, error) {
	a, err := NewArtifactDir(dir)
	if err != nil {
		return nil, err
	}
	return &Repository{Artifacts: a}, nil
}

// validName rejects anything that is not a plain filename.
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && !strings.Contains(name, "\x00")
}
