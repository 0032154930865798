package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type ArtifactSQLite struct {
	db *sql.DB
}

func NewArtifactSQLite(db *sql.DB) *ArtifactSQLite { return &ArtifactSQLite{db: db} }

var _ ArtifactRepo = (*ArtifactSQLite)(nil)

const (
	upsertArtifactSQL = `
		INSERT INTO chart_artifacts (name, content, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET content = excluded.content, updated_at = excluded.updated_at
	`
	selectArtifactSQL = `SELECT content FROM chart_artifacts WHERE name = ?`
	listArtifactsSQL  = `SELECT name FROM chart_artifacts ORDER BY name ASC`
)

// Put upserts the artifact; the latest write wins.
func (r *ArtifactSQLite) Put(ctx context.Context, name string, data []byte) error {
	if !validName(name) {
		return fmt.Errorf("invalid artifact name %q", name)
	}
	_, err := r.db.ExecContext(ctx, upsertArtifactSQL,
		name,
		data,
		time.Now().UTC().Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return fmt.Errorf("upsert artifact %q: %w", name, err)
	}
	return nil
}

func (r *ArtifactSQLite) Get(ctx context.Context, name string) ([]byte, error) {
	if !validName(name) {
		return nil, ErrArtifactNotFound
	}
	var content []byte
	err := r.db.QueryRowContext(ctx, selectArtifactSQL, name).Scan(&content)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtifactNotFound
		}
		return nil, fmt.Errorf("select artifact %q: %w", name, err)
	}
	return content, nil
}

func (r *ArtifactSQLite) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, listArtifactsSQL)
	if err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0, 16)
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return names, nil
}
