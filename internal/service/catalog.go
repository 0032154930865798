package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"engine_rul/internal/apperr"
	"engine_rul/internal/models"
	"engine_rul/internal/repository"
)

// chart file types shown in the catalog
var catalogExtensions = map[string]bool{
	".html": true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

type CatalogService struct {
	artifacts repository.ArtifactRepo
}

func NewCatalogService(artifacts repository.ArtifactRepo) *CatalogService {
	return &CatalogService{artifacts: artifacts}
}

// List returns every stored chart with a known extension. Type is the
// extension without the dot.
func (s *CatalogService) List(ctx context.Context) ([]models.ChartInfo, error) {
	names, err := s.artifacts.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.ChartInfo, 0, len(names))
	for _, n := range names {
		ext := filepath.Ext(n)
		if !catalogExtensions[ext] {
			continue
		}
		out = append(out, models.ChartInfo{
			Name: n,
			Path: n,
			Type: strings.TrimPrefix(ext, "."),
		})
	}
	return out, nil
}

// Fetch returns the raw artifact bytes, or NotFound.
func (s *CatalogService) Fetch(ctx context.Context, name string) ([]byte, error) {
	b, err := s.artifacts.Get(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrArtifactNotFound) {
			return nil, apperr.NotFound(fmt.Sprintf("chart %q not found", name))
		}
		return nil, err
	}
	return b, nil
}
