package repository

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestArtifactDir_PutGetOverwrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "chart")
	repo, err := NewArtifactDir(dir)
	if err != nil {
		t.Fatalf("NewArtifactDir: %v", err)
	}

	if err := repo.Put(ctx(t), "engine_lifespan_distribution.html", []byte("v1")); err != nil {
		t.Fatalf("Put v1: %v", err)
	}
	if err := repo.Put(ctx(t), "engine_lifespan_distribution.html", []byte("v2")); err != nil {
		t.Fatalf("Put v2: %v", err)
	}

	got, err := repo.Get(ctx(t), "engine_lifespan_distribution.html")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "v2" {
		t.Fatalf("expected overwrite, got %q", got)
	}

	names, err := repo.List(ctx(t))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"engine_lifespan_distribution.html"}) {
		t.Fatalf("temp files leaked or overwrite duplicated: %v", names)
	}
}

func TestArtifactDir_ListSkipsDirsAndTemp(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewArtifactDir(dir)
	if err != nil {
		t.Fatalf("NewArtifactDir: %v", err)
	}
	_ = os.Mkdir(filepath.Join(dir, "sub"), 0o755)
	_ = os.WriteFile(filepath.Join(dir, ".b.html.123.tmp"), []byte("x"), 0o644)
	_ = os.WriteFile(filepath.Join(dir, "b.png"), []byte("x"), 0o644)
	_ = os.WriteFile(filepath.Join(dir, "a.html"), []byte("x"), 0o644)

	names, err := repo.List(ctx(t))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"a.html", "b.png"}) {
		t.Fatalf("unexpected names: %v", names)
	}
}

func TestArtifactDir_GetMissingAndTraversal(t *testing.T) {
	repo, err := NewArtifactDir(t.TempDir())
	if err != nil {
		t.Fatalf("NewArtifactDir: %v", err)
	}
	if _, err := repo.Get(ctx(t), "nope.html"); !errors.Is(err, ErrArtifactNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := repo.Get(ctx(t), ".."); !errors.Is(err, ErrArtifactNotFound) {
		t.Fatalf("expected not found for '..', got %v", err)
	}
	if err := repo.Put(ctx(t), "../x.html", []byte("x")); err == nil {
		t.Fatalf("expected invalid name error")
	}
}
