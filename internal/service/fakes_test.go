package service

import (
	"context"
	"sort"
	"sync"

	"engine_rul/internal/models"
	"engine_rul/internal/repository"
)

type memArtifacts struct {
	mu      sync.Mutex
	data    map[string][]byte
	puts    []string
	putErr  error
	listErr error
}

func newMemArtifacts() *memArtifacts {
	return &memArtifacts{data: map[string][]byte{}}
}

func (m *memArtifacts) Put(ctx context.Context, name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.puts = append(m.puts, name)
	if m.putErr != nil {
		return m.putErr
	}
	m.data[name] = data
	return nil
}

func (m *memArtifacts) Get(ctx context.Context, name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.data[name]
	if !ok {
		return nil, repository.ErrArtifactNotFound
	}
	return b, nil
}

func (m *memArtifacts) List(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	names := make([]string, 0, len(m.data))
	for n := range m.data {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

type fakeModel struct {
	value float64
	err   error
	seen  []models.FeatureVector
}

func (f *fakeModel) Predict(features models.FeatureVector) (float64, error) {
	f.seen = append(f.seen, features)
	return f.value, f.err
}
