package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/skapefps/unimap-api/internal/models"
	appErrors "github.com/skapefps/unimap-api/pkg/errors"
)

type mockDashboardRepo struct {
	stats *models.DashboardStats
	calls int
}

func (m *mockDashboardRepo) Stats(ctx context.Context) (*models.DashboardStats, error) {
	m.calls++
	copied := *m.stats
	return &copied, nil
}

type memoryCacheBackend struct {
	entries map[string][]byte
}

func (m *memoryCacheBackend) Get(ctx context.Context, key string, dest interface{}) error {
	raw, ok := m.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCacheBackend) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if m.entries == nil {
		m.entries = make(map[string][]byte)
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = raw
	return nil
}

func (m *memoryCacheBackend) Delete(ctx context.Context, key string) error {
	delete(m.entries, key)
	return nil
}

func TestDashboardServiceStats(t *testing.T) {
	repo := &mockDashboardRepo{stats: &models.DashboardStats{Cursos: 3, Salas: 12, Turmas: 8, Alunos: 240, Aulas: 96, MatriculasAtivas: 210}}
	svc := NewDashboardService(repo, nil, time.Minute, zap.NewNop())

	stats, cached, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 240, stats.Alunos)
	assert.False(t, stats.GeneratedAt.IsZero())
}

func TestDashboardServiceStatsCached(t *testing.T) {
	repo := &mockDashboardRepo{stats: &models.DashboardStats{Cursos: 1}}
	cache := NewCacheService(&memoryCacheBackend{}, nil, time.Minute, zap.NewNop(), true)
	svc := NewDashboardService(repo, cache, time.Minute, zap.NewNop())

	_, cached, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.False(t, cached)

	stats, cached, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, 1, stats.Cursos)
	assert.Equal(t, 1, repo.calls)
}

func TestDashboardServiceInvalidate(t *testing.T) {
	repo := &mockDashboardRepo{stats: &models.DashboardStats{Cursos: 1}}
	cache := NewCacheService(&memoryCacheBackend{}, nil, time.Minute, zap.NewNop(), true)
	svc := NewDashboardService(repo, cache, time.Minute, zap.NewNop())

	_, _, err := svc.Stats(context.Background())
	require.NoError(t, err)

	svc.Invalidate(context.Background())

	_, cached, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 2, repo.calls)
}
