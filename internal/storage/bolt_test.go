package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager-cli/internal/models"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestTokenRoundTrip(t *testing.T) {
	s, _ := openTemp(t)

	token, err := s.Token()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, s.Save("tok-123"))
	token, err = s.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)

	require.NoError(t, s.Clear())
	token, err = s.Token()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestTaskSnapshotRoundTrip(t *testing.T) {
	s, _ := openTemp(t)

	_, ok, err := s.CachedTasks()
	require.NoError(t, err)
	assert.False(t, ok)

	tasks := []models.Task{
		{ID: 1, UserID: 1, Title: "First", CreatedAt: "2025-10-01T09:00:00", Priority: models.PriorityHigh},
		{ID: 2, UserID: 1, Title: "Second", IsCompleted: true, CreatedAt: "2025-10-02T09:00:00"},
	}
	require.NoError(t, s.SaveTasks(tasks))

	got, ok, err := s.CachedTasks()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, tasks, got)
}

func TestStatsSnapshotRoundTrip(t *testing.T) {
	s, _ := openTemp(t)

	_, ok, err := s.CachedStats()
	require.NoError(t, err)
	assert.False(t, ok)

	stats := models.TaskStats{TotalTasks: 10, CompletedTasks: 4, PendingTasks: 6, CompletionRate: 40}
	require.NoError(t, s.SaveStats(stats))

	got, ok, err := s.CachedStats()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, stats, got)
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Save("tok-123"))
	require.NoError(t, s.SaveTasks([]models.Task{{ID: 1, Title: "Survives"}}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	token, err := s.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)

	tasks, ok, err := s.CachedTasks()
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Survives", tasks[0].Title)
}

func TestSaveTasksReplacesSnapshot(t *testing.T) {
	s, _ := openTemp(t)

	require.NoError(t, s.SaveTasks([]models.Task{{ID: 1}, {ID: 2}}))
	require.NoError(t, s.SaveTasks([]models.Task{{ID: 3}}))

	got, ok, err := s.CachedTasks()
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ID)
}
