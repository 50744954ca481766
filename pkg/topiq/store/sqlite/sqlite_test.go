package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/trendlens/topiq/pkg/topiq/freq"
	"github.com/trendlens/topiq/pkg/topiq/store"
)

func openTestStore(t *testing.T) store.Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndGetRun(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	run := store.Run{
		ID:        "01HZX",
		Source:    "tech-feeds",
		Documents: 42,
		Topics:    []string{"반도체", "인공지능 기술"},
		Keywords:  []freq.Keyword{{Keyword: "반도체", Count: 9, POS: "Noun"}},
		Fallback:  true,
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.SaveRun(ctx, run))

	got, found, err := s.GetRun(ctx, "01HZX")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, run.Topics, got.Topics)
	require.Equal(t, run.Keywords, got.Keywords)
	require.True(t, got.Fallback)
	require.True(t, got.CreatedAt.Equal(run.CreatedAt))
}

func TestGetRunMissing(t *testing.T) {
	s := openTestStore(t)

	_, found, err := s.GetRun(context.Background(), "absent")
	require.NoError(t, err)
	require.False(t, found)
}

func TestSaveRunUpsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := store.Run{ID: "01A", Source: "news", Topics: []string{"수출"}}
	require.NoError(t, s.SaveRun(ctx, first))

	second := first
	second.Topics = []string{"수출", "증가"}
	second.Documents = 7
	require.NoError(t, s.SaveRun(ctx, second))

	runs, err := s.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Equal(t, []string{"수출", "증가"}, runs[0].Topics)
	require.Equal(t, 7, runs[0].Documents)
}

func TestListRunsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"01A", "01B", "01C"} {
		run := store.Run{
			ID:        id,
			Source:    "news",
			Topics:    []string{"반도체"},
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, s.SaveRun(ctx, run))
	}

	runs, err := s.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	require.Equal(t, "01C", runs[0].ID)
	require.Equal(t, "01B", runs[1].ID)
}

func TestSaveRunIgnoresEmptyID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveRun(ctx, store.Run{}))
	runs, err := s.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, runs)
}

func TestNilKeywordsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveRun(ctx, store.Run{ID: "01A", Topics: []string{"수출"}}))
	got, found, err := s.GetRun(ctx, "01A")
	require.NoError(t, err)
	require.True(t, found)
	require.NotNil(t, got.Keywords)
	require.Empty(t, got.Keywords)
}
