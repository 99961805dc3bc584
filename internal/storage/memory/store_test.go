package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/logofetch/logofetch/internal/logo"
)

func TestRecordFetchAndLatest(t *testing.T) {
	t.Parallel()

	s := New()
	base := time.Unix(1700000000, 0).UTC()

	require.NoError(t, s.RecordFetch(context.Background(), logo.FetchRecord{
		ID: "a", Company: "github", Domain: "github.com", Success: false, FetchedAt: base,
	}))
	require.NoError(t, s.RecordFetch(context.Background(), logo.FetchRecord{
		ID: "b", Company: "github", Domain: "github.com", Success: true, FetchedAt: base.Add(time.Minute),
	}))
	require.Equal(t, 2, s.Len())

	rec, err := s.LatestFetch(context.Background(), "github")
	require.NoError(t, err)
	require.Equal(t, "b", rec.ID)
	require.True(t, rec.Success)
}

func TestRecordFetchRequiresID(t *testing.T) {
	t.Parallel()

	s := New()
	err := s.RecordFetch(context.Background(), logo.FetchRecord{Company: "github"})
	require.ErrorContains(t, err, "record id is required")
	require.Equal(t, 0, s.Len())
}

func TestLatestFetchUnknownCompany(t *testing.T) {
	t.Parallel()

	s := New()
	_, err := s.LatestFetch(context.Background(), "nobody")
	require.ErrorContains(t, err, "no fetch recorded")
}

func TestConcurrentRecordFetch(t *testing.T) {
	t.Parallel()

	s := New()
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.RecordFetch(context.Background(), logo.FetchRecord{
				ID:      fmt.Sprintf("id-%d", i),
				Company: fmt.Sprintf("company-%d", i%5),
			})
		}()
	}
	wg.Wait()
	require.Equal(t, 20, s.Len())

	for i := range 5 {
		_, err := s.LatestFetch(context.Background(), fmt.Sprintf("company-%d", i))
		require.NoError(t, err)
	}
}
