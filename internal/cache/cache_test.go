package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchCachesWithinTTL(t *testing.T) {
	s := New(5 * time.Minute)
	calls := 0

	fetch := func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	v1, err := Fetch(context.Background(), s, KeyCategoriesAll, fetch)
	require.NoError(t, err)
	v2, err := Fetch(context.Background(), s, KeyCategoriesAll, fetch)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, v1)
	assert.Equal(t, v1, v2)
	assert.Equal(t, 1, calls, "second read must come from cache")
}

func TestFetchRefetchesAfterTTL(t *testing.T) {
	s := New(5 * time.Minute)
	current := time.Now()
	s.now = func() time.Time { return current }

	calls := 0
	fetch := func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	}

	v, err := Fetch(context.Background(), s, KeySettingsAll, fetch)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	current = current.Add(5*time.Minute + time.Second)

	v, err = Fetch(context.Background(), s, KeySettingsAll, fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestSetTTLOverridesDefault(t *testing.T) {
	s := New(time.Minute)
	s.SetTTL(KeySettingsAll, 10*time.Minute)

	current := time.Now()
	s.now = func() time.Time { return current }

	calls := 0
	fetch := func(ctx context.Context) (string, error) {
		calls++
		return "v", nil
	}

	_, err := Fetch(context.Background(), s, KeySettingsAll, fetch)
	require.NoError(t, err)

	// Past the default TTL but inside the per-key override.
	current = current.Add(5 * time.Minute)

	_, err = Fetch(context.Background(), s, KeySettingsAll, fetch)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestInvalidateForcesRefetch(t *testing.T) {
	s := New(time.Hour)
	calls := 0
	fetch := func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	}

	_, err := Fetch(context.Background(), s, KeyPortfoliosPublished, fetch)
	require.NoError(t, err)

	s.Invalidate(PortfolioKeys()...)

	v, err := Fetch(context.Background(), s, KeyPortfoliosPublished, fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestConcurrentReadsShareOneFetch(t *testing.T) {
	s := New(time.Hour)

	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})

	fetch := func(ctx context.Context) (string, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(started)
		}
		<-release
		return "shared", nil
	}

	const readers = 8
	var wg sync.WaitGroup
	results := make([]string, readers)
	errs := make([]error, readers)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = Fetch(context.Background(), s, KeyHeroSlidesActive, fetch)
		}(i)
	}

	<-started
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "concurrent reads must share one fetch")
	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, "shared", results[i])
	}
}

func TestStaleServedWhenRefreshFails(t *testing.T) {
	s := New(time.Minute)
	current := time.Now()
	s.now = func() time.Time { return current }

	calls := 0
	fetch := func(ctx context.Context) ([]int, error) {
		calls++
		if calls == 1 {
			return []int{1, 2, 3}, nil
		}
		return nil, errors.New("db gone")
	}

	v, err := Fetch(context.Background(), s, KeyAboutAll, fetch)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, v)

	current = current.Add(2 * time.Minute)

	v, err = Fetch(context.Background(), s, KeyAboutAll, fetch)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, v, "stale value must survive a failed refresh")
}

func TestErrorPropagatesWithoutStaleValue(t *testing.T) {
	s := New(time.Minute)
	wantErr := errors.New("db gone")

	_, err := Fetch(context.Background(), s, KeyAboutAll, func(ctx context.Context) ([]int, error) {
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestNilStoreFetchesDirectly(t *testing.T) {
	var s *Store

	v, err := Fetch(context.Background(), s, KeyCategoriesAll, func(ctx context.Context) (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	// Mutation-side calls must not panic either.
	s.Invalidate(KeyCategoriesAll)
	s.SetTTL(KeyCategoriesAll, time.Minute)
}
