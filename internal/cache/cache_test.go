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

func TestGetOrComputeCachesValue(t *testing.T) {
	c, err := NewLRU(8)
	require.NoError(t, err)

	calls := 0
	compute := func(ctx context.Context) (int, error) {
		calls++
		return calls * 10, nil
	}

	ctx := context.Background()
	v, err := Get(ctx, c, "k", compute)
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	v, err = Get(ctx, c, "k", compute)
	require.NoError(t, err)
	assert.Equal(t, 10, v, "second call must be answered from cache")
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, c.Len())
}

func TestErrorsAreNotCached(t *testing.T) {
	c, err := NewLRU(8)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = Get(ctx, c, "k", func(ctx context.Context) (string, error) {
		return "", errors.New("boom")
	})
	require.Error(t, err)
	assert.Equal(t, 0, c.Len())

	v, err := Get(ctx, c, "k", func(ctx context.Context) (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestEviction(t *testing.T) {
	c, err := NewLRU(2)
	require.NoError(t, err)

	ctx := context.Background()
	for _, key := range []string{"a", "b", "c"} {
		_, err := Get(ctx, c, key, func(ctx context.Context) (string, error) { return key, nil })
		require.NoError(t, err)
	}
	assert.Equal(t, 2, c.Len())
}

func TestConcurrentMissesComputeOnce(t *testing.T) {
	c, err := NewLRU(8)
	require.NoError(t, err)

	var calls int32
	release := make(chan struct{})
	compute := func(ctx context.Context) (int, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return 42, nil
	}

	var wg sync.WaitGroup
	results := make([]int, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := Get(context.Background(), c, "shared", compute)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, v := range results {
		assert.Equal(t, 42, v)
	}
}

func TestGetTypeMismatch(t *testing.T) {
	c, err := NewLRU(8)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = Get(ctx, c, "k", func(ctx context.Context) (int, error) { return 1, nil })
	require.NoError(t, err)

	_, err = Get(ctx, c, "k", func(ctx context.Context) (string, error) { return "x", nil })
	assert.Error(t, err)
}
