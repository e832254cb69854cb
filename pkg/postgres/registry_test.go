package postgres

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

func TestRegistry_Get(t *testing.T) {
	servers := []ServerInfo{
		{ID: 2, Name: "replica", URL: "postgres://replica/postgres"},
		{ID: 1, Name: "primary", URL: "postgres://primary/postgres"},
	}

	t.Run("unknown server", func(t *testing.T) {
		r := NewRegistry(servers)
		_, err := r.Get(context.Background(), 42)
		assert.ErrorIs(t, err, ErrServerNotRegistered)
	})

	t.Run("connects once and caches", func(t *testing.T) {
		r := NewRegistry(servers, MaxPoolSize(4))
		calls := 0
		r.connect = func(_ context.Context, url string, opts ...Option) (*Postgres, error) {
			calls++
			assert.Equal(t, "postgres://primary/postgres", url)
			assert.Len(t, opts, 1)
			return NewWithPool(nil), nil
		}

		first, err := r.Get(context.Background(), 1)
		require.NoError(t, err)
		second, err := r.Get(context.Background(), 1)
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, 1, calls)
	})

	t.Run("connection error is not cached", func(t *testing.T) {
		r := NewRegistry(servers)
		calls := 0
		r.connect = func(context.Context, string, ...Option) (*Postgres, error) {
			calls++
			return nil, errors.New("refused")
		}

		_, err := r.Get(context.Background(), 2)
		assert.Error(t, err)
		_, err = r.Get(context.Background(), 2)
		assert.Error(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("cancelled context", func(t *testing.T) {
		r := NewRegistry(servers)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := r.Get(ctx, 1)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("slow dial does not outlive the caller deadline", func(t *testing.T) {
		r := NewRegistry(servers)
		release := make(chan struct{})
		defer close(release)
		r.connect = func(ctx context.Context, url string, _ ...Option) (*Postgres, error) {
			if url == "postgres://replica/postgres" {
				select {
				case <-release:
				case <-ctx.Done():
					return nil, ctx.Err()
				}
			}
			return NewWithPool(nil), nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		start := time.Now()
		_, err := r.Get(ctx, 2)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), time.Second)

		primary, err := r.Get(context.Background(), 1)
		require.NoError(t, err)
		assert.NotNil(t, primary)
	})

	t.Run("other servers are served while one dials", func(t *testing.T) {
		r := NewRegistry(servers)
		dialing := make(chan struct{})
		release := make(chan struct{})
		r.connect = func(_ context.Context, url string, _ ...Option) (*Postgres, error) {
			if url == "postgres://replica/postgres" {
				close(dialing)
				<-release
			}
			return NewWithPool(nil), nil
		}

		done := make(chan error, 1)
		go func() {
			_, err := r.Get(context.Background(), 2)
			done <- err
		}()
		<-dialing

		_, err := r.Get(context.Background(), 1)
		require.NoError(t, err)
		_, ok := r.Info(2)
		assert.True(t, ok)

		close(release)
		assert.NoError(t, <-done)
	})

	t.Run("concurrent callers share one dial", func(t *testing.T) {
		r := NewRegistry(servers)
		var calls atomic.Int32
		release := make(chan struct{})
		r.connect = func(context.Context, string, ...Option) (*Postgres, error) {
			calls.Add(1)
			<-release
			return NewWithPool(nil), nil
		}

		const callers = 8
		var wg sync.WaitGroup
		got := make([]*Postgres, callers)
		for i := range callers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				pg, err := r.Get(context.Background(), 1)
				assert.NoError(t, err)
				got[i] = pg
			}()
		}
		time.Sleep(20 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, int32(1), calls.Load())
		for _, pg := range got {
			assert.Same(t, got[0], pg)
		}
	})

	t.Run("dial finished after caller gave up is kept", func(t *testing.T) {
		r := NewRegistry(servers)
		release := make(chan struct{})
		var calls atomic.Int32
		r.connect = func(context.Context, string, ...Option) (*Postgres, error) {
			calls.Add(1)
			<-release
			return NewWithPool(nil), nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := r.Get(ctx, 1)
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		close(release)
		pg, err := r.Get(context.Background(), 1)
		require.NoError(t, err)
		assert.NotNil(t, pg)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("closed registry", func(t *testing.T) {
		r := NewRegistry(servers)
		r.connect = func(context.Context, string, ...Option) (*Postgres, error) {
			return NewWithPool(nil), nil
		}
		r.Close()
		_, err := r.Get(context.Background(), 1)
		assert.ErrorIs(t, err, ErrRegistryClosed)
	})
}

func TestRegistry_Servers(t *testing.T) {
	r := NewRegistry([]ServerInfo{{ID: 3, Name: "c"}, {ID: 1, Name: "a"}, {ID: 2, Name: "b"}})

	got := r.Servers()
	require.Len(t, got, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{got[0].ID, got[1].ID, got[2].ID})

	info, ok := r.Info(2)
	assert.True(t, ok)
	assert.Equal(t, "b", info.Name)
}
