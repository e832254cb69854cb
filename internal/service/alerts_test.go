package service

import (
	"testing"
	"time"

	"github.com/Egor213/PgDash/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAlertTracker(t *testing.T) {
	base := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	row := domain.ActivityRow{"pid": int32(42), "backend_start": "2026-10-19 07:00:00 UTC"}

	t.Run("same execution is published once", func(t *testing.T) {
		tr := newAlertTracker()
		assert.True(t, tr.shouldPublish(1, row, 10, base))
		tr.markPublished(1, row, 10, base)

		assert.False(t, tr.shouldPublish(1, row, 15.5, base.Add(5*time.Second)))
	})

	t.Run("other server or backend is separate", func(t *testing.T) {
		tr := newAlertTracker()
		tr.markPublished(1, row, 10, base)

		assert.True(t, tr.shouldPublish(2, row, 10, base))
		other := domain.ActivityRow{"pid": int32(42), "backend_start": "2026-10-19 07:30:00 UTC"}
		assert.True(t, tr.shouldPublish(1, other, 10, base))
	})

	t.Run("restarted query is published again", func(t *testing.T) {
		tr := newAlertTracker()
		tr.markPublished(1, row, 100, base)

		assert.True(t, tr.shouldPublish(1, row, 6, base.Add(10*time.Second)))
	})

	t.Run("stale entries are pruned", func(t *testing.T) {
		tr := newAlertTracker()
		tr.markPublished(1, row, 10, base)

		tr.prune(base.Add(alertRetention / 2))
		assert.Len(t, tr.seen, 1)

		tr.prune(base.Add(alertRetention + time.Second))
		assert.Empty(t, tr.seen)
		assert.True(t, tr.shouldPublish(1, row, 10+alertRetention.Seconds()+1, base.Add(alertRetention+time.Second)))
	})

	t.Run("clock is injectable", func(t *testing.T) {
		tr := newAlertTracker()
		tr.clock = func() time.Time { return base }
		assert.Equal(t, base, tr.now())
	})
}
