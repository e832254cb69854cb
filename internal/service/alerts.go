package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/Egor213/PgDash/internal/domain"
)

const (
	// Two polls of one execution estimate its start within this window.
	alertStartTolerance = 2 * time.Second
	// A session not seen in an alert state for this long is forgotten.
	alertRetention = 10 * time.Minute
)

type alertKey struct {
	sid          int
	pid          string
	backendStart string
}

type alertState struct {
	queryStart time.Time
	lastSeen   time.Time
}

// alertTracker remembers which query executions were already published so
// that repeated activity polls emit one alert per execution. An execution is
// identified by server, backend pid, backend start and the query start
// estimated from active_since.
type alertTracker struct {
	mu    sync.Mutex
	seen  map[alertKey]alertState
	clock func() time.Time
}

func newAlertTracker() *alertTracker {
	return &alertTracker{
		seen:  make(map[alertKey]alertState),
		clock: time.Now,
	}
}

func (t *alertTracker) now() time.Time {
	return t.clock()
}

func keyFor(sid int, row domain.ActivityRow) alertKey {
	k := alertKey{sid: sid, pid: fmt.Sprint(row["pid"])}
	if bs, ok := row["backend_start"]; ok && bs != nil {
		k.backendStart = fmt.Sprint(bs)
	}
	return k
}

// shouldPublish reports whether the execution in row has not been alerted
// yet. It does not record anything; call markPublished once the alert is out.
func (t *alertTracker) shouldPublish(sid int, row domain.ActivityRow, activeSince float64, now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	k := keyFor(sid, row)
	prev, ok := t.seen[k]
	if !ok {
		return true
	}
	start := queryStart(now, activeSince)
	if absDuration(prev.queryStart.Sub(start)) > alertStartTolerance {
		return true
	}
	prev.lastSeen = now
	t.seen[k] = prev
	return false
}

func (t *alertTracker) markPublished(sid int, row domain.ActivityRow, activeSince float64, now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.seen[keyFor(sid, row)] = alertState{queryStart: queryStart(now, activeSince), lastSeen: now}
}

func (t *alertTracker) prune(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for k, st := range t.seen {
		if now.Sub(st.lastSeen) > alertRetention {
			delete(t.seen, k)
		}
	}
}

func queryStart(now time.Time, activeSince float64) time.Time {
	return now.Add(-time.Duration(activeSince * float64(time.Second)))
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
