package postgres

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"

	errorsUtils "github.com/Egor213/PgDash/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const defaultDialTimeout = 5 * time.Second

var (
	ErrServerNotRegistered = errors.New("server is not registered")
	ErrRegistryClosed      = errors.New("server registry is closed")
)

// ServerInfo describes one monitored PostgreSQL server.
type ServerInfo struct {
	ID   int
	Name string
	URL  string
}

type connectFunc func(ctx context.Context, url string, opts ...Option) (*Postgres, error)

// Registry hands out a pool per monitored server. Pools are opened on first use
// so an unreachable server does not block startup. The registry lock is never
// held while dialing: concurrent callers for one server share a single dial,
// callers for other servers are not blocked by it.
type Registry struct {
	mu      sync.Mutex
	servers map[int]ServerInfo
	pools   map[int]*Postgres
	closed  bool

	opts        []Option
	connect     connectFunc
	dialTimeout time.Duration
	dials       singleflight.Group
}

func NewRegistry(servers []ServerInfo, opts ...Option) *Registry {
	r := &Registry{
		servers:     make(map[int]ServerInfo, len(servers)),
		pools:       make(map[int]*Postgres),
		opts:        opts,
		connect:     NewContext,
		dialTimeout: defaultDialTimeout,
	}
	for _, s := range servers {
		r.servers[s.ID] = s
	}
	return r
}

func (r *Registry) Info(sid int) (ServerInfo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.servers[sid]
	return s, ok
}

func (r *Registry) Servers() []ServerInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]ServerInfo, 0, len(r.servers))
	for _, s := range r.servers {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Get returns the pool of server sid, dialing it on first use. It returns as
// soon as ctx is done even if the dial is still running; the dial then
// finishes in the background and its pool is kept for the next caller.
func (r *Registry) Get(ctx context.Context, sid int) (*Postgres, error) {
	r.mu.Lock()
	pg, cached := r.pools[sid]
	info, registered := r.servers[sid]
	closed := r.closed
	r.mu.Unlock()

	switch {
	case closed:
		return nil, ErrRegistryClosed
	case cached:
		return pg, nil
	case !registered:
		return nil, ErrServerNotRegistered
	}

	if err := ctx.Err(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	ch := r.dials.DoChan(strconv.Itoa(sid), func() (any, error) {
		return r.dial(ctx, info)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, errorsUtils.WrapPathErr(res.Err)
		}
		return res.Val.(*Postgres), nil
	case <-ctx.Done():
		return nil, errorsUtils.WrapPathErr(ctx.Err())
	}
}

// dial connects outside the registry lock. The dial is bounded by
// dialTimeout rather than by the first caller's ctx, so one cancelled
// request does not fail the others waiting on the same server.
func (r *Registry) dial(ctx context.Context, info ServerInfo) (*Postgres, error) {
	r.mu.Lock()
	if pg, ok := r.pools[info.ID]; ok {
		r.mu.Unlock()
		return pg, nil
	}
	r.mu.Unlock()

	dialCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.dialTimeout)
	defer cancel()

	log.WithFields(log.Fields{"sid": info.ID, "server": info.Name}).Info("Connecting to monitored server")
	pg, err := r.connect(dialCtx, info.URL, r.opts...)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		pg.Close()
		return nil, ErrRegistryClosed
	}
	r.pools[info.ID] = pg
	return pg, nil
}

func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true
	for sid, pg := range r.pools {
		pg.Close()
		delete(r.pools, sid)
	}
}
