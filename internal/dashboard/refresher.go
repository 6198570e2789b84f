package dashboard

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/zaqqye/restroom_monitor/internal/models"
	"github.com/zaqqye/restroom_monitor/internal/ws"
)

// RoomLister is the read half of the rooms API.
type RoomLister interface {
	ListRooms(ctx context.Context) ([]models.Room, error)
}

type RefreshState int

const (
	Idle RefreshState = iota
	Refreshing
)

func (s RefreshState) String() string {
	if s == Refreshing {
		return "refreshing"
	}
	return "idle"
}

// Refresher refetches every room on demand and republishes the View.
//
// Fetches may overlap. Completions are applied one at a time, each replacing
// the cache and rendering under one lock, so the last completion wins even if
// it was started earlier than one already applied.
type Refresher struct {
	api      RoomLister
	cache    *Cache
	onRender func(View)
	logger   *zap.Logger

	mu       sync.Mutex
	applied  uint64
	seq      atomic.Uint64
	inFlight atomic.Int32
}

// NewRefresher wires api to cache. onRender may be nil.
func NewRefresher(api RoomLister, cache *Cache, onRender func(View), logger *zap.Logger) *Refresher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Refresher{api: api, cache: cache, onRender: onRender, logger: logger}
}

func (r *Refresher) State() RefreshState {
	if r.inFlight.Load() > 0 {
		return Refreshing
	}
	return Idle
}

// Refresh fetches all rooms and, on success, replaces the cache and renders.
// On failure the previous snapshot stays in place and the error is returned
// for the caller to log; nothing is shown to the user.
func (r *Refresher) Refresh(ctx context.Context) error {
	n := r.seq.Add(1)
	r.inFlight.Add(1)
	defer r.inFlight.Add(-1)

	rooms, err := r.api.ListRooms(ctx)
	if err != nil {
		r.logger.Warn("refresh failed, keeping last snapshot", zap.Uint64("seq", n), zap.Error(err))
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// TODO: decide whether stale completions should be dropped instead of applied.
	if n < r.applied {
		r.logger.Warn("applying refresh older than the current snapshot",
			zap.Uint64("seq", n), zap.Uint64("current", r.applied))
	}
	r.applied = n
	r.cache.replace(rooms)
	if r.onRender != nil {
		r.onRender(Render(r.cache.Snapshot()))
	}
	return nil
}

// Handle reacts to a push notification. Both known kinds trigger a full
// refresh; payloads are not inspected.
func (r *Refresher) Handle(ctx context.Context, ev ws.Event) {
	switch ev.Kind {
	case ws.EventRoomUpdate, ws.EventSupplyUpdate:
		r.logger.Debug("push event", zap.Stringer("kind", ev.Kind))
		_ = r.Refresh(ctx)
	default:
		r.logger.Debug("ignoring push event", zap.String("name", ev.Name))
	}
}
