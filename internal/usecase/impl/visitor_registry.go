package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// visitorRegistry implements usecase.VisitorRegistry. Every visitor shares the
// same repositories, so state written by one Storefront is visible to the next
// one restored for the same visitor ID.
type visitorRegistry struct {
	deps       StoreDeps
	build      func(visitorID string, deps StoreDeps) usecase.Storefront
	logger     *slog.Logger
	idleTTL    time.Duration
	maxEntries int
	now        func() time.Time
	mu         sync.Mutex
	entries    map[string]*visitorEntry
}

// visitorEntry restores its Storefront once; concurrent first visits wait on ready.
type visitorEntry struct {
	ready      chan struct{}
	storefront usecase.Storefront
	err        error
	lastSeen   time.Time
}

func (e *visitorEntry) restored() bool {
	select {
	case <-e.ready:
		return true
	default:
		return false
	}
}

// VisitorRegistryParams holds the dependencies of NewVisitorRegistry.
type VisitorRegistryParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Deps      StoreDeps
}

// NewVisitorRegistry is the constructor for visitorRegistry. When an idle TTL
// is configured, idle visitors are swept while the application runs.
func NewVisitorRegistry(params VisitorRegistryParams) usecase.VisitorRegistry {
	cfg := params.Config.Visitors
	registry := newVisitorRegistry(params.Deps, cfg.IdleTTL, cfg.MaxEntries)

	if cfg.IdleTTL <= 0 || cfg.SweepInterval <= 0 {
		return registry
	}

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go registry.sweepEvery(sweepCtx, cfg.SweepInterval)

			return nil
		},
		OnStop: func(context.Context) error {
			stopSweep()

			return nil
		},
	})

	return registry
}

func newVisitorRegistry(deps StoreDeps, idleTTL time.Duration, maxEntries int) *visitorRegistry {
	return &visitorRegistry{
		deps:       deps,
		build:      NewStorefront,
		logger:     deps.Logger,
		idleTTL:    idleTTL,
		maxEntries: maxEntries,
		now:        time.Now,
		entries:    make(map[string]*visitorEntry),
	}
}

func (r *visitorRegistry) Visit(ctx context.Context, visitorID string) (usecase.Storefront, error) {
	if visitorID == "" {
		return nil, errors.New("visitor ID is required")
	}

	r.mu.Lock()
	entry, ok := r.entries[visitorID]
	if !ok {
		r.makeRoomLocked()
		entry = &visitorEntry{ready: make(chan struct{})}
		r.entries[visitorID] = entry
	}
	entry.lastSeen = r.now()
	r.mu.Unlock()

	if ok {
		select {
		case <-entry.ready:
			return entry.storefront, entry.err
		case <-ctx.Done():
			return nil, errors.WithStack(ctx.Err())
		}
	}

	sf := r.build(visitorID, r.deps)
	if err := sf.Restore(ctx); err != nil {
		entry.err = errors.Wrap(err, "failed to restore visitor state")

		r.mu.Lock()
		if r.entries[visitorID] == entry {
			delete(r.entries, visitorID)
		}
		r.mu.Unlock()
		close(entry.ready)

		return nil, entry.err
	}

	entry.storefront = sf
	close(entry.ready)

	requestLogger(ctx, r.logger).Debug("Visitor restored",
		slog.String("visitor_id", visitorID),
		slog.Bool("authenticated", sf.Auth().Session().Authenticated),
	)

	return sf, nil
}

func (r *visitorRegistry) Forget(visitorID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, visitorID)
}

func (r *visitorRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

// makeRoomLocked evicts the least recently seen restored visitors until a new
// entry fits under maxEntries. Callers hold r.mu.
func (r *visitorRegistry) makeRoomLocked() {
	if r.maxEntries <= 0 {
		return
	}

	for len(r.entries) >= r.maxEntries {
		var (
			oldestID   string
			oldestSeen time.Time
		)
		for id, entry := range r.entries {
			if !entry.restored() {
				continue
			}
			if oldestID == "" || entry.lastSeen.Before(oldestSeen) {
				oldestID = id
				oldestSeen = entry.lastSeen
			}
		}
		if oldestID == "" {
			// Only in-flight restores are left.
			return
		}

		delete(r.entries, oldestID)
		r.logger.Debug("Visitor evicted", slog.String("visitor_id", oldestID), slog.String("reason", "capacity"))
	}
}

// sweep forgets restored visitors idle for longer than idleTTL and reports how many were removed.
func (r *visitorRegistry) sweep(now time.Time) int {
	if r.idleTTL <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := now.Add(-r.idleTTL)
	evicted := 0
	for id, entry := range r.entries {
		if entry.restored() && entry.lastSeen.Before(cutoff) {
			delete(r.entries, id)
			evicted++
		}
	}

	return evicted
}

func (r *visitorRegistry) sweepEvery(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if evicted := r.sweep(r.now()); evicted > 0 {
				r.logger.Debug("Idle visitors evicted",
					slog.Int("evicted", evicted),
					slog.Int("remaining", r.Len()),
				)
			}
		}
	}
}
