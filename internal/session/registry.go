package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/kurochkinivan/tango_form/internal/config"
	"github.com/kurochkinivan/tango_form/internal/form"
)

type FormFactory func() *form.ImageMessageForm

// Registry keeps one form per browser session. Forms live in memory; when a
// SnapshotStore is set their state is also saved there so a session outlives
// a restart of the process.
type Registry struct {
	log           *slog.Logger
	newForm       FormFactory
	store         SnapshotStore
	ttl           time.Duration
	sweepInterval time.Duration

	mu       sync.Mutex
	sessions map[string]*entry
}

type entry struct {
	form     *form.ImageMessageForm
	lastSeen time.Time
}

// NewRegistry creates a registry. store may be nil.
func NewRegistry(log *slog.Logger, cfg config.Session, newForm FormFactory, store SnapshotStore) *Registry {
	return &Registry{
		log:           log,
		newForm:       newForm,
		store:         store,
		ttl:           cfg.TTL,
		sweepInterval: cfg.SweepInterval,
		sessions:      make(map[string]*entry),
	}
}

func (r *Registry) Form(ctx context.Context, id string) (*form.ImageMessageForm, error) {
	if f, ok := r.touch(id); ok {
		return f, nil
	}

	f := r.newForm()

	if r.store != nil {
		state, err := r.store.Load(ctx, id)
		switch {
		case errors.Is(err, ErrNotFound):
		case err != nil:
			return nil, fmt.Errorf("failed to load session %q: %w", id, err)
		default:
			f.Restore(*state)
			r.log.DebugContext(ctx, "session restored from snapshot", slog.String("session_id", id))
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// another request may have created the session meanwhile
	if e, ok := r.sessions[id]; ok {
		e.lastSeen = time.Now()
		return e.form, nil
	}

	r.sessions[id] = &entry{form: f, lastSeen: time.Now()}

	return f, nil
}

func (r *Registry) touch(id string) (*form.ImageMessageForm, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = time.Now()

	return e.form, true
}

// Persist saves the session state to the snapshot store, if there is one.
func (r *Registry) Persist(ctx context.Context, id string) error {
	if r.store == nil {
		return nil
	}

	r.mu.Lock()
	e, ok := r.sessions[id]
	r.mu.Unlock()

	if !ok {
		return nil
	}

	if err := r.store.Save(ctx, id, e.form.State(), r.ttl); err != nil {
		return fmt.Errorf("failed to save session %q: %w", id, err)
	}

	return nil
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

// Run evicts idle sessions until ctx is done.
func (r *Registry) Run(ctx context.Context) error {
	if r.sweepInterval <= 0 {
		return fmt.Errorf("invalid sweep interval %s", r.sweepInterval)
	}

	ticker := time.NewTicker(r.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.sweep(ctx)

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (r *Registry) sweep(ctx context.Context) {
	expired := r.evictExpired(time.Now())
	if len(expired) == 0 {
		return
	}

	r.log.DebugContext(ctx, "evicted idle sessions", slog.Int("count", len(expired)))

	if r.store == nil {
		return
	}

	for _, id := range expired {
		if err := r.store.Delete(ctx, id); err != nil {
			r.log.ErrorContext(ctx, "failed to delete session snapshot",
				slog.String("session_id", id),
				slog.String("err", err.Error()),
			)
		}
	}
}

// evictExpired drops sessions idle for longer than the ttl. Sessions with a
// request in flight are kept.
func (r *Registry) evictExpired(now time.Time) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var expired []string
	for id, e := range r.sessions {
		if now.Sub(e.lastSeen) <= r.ttl {
			continue
		}

		if e.form.InFlight() {
			continue
		}

		delete(r.sessions, id)
		expired = append(expired, id)
	}

	return expired
}
