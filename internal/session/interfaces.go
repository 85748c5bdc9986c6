package session

import (
	"context"
	"errors"
	"time"

	"github.com/kurochkinivan/tango_form/internal/form"
)

var ErrNotFound = errors.New("session not found")

type SnapshotStore interface {
	Load(ctx context.Context, id string) (*form.State, error)
	Save(ctx context.Context, id string, state form.State, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}
