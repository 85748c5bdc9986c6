package form

import (
	"context"

	"github.com/kurochkinivan/tango_form/internal/domain"
)

type Sender interface {
	Send(ctx context.Context, payload *domain.Payload) error
}
