package v1

import (
	"context"

	"github.com/kurochkinivan/tango_form/internal/form"
)

type FormProvider interface {
	Form(ctx context.Context, sessionID string) (*form.ImageMessageForm, error)
	Persist(ctx context.Context, sessionID string) error
}
