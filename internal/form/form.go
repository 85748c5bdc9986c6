package form

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/kurochkinivan/tango_form/internal/domain"
)

const MaxFileSize = 6 * 1024 * 1024

type ImageMessageForm struct {
	log    *slog.Logger
	sender Sender

	mu    sync.Mutex
	state State
	// generation changes whenever the staged image or status is replaced, so
	// results of work started before that are dropped.
	generation uint64
	inFlight   bool
}

func New(log *slog.Logger, sender Sender) *ImageMessageForm {
	return &ImageMessageForm{
		log:    log,
		sender: sender,
		state:  initialState(),
	}
}

func initialState() State {
	return State{Status: domain.StatusIdle}
}

func (f *ImageMessageForm) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state
}

// Restore replaces the form state. A restored loading status is reset to
// idle since no request can be in flight for it.
func (f *ImageMessageForm) Restore(state State) {
	if state.Status == "" || state.Status == domain.StatusLoading {
		state.Status = domain.StatusIdle
		state.StatusMessage = ""
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.state = state
	f.generation++
}

// InFlight reports whether a submission is waiting for the endpoint.
func (f *ImageMessageForm) InFlight() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.inFlight
}

func (f *ImageMessageForm) SetIdentifiers(userID, conversationID string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.UserID = userID
	f.state.ConversationID = conversationID
}

// SelectFile validates and stages file. A nil file clears the staged image.
// Validation and read failures are recorded in the state and also returned.
func (f *ImageMessageForm) SelectFile(ctx context.Context, file *domain.File) error {
	f.mu.Lock()
	f.generation++
	generation := f.generation

	f.state.Error = ""
	f.state.Status = domain.StatusIdle
	f.state.StatusMessage = ""
	f.state.FileTooLarge = false

	if file == nil {
		f.clearImage()
		f.mu.Unlock()
		return nil
	}

	if err := f.validate(file); err != nil {
		f.mu.Unlock()
		return err
	}
	f.mu.Unlock()

	data, err := readContent(ctx, file.Content)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.generation != generation {
		f.log.DebugContext(ctx, "file selection superseded", slog.String("file_name", file.Name))
		return nil
	}

	switch {
	case err != nil:
		f.state.Error = msgReadFailed
		return fmt.Errorf("%w %q: %w", ErrRead, file.Name, err)
	case len(data) > MaxFileSize:
		f.rejectTooLarge()
		return fmt.Errorf("%w: %q has more than %d bytes", ErrTooLarge, file.Name, MaxFileSize)
	}

	encoded := base64.StdEncoding.EncodeToString(data)

	f.state.Image = encoded
	f.state.MIMEType = file.MIMEType
	f.state.FileName = file.Name

	f.log.DebugContext(ctx, "image staged",
		slog.String("file_name", file.Name),
		slog.String("mime_type", file.MIMEType),
		slog.Int("size", len(data)),
	)

	return nil
}

// FlagTooLarge marks the form as holding an oversized file without looking at
// it, for uploads rejected before they could be read.
func (f *ImageMessageForm) FlagTooLarge() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.generation++
	f.state.Status = domain.StatusIdle
	f.state.StatusMessage = ""
	f.rejectTooLarge()
}

func (f *ImageMessageForm) validate(file *domain.File) error {
	tooLarge := file.Size > MaxFileSize

	if !file.IsImage() {
		f.state.Error = msgInvalidFile
		f.state.FileTooLarge = tooLarge
		return fmt.Errorf("%w: %q has type %q", ErrNotImage, file.Name, file.MIMEType)
	}

	if tooLarge {
		f.rejectTooLarge()
		return fmt.Errorf("%w: %q has %d bytes", ErrTooLarge, file.Name, file.Size)
	}

	return nil
}

func (f *ImageMessageForm) rejectTooLarge() {
	f.state.FileTooLarge = true
	f.state.Error = msgSizeLimit
}

func (f *ImageMessageForm) clearImage() {
	f.state.Image = ""
	f.state.MIMEType = ""
	f.state.FileName = ""
}

// Submit sends the staged image to the endpoint. The state lock is not held
// during the request, so readers observe the loading status meanwhile. Only
// one submission runs at a time; its result is dropped if the form was reset
// or given another file before the endpoint answered.
func (f *ImageMessageForm) Submit(ctx context.Context) error {
	f.mu.Lock()

	if f.inFlight {
		f.mu.Unlock()
		return ErrSubmitDisabled
	}

	if !f.state.HasImage() {
		f.state.Error = msgNoImage
		f.mu.Unlock()
		return ErrNoImage
	}

	if !f.state.CanSubmit() {
		f.mu.Unlock()
		return ErrSubmitDisabled
	}

	f.inFlight = true
	generation := f.generation

	f.state.Status = domain.StatusLoading
	f.state.Error = ""
	f.state.StatusMessage = msgSending

	payload := domain.NewPayload(f.state.Image, f.state.MIMEType, f.state.UserID, f.state.ConversationID)
	f.mu.Unlock()

	err := f.sender.Send(ctx, payload)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.inFlight = false

	if f.generation != generation {
		f.log.DebugContext(ctx, "submission result dropped, form changed meanwhile", slog.Bool("failed", err != nil))

		if err != nil {
			return fmt.Errorf("failed to send image: %w", err)
		}
		return nil
	}

	if err != nil {
		reason := err.Error()
		if reason == "" {
			reason = msgUnknownError
		}

		f.state.Status = domain.StatusError
		f.state.StatusMessage = ""
		f.state.Error = reason

		return fmt.Errorf("failed to send image: %w", err)
	}

	f.state.Status = domain.StatusSuccess
	f.state.StatusMessage = msgSent

	return nil
}

func (f *ImageMessageForm) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state = initialState()
	f.generation++
}

// readContent reads at most one byte past MaxFileSize so that oversized
// content is detectable without buffering all of it.
func readContent(ctx context.Context, r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, errors.New("no content")
	}

	type result struct {
		data []byte
		err  error
	}

	done := make(chan result, 1)
	go func() {
		data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
		done <- result{data: data, err: err}
	}()

	select {
	case res := <-done:
		return res.data, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
