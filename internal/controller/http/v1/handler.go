package v1

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kurochkinivan/tango_form/internal/domain"
	"github.com/kurochkinivan/tango_form/internal/form"
)

// multipartMemory is how much of an upload is kept in memory, the rest goes
// to temporary files.
const multipartMemory = 8 << 20

type FormHandler struct {
	log            *slog.Logger
	maxRequestSize int64
	forms          FormProvider
}

func NewFormHandler(log *slog.Logger, maxRequestSize int64, forms FormProvider) *FormHandler {
	return &FormHandler{
		log:            log,
		maxRequestSize: maxRequestSize,
		forms:          forms,
	}
}

type FormStateResponse struct {
	FileName       string        `json:"file_name"`
	MIMEType       string        `json:"mime_type"`
	HasImage       bool          `json:"has_image"`
	UserID         string        `json:"user_id"`
	ConversationID string        `json:"conversation_id"`
	Status         domain.Status `json:"status"`
	StatusMessage  string        `json:"status_message"`
	Error          string        `json:"error"`
	FileTooLarge   bool          `json:"file_too_large"`
	CanSubmit      bool          `json:"can_submit"`
	ShowReset      bool          `json:"show_reset"`
	HelperText     string        `json:"helper_text"`
}

func (h *FormHandler) Page(w http.ResponseWriter, r *http.Request) {
	f, ok := h.form(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := renderPage(w, f.State()); err != nil {
		h.log.ErrorContext(r.Context(), "failed to render page", slog.String("err", err.Error()))
	}
}

func (h *FormHandler) SelectImage(w http.ResponseWriter, r *http.Request) {
	f, ok := h.form(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)

	err := r.ParseMultipartForm(multipartMemory)

	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		h.log.InfoContext(r.Context(), "upload exceeds request limit", slog.Int64("limit", maxBytesErr.Limit))
		f.FlagTooLarge()
		h.finish(w, r)
		return
	case err != nil:
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	f.SetIdentifiers(r.FormValue("user_id"), r.FormValue("conversation_id"))

	file, header, err := r.FormFile("image")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		err = f.SelectFile(r.Context(), nil)
	case err != nil:
		http.Error(w, "invalid image part", http.StatusBadRequest)
		return
	default:
		defer file.Close()

		err = f.SelectFile(r.Context(), &domain.File{
			Name:     header.Filename,
			MIMEType: header.Header.Get("Content-Type"),
			Size:     header.Size,
			Content:  file,
		})
	}

	if err != nil {
		h.log.InfoContext(r.Context(), "image rejected", slog.String("err", err.Error()))
	}

	h.finish(w, r)
}

func (h *FormHandler) Submit(w http.ResponseWriter, r *http.Request) {
	f, ok := h.form(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	f.SetIdentifiers(r.PostFormValue("user_id"), r.PostFormValue("conversation_id"))

	// the request to /tango is not aborted when the browser goes away
	ctx := context.WithoutCancel(r.Context())

	if err := f.Submit(ctx); err != nil {
		h.log.InfoContext(ctx, "submission failed", slog.String("err", err.Error()))
	} else {
		h.log.InfoContext(ctx, "image submitted")
	}

	h.finish(w, r)
}

func (h *FormHandler) Reset(w http.ResponseWriter, r *http.Request) {
	f, ok := h.form(w, r)
	if !ok {
		return
	}

	f.Reset()

	h.finish(w, r)
}

func (h *FormHandler) State(w http.ResponseWriter, r *http.Request) {
	f, ok := h.form(w, r)
	if !ok {
		return
	}

	state := f.State()

	data, err := json.Marshal(FormStateResponse{
		FileName:       state.FileName,
		MIMEType:       state.MIMEType,
		HasImage:       state.HasImage(),
		UserID:         state.UserID,
		ConversationID: state.ConversationID,
		Status:         state.Status,
		StatusMessage:  state.StatusMessage,
		Error:          state.Error,
		FileTooLarge:   state.FileTooLarge,
		CanSubmit:      state.CanSubmit(),
		ShowReset:      state.ShowReset(),
		HelperText:     state.HelperText(),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (h *FormHandler) form(w http.ResponseWriter, r *http.Request) (*form.ImageMessageForm, bool) {
	f, err := h.forms.Form(r.Context(), sessionID(r.Context()))
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to get form", slog.String("err", err.Error()))
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return nil, false
	}

	return f, true
}

// finish saves the session and sends the browser back to the form page.
func (h *FormHandler) finish(w http.ResponseWriter, r *http.Request) {
	ctx := context.WithoutCancel(r.Context())

	if err := h.forms.Persist(ctx, sessionID(ctx)); err != nil {
		h.log.ErrorContext(ctx, "failed to persist session", slog.String("err", err.Error()))
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
