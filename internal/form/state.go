package form

import "github.com/kurochkinivan/tango_form/internal/domain"

// State is a copy of everything the form holds.
type State struct {
	Image          string        `json:"image"`
	MIMEType       string        `json:"mime_type"`
	FileName       string        `json:"file_name"`
	UserID         string        `json:"user_id"`
	ConversationID string        `json:"conversation_id"`
	Status         domain.Status `json:"status"`
	StatusMessage  string        `json:"status_message"`
	Error          string        `json:"error"`
	FileTooLarge   bool          `json:"file_too_large"`
}

func (s State) HasImage() bool {
	return s.Image != "" && s.MIMEType != ""
}

// Preview is a data URL of the staged image, empty when there is none.
func (s State) Preview() string {
	if !s.HasImage() {
		return ""
	}

	return "data:" + s.MIMEType + ";base64," + s.Image
}

func (s State) CanSubmit() bool {
	return s.Status != domain.StatusLoading && s.Image != "" && !s.FileTooLarge
}

func (s State) ShowReset() bool {
	return s.HasImage() || s.UserID != "" || s.ConversationID != ""
}

func (s State) HelperText() string {
	if s.FileTooLarge {
		return msgTooLarge
	}

	return msgFormats
}

// StatusText is the text of the status box, shown only when the status is
// not idle and there is no error.
func (s State) StatusText() string {
	if s.StatusMessage == "" && s.Status == domain.StatusError {
		return msgSendFailed
	}

	return s.StatusMessage
}

func (s State) ShowStatus() bool {
	return s.Status != "" && s.Status != domain.StatusIdle && s.Error == ""
}
