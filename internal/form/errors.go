package form

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
)

var (
	ErrNotImage       = errors.New("file is not an image")
	ErrTooLarge       = errors.New("file exceeds size limit")
	ErrRead           = errors.New("failed to read file")
	ErrNoImage        = errors.New("no image selected")
	ErrSubmitDisabled = errors.New("submit is disabled")
)

// User-visible messages.
const (
	msgInvalidFile  = "Select a valid image file."
	msgReadFailed   = "There was a problem reading the file. Please try again."
	msgNoImage      = "Select an image before sending."
	msgSending      = "Sending image to /tango..."
	msgSent         = "Image sent to /tango successfully."
	msgUnknownError = "Unknown error."
	msgSendFailed   = "An error occurred while sending."
	msgFormats      = "Supported formats: PNG, JPG, GIF or WEBP."
)

var (
	msgSizeLimit = fmt.Sprintf("The file exceeds the %s limit.", humanize.IBytes(MaxFileSize))
	msgTooLarge  = fmt.Sprintf("The file is too large. Maximum %s.", humanize.IBytes(MaxFileSize))
)
