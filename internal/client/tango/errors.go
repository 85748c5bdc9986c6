package tango

const msgServerError = "The server responded with an error."

// StatusError is returned for non-2xx responses. Its message is the response
// body as sent by the endpoint.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return msgServerError
	}

	return e.Body
}
