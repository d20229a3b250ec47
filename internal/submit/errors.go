package submit

import (
	"errors"
	"fmt"
)

// Kind classifies a failed submission. All kinds are shown to the user the
// same way; the kind only shapes the message text.
type Kind int

const (
	// KindBackendUnavailable means the availability probe got no response.
	KindBackendUnavailable Kind = iota + 1
	// KindServerRejected means the POST returned a non-2xx status.
	KindServerRejected
	// KindNetworkFailure means the POST failed at the transport level.
	KindNetworkFailure
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBackendUnavailable:
		return "BackendUnavailable"
	case KindServerRejected:
		return "ServerRejected"
	case KindNetworkFailure:
		return "NetworkFailure"
	default:
		return "Unknown"
	}
}

// Error is a failed submission.
type Error struct {
	Kind       Kind
	StatusCode int
	Status     string
	Body       string
	Err        error
}

// Error renders the human-readable message stored as the wizard's last error.
func (e *Error) Error() string {
	switch e.Kind {
	case KindBackendUnavailable:
		return "Backend server is not running. Please start the server and try again."
	case KindServerRejected:
		msg := fmt.Sprintf("Server error: %d %s", e.StatusCode, e.Status)
		if e.Body != "" {
			msg += " - " + e.Body
		}
		return msg
	case KindNetworkFailure:
		if e.Err != nil {
			return fmt.Sprintf("Network error while sending the form: %v", e.Err)
		}
		return "Network error while sending the form"
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "An unknown error occurred"
	}
}

// Unwrap exposes the transport error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Unavailable wraps a probe failure.
func Unavailable(err error) *Error {
	return &Error{Kind: KindBackendUnavailable, Err: err}
}

// Rejected builds an error from a non-2xx response.
func Rejected(resp Response) *Error {
	return &Error{
		Kind:       KindServerRejected,
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       resp.Body,
	}
}

// NetworkFailure wraps a transport error from the POST.
func NetworkFailure(err error) *Error {
	return &Error{Kind: KindNetworkFailure, Err: err}
}

// KindOf returns the kind of a submission error, or 0 if err is not one.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return 0
}

// Hint is the generic follow-up shown under every submission error.
func Hint(endpoint string) string {
	return fmt.Sprintf("Please ensure the backend server is running at %s", endpoint)
}
