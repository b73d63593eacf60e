package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/akyairhashvil/aulaplan/internal/models"
)

// ErrMalformedResponse is wrapped by a NetworkError when a 2xx body cannot be decoded.
var ErrMalformedResponse = errors.New("malformed response")

// NetworkError is a transport failure: timeout, refused connection, or an
// unusable success body.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("network error: %v", e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError is a non-success response without a usable error payload.
type ServerError struct {
	Status int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: %d %s", e.Status, http.StatusText(e.Status))
}

// ValidationError is a non-success response carrying {"error": "..."}.
type ValidationError struct {
	Status  int
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// OpError records which DataClient operation failed.
type OpError struct {
	Op       string
	Resource string
	ID       models.ID
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if !e.ID.IsZero() {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapWeekErr(op string, id models.ID, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "week", ID: id, Err: err}
}

func wrapGroupErr(op string, id models.ID, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "group", ID: id, Err: err}
}

func wrapExportErr(op string, id models.ID, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "export", ID: id, Err: err}
}

// IsNetwork reports whether err is a NetworkError.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsServer reports whether err is a ServerError.
func IsServer(err error) bool {
	var se *ServerError
	return errors.As(err, &se)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// UserMessage returns the text to show for err: the backend's own message for
// validation failures, otherwise fallback.
func UserMessage(err error, fallback string) string {
	var ve *ValidationError
	if errors.As(err, &ve) && ve.Message != "" {
		return ve.Message
	}
	return fallback
}
