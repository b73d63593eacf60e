package controller

import (
	"errors"
	"fmt"
)

var (
	// ErrBusy is returned when a mutation is requested while another is in flight.
	ErrBusy = errors.New("another change is still being saved")
	// ErrStale is returned when a newer load superseded this one; its result was discarded.
	ErrStale = errors.New("response superseded by a newer request")
)

// PreconditionError is a local failure: the operation needs selection state
// that is absent. No request is sent.
type PreconditionError struct {
	Op      string
	Missing string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Missing)
}

// Missing values used by the controller's own preconditions.
const (
	MissingGroup = "no group selected"
	MissingWeek  = "no week selected"
)

// ReloadError reports a write that reached the backend followed by a reload
// that failed. The data shown may be out of date but the write happened.
type ReloadError struct {
	Op  string
	Err error
}

func (e *ReloadError) Error() string {
	return fmt.Sprintf("%s: saved but reload failed: %v", e.Op, e.Err)
}

func (e *ReloadError) Unwrap() error { return e.Err }

// IsReloadAfterSave reports whether err is a ReloadError.
func IsReloadAfterSave(err error) bool {
	var re *ReloadError
	return errors.As(err, &re)
}

func IsPrecondition(err error) bool {
	var pe *PreconditionError
	return errors.As(err, &pe)
}

func noGroup(op string) error {
	return &PreconditionError{Op: op, Missing: MissingGroup}
}

func noWeek(op string) error {
	return &PreconditionError{Op: op, Missing: MissingWeek}
}
