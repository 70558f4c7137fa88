package menu

import (
	"errors"
	"fmt"
)

// Status is the negative result code a run ends with when nothing was
// selected. The values are stable and safe to use as exit codes.
type Status int

const (
	StatusCancelled      Status = -1
	StatusWindowTooSmall Status = -2
	StatusNotOnScreen    Status = -3
	StatusNoneEnabled    Status = -4
	StatusTooSmall       Status = -5

	// StatusMisconfigured means the caller left out a mandatory field.
	// It is never a user outcome.
	StatusMisconfigured Status = -6
)

// StatusError is a terminal, non-selection outcome of a run.
type StatusError struct {
	Status Status
	Reason string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("menu: %s", e.Reason)
}

// Sentinel errors for each status. Run and Start return these exact values.
var (
	// ErrCancelled is a normal outcome: the user pressed the cancel key.
	ErrCancelled = &StatusError{Status: StatusCancelled, Reason: "cancelled"}

	ErrWindowTooSmall = &StatusError{Status: StatusWindowTooSmall, Reason: "window too small to show a menu"}
	ErrNotOnScreen    = &StatusError{Status: StatusNotOnScreen, Reason: "top left corner is not on screen"}
	ErrNoneEnabled    = &StatusError{Status: StatusNoneEnabled, Reason: "no enabled items"}
	ErrTooSmall       = &StatusError{Status: StatusTooSmall, Reason: "menu too short to show any items"}
)

// Misuse errors. These are caller bugs, not menu outcomes, and carry
// StatusMisconfigured.
var (
	ErrNoDrawer = &StatusError{Status: StatusMisconfigured, Reason: "config has no drawer"}
	ErrNoReader = &StatusError{Status: StatusMisconfigured, Reason: "config has no reader"}
)

// Errors returned by Owned mutations.
var (
	ErrReleased   = errors.New("menu: ownership handle was released")
	ErrIndexRange = errors.New("menu: item index out of range")
)

// StatusOf returns the status carried by err, or 0 when err is nil or not
// a StatusError.
func StatusOf(err error) Status {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return 0
}

// IsCancelled reports whether err means the user backed out of the menu.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
