package netsync

import (
	"errors"
	"fmt"
	"syscall"
)

// Place records which step of a network exchange failed.
type Place int

const (
	PlaceDial  Place = 1
	PlaceWrite Place = 2
	PlaceRead  Place = 3
)

var (
	ErrInvalidToken = errors.New("netsync: invalid token")
	ErrServer       = errors.New("netsync: internal server error")
	ErrNotConnected = errors.New("netsync: not connected")
)

// Error is a transport failure with a numeric code (the OS errno when one is
// available, -1 otherwise) and the place it happened.
type Error struct {
	Code  int
	Place Place
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("netsync: code %d at %d: %v", e.Code, e.Place, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrap(place Place, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Code: codeOf(err), Place: place, Err: err}
}

func codeOf(err error) int {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return -1
}

// Describe renders err as the text shown in the dialog box.
func Describe(kind Kind, err error) string {
	var nerr *Error
	switch {
	case errors.As(err, &nerr) && nerr.Place == PlaceDial:
		return fmt.Sprintf("Cannot connect to the server (%d at %d)", nerr.Code, nerr.Place)
	case errors.As(err, &nerr):
		return fmt.Sprintf("Error while communicating with the server (%d at %d)", nerr.Code, nerr.Place)
	case errors.Is(err, ErrInvalidToken) && kind == KindListen:
		return "Invalid token (try observing again)"
	case errors.Is(err, ErrInvalidToken):
		return "Invalid token (try restarting your game)"
	default:
		return "Internal server error"
	}
}
