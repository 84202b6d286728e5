package core

import (
	"errors"
)

var (
	// ErrNoDevice is returned when an application is configured without a
	// graphics device. There is no recovery path; the runtime is unusable
	// without one.
	ErrNoDevice = errors.New("no graphics device supplied")

	// ErrAlreadyStarted is returned when Start is called on an application
	// that is already running.
	ErrAlreadyStarted = errors.New("application already started")

	// ErrDestroyed is returned by operations invoked on an application that
	// has already been torn down.
	ErrDestroyed = errors.New("application destroyed")
)
