package collector

import (
	"errors"
	"fmt"
)

var (
	ErrInterfaceNameRequired = errors.New("network interface name required")
	ErrInterfaceNotFound     = errors.New("interface not found")
	ErrNoIPv4Address         = errors.New("interface has no IPv4 address")
)

// AccessorError reports a failed hardware query.
type AccessorError struct {
	Op  string
	Err error
}

func (e *AccessorError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Op, e.Err)
}

func (e *AccessorError) Unwrap() error { return e.Err }

// IsConfigError reports whether err was caused by the configured interface
// rather than by the host.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrInterfaceNameRequired) ||
		errors.Is(err, ErrInterfaceNotFound) ||
		errors.Is(err, ErrNoIPv4Address)
}

func accessorErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &AccessorError{Op: op, Err: err}
}
