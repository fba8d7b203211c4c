package osdep

import "fmt"

// BatteryState reports the battery charge of the host.
func BatteryState() (int, error) {
	return -1, fmt.Errorf("battery state: %w", errNotSupported)
}

// CreateTap creates a tap device and returns its file descriptor.
func CreateTap() (int, error) {
	return -1, fmt.Errorf("create tap: %w", errNotSupported)
}

// notSupportedError matches both ErrOperationNotSupported
// and the EOPNOTSUPP errno of the platform.
type notSupportedError struct {
	errno error
}

func (e *notSupportedError) Error() string {
	return ErrOperationNotSupported.Error()
}

func (e *notSupportedError) Is(target error) bool {
	return target == ErrOperationNotSupported || target == e.errno
}

func (e *notSupportedError) Unwrap() error {
	return e.errno
}
