//go:build unix

package osdep

import "golang.org/x/sys/unix"

var errNotSupported error = &notSupportedError{errno: unix.EOPNOTSUPP}
