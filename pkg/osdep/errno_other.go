//go:build !unix

package osdep

import "syscall"

var errNotSupported error = &notSupportedError{errno: syscall.EOPNOTSUPP}
