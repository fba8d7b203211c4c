package osdep

import (
	"errors"
	"net"
	"time"
)

var (
	ErrDeviceNotFound         = errors.New("couldn't find default device")
	ErrDeviceOpenFailed       = errors.New("couldn't open device")
	ErrMonitorModeUnsupported = errors.New("monitor mode is not supported on this device")
	ErrMonitorModeSetFailed   = errors.New("failed to set monitor mode on this device")
	ErrActivationFailed       = errors.New("failed to activate capture session")
	ErrInjectionFailed        = errors.New("failed injecting packet")
	ErrOperationNotSupported  = errors.New("operation not supported")
)

// RxInfo is out-of-band metadata of a received frame.
type RxInfo struct {
	MACTime   time.Duration
	Power     int32
	Noise     int32
	Channel   uint32
	Freq      uint32
	Rate      uint32
	Antenna   uint32
	Timestamp time.Time
}

// TxInfo is out-of-band metadata of a frame to inject.
type TxInfo struct {
	Rate  uint32
	Power int8
}

// Wif is a wireless interface opened for capture and injection.
// Each platform backend implements every method, possibly as a no-op.
type Wif interface {
	// Read fills buf with at most one frame and returns the number of bytes copied.
	// It returns 0 and a nil error if no frame arrived within the read timeout.
	Read(buf []byte, ri *RxInfo) (int, error)
	// Write injects frame as-is.
	Write(frame []byte, ti *TxInfo) error

	SetChannel(channel int) error
	SetHTChannel(channel int, htval uint) error
	Channel() int
	SetFreq(freq int) error
	Freq() int
	SetMAC(mac net.HardwareAddr) error
	// MAC copies the interface hardware address into mac.
	MAC(mac net.HardwareAddr) error
	SetRate(rate int) error
	Rate() int
	SetMTU(mtu int) error
	MTU() int
	Monitor() bool
	Fd() int

	Close() error
}

// Open opens the wireless interface ifname with the backend of the current platform.
func Open(ifname string, opts ...Option) Wif {
	return NewDefaultBackend(append([]Option{withInterfaceName(ifname)}, opts...)...)
}
