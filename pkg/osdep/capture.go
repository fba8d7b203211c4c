//go:generate mockgen -package osdep -destination=mock_capture_test.go -source capture.go

package osdep

import (
	"errors"
	"time"

	"github.com/google/gopacket"
)

// ErrNoFrame is returned by Session.ReadPacketData when the read timeout
// expires before any frame arrives.
var ErrNoFrame = errors.New("no frame within read timeout")

// Capture is the platform capture library.
type Capture interface {
	// LookupDev returns the name of the default capture device.
	LookupDev() (string, error)
	// LookupNet returns the IPv4 network number and mask of device.
	LookupNet(device string) (network, mask uint32, err error)
	NewInactive(device string) (InactiveSession, error)
	OpenLive(device string, snaplen int32, promisc bool, timeout time.Duration) (Session, error)
}

// InactiveSession is a capture session that is not activated yet.
type InactiveSession interface {
	// SetRFMon must return ErrMonitorModeUnsupported if the device
	// is not capable of monitor mode.
	SetRFMon(monitor bool) error
	SetSnapLen(snaplen int) error
	SetPromisc(promisc bool) error
	SetTimeout(timeout time.Duration) error
	Activate() (Session, error)
	CleanUp()
}

type Session interface {
	ReadPacketData() (data []byte, ci gopacket.CaptureInfo, err error)
	WritePacketData(data []byte) error
	Close()
}
