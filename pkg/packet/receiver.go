//go:generate mockgen -destination=mock_receiver_test.go -package=packet -source receiver.go

package packet

import (
	"context"
	"errors"
	"io"
	"net"
	"strings"
	"syscall"
	"time"

	"github.com/google/gopacket"
	"github.com/v-byte-cpu/wif/pkg/osdep"
)

// retryDelay is the pause after a read error that is neither temporary nor final
const retryDelay = 5 * time.Millisecond

type Processor interface {
	ProcessPacketData(data []byte, ci *gopacket.CaptureInfo) error
}

type ProcessorFunc func(data []byte, ci *gopacket.CaptureInfo) error

func (f ProcessorFunc) ProcessPacketData(data []byte, ci *gopacket.CaptureInfo) error {
	return f(data, ci)
}

type Reader interface {
	ReadPacketData() (data []byte, ci *gopacket.CaptureInfo, err error)
}

type Receiver interface {
	// ReceiveFrames captures frames until ctx is done or the device stops
	// serving reads. The returned channel is closed on exit.
	ReceiveFrames(ctx context.Context) <-chan error
}

func NewReceiver(r Reader, p Processor) Receiver {
	return &receiver{r, p}
}

type receiver struct {
	r Reader
	p Processor
}

type readAction int

const (
	// retry at once without reporting
	readRetry readAction = iota
	// stop without reporting
	readStop
	// report and stop
	readFail
	// report and retry after retryDelay
	readReport
)

func classifyReadError(err error) readAction {
	switch {
	case isTemporaryError(err):
		return readRetry
	case isClosedError(err):
		return readStop
	case IsFatalError(err):
		return readFail
	default:
		return readReport
	}
}

// IsFatalError reports whether the device can not serve any further calls,
// retrying would only repeat the same failure.
func IsFatalError(err error) bool {
	return errors.Is(err, osdep.ErrDeviceNotFound) ||
		errors.Is(err, osdep.ErrDeviceOpenFailed) ||
		errors.Is(err, osdep.ErrMonitorModeUnsupported) ||
		errors.Is(err, osdep.ErrMonitorModeSetFailed) ||
		errors.Is(err, osdep.ErrActivationFailed)
}

func isTemporaryError(err error) bool {
	if errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}

func isClosedError(err error) bool {
	switch err {
	case io.EOF, io.ErrUnexpectedEOF, io.ErrNoProgress,
		io.ErrClosedPipe, io.ErrShortBuffer, syscall.EBADF:
		return true
	default:
		return strings.Contains(err.Error(), "use of closed file")
	}
}

func (r *receiver) ReceiveFrames(ctx context.Context) <-chan error {
	errc := make(chan error, 100)
	report := func(err error) bool {
		select {
		case <-ctx.Done():
			return false
		case errc <- err:
			return true
		}
	}
	go func() {
		defer close(errc)
		for ctx.Err() == nil {
			data, ci, err := r.r.ReadPacketData()
			if err == nil {
				if err = r.p.ProcessPacketData(data, ci); err != nil && !report(err) {
					return
				}
				continue
			}
			switch classifyReadError(err) {
			case readRetry:
			case readStop:
				return
			case readFail:
				report(err)
				return
			case readReport:
				if !report(err) {
					return
				}
				time.Sleep(retryDelay)
			}
		}
	}()
	return errc
}
