package osdep

import (
	"errors"
	"fmt"
	"net"
	"time"
)

const (
	// ReadTimeout bounds how long Read waits for a frame.
	ReadTimeout = 512 * time.Millisecond
	// WriteTimeout is the read timeout of the session opened by Write.
	WriteTimeout = 1000 * time.Millisecond

	injectSnapLen = 1024
)

type Option func(b *DefaultBackend)

func WithEmitter(e Emitter) Option {
	return func(b *DefaultBackend) {
		b.emitter = e
	}
}

func WithCapture(c Capture) Option {
	return func(b *DefaultBackend) {
		b.capture = c
	}
}

// WithStrictWrite makes Write return ErrInjectionFailed
// instead of only reporting it to the emitter.
func WithStrictWrite() Option {
	return func(b *DefaultBackend) {
		b.strictWrite = true
	}
}

func withInterfaceName(ifname string) Option {
	return func(b *DefaultBackend) {
		b.ifname = ifname
	}
}

// DefaultBackend captures and injects frames through the capture library
// on its default device. Every call opens and closes its own session,
// radio parameters are not supported and always report zero values.
type DefaultBackend struct {
	capture     Capture
	emitter     Emitter
	strictWrite bool
	// ifname is kept for diagnostics only, the default device is always used
	ifname string
}

// Assert that DefaultBackend conforms to the Wif interface
var _ Wif = (*DefaultBackend)(nil)

func NewDefaultBackend(opts ...Option) *DefaultBackend {
	b := &DefaultBackend{
		capture: NewPcapCapture(),
		emitter: NopEmitter,
	}
	for _, o := range opts {
		o(b)
	}
	if len(b.ifname) > 0 {
		b.emitter.Emit(fmt.Sprintf("opening wifi interface %s via the default capture device", b.ifname))
	} else {
		b.emitter.Emit("opening wifi interface via the default capture device")
	}
	return b
}

func (b *DefaultBackend) Read(buf []byte, _ *RxInfo) (int, error) {
	// make sure the caller doesn't read garbage from the last time
	for i := range buf {
		buf[i] = 0
	}

	dev, err := b.capture.LookupDev()
	if err != nil {
		b.emitter.Emit(fmt.Sprintf("Couldn't find default device: %v", err))
		return 0, fmt.Errorf("%w: %v", ErrDeviceNotFound, err)
	}
	// network and mask are informational only
	if _, _, err := b.capture.LookupNet(dev); err != nil {
		b.emitter.Emit(fmt.Sprintf("Couldn't get netmask for device %s: %v", dev, err))
	}

	inactive, err := b.capture.NewInactive(dev)
	if err != nil {
		b.emitter.Emit(fmt.Sprintf("Couldn't open device %s: %v", dev, err))
		return 0, fmt.Errorf("%w %s: %v", ErrDeviceOpenFailed, dev, err)
	}
	defer inactive.CleanUp()

	if err = b.setupSession(inactive, len(buf)); err != nil {
		b.emitter.Emit(err.Error())
		return 0, err
	}
	session, err := inactive.Activate()
	if err != nil {
		b.emitter.Emit(fmt.Sprintf("%s: %v", dev, err))
		return 0, fmt.Errorf("%w %s: %v", ErrActivationFailed, dev, err)
	}
	defer session.Close()

	data, ci, err := session.ReadPacketData()
	if err != nil {
		if !errors.Is(err, ErrNoFrame) {
			b.emitter.Emit(fmt.Sprintf("Couldn't read packet from %s: %v", dev, err))
		}
		return 0, nil
	}
	b.emitter.Emit(fmt.Sprintf("read frame with length of [%d]", ci.Length))
	b.emitter.Emit(fmt.Sprintf("%X", data))
	return copy(buf, data), nil
}

func (*DefaultBackend) setupSession(inactive InactiveSession, snaplen int) error {
	if err := inactive.SetRFMon(true); err != nil {
		if errors.Is(err, ErrMonitorModeUnsupported) {
			return ErrMonitorModeUnsupported
		}
		return fmt.Errorf("%w: %v", ErrMonitorModeSetFailed, err)
	}
	// configuration errors are reported again by activation
	_ = inactive.SetSnapLen(snaplen)
	_ = inactive.SetPromisc(true)
	_ = inactive.SetTimeout(ReadTimeout)
	return nil
}

func (b *DefaultBackend) Write(frame []byte, _ *TxInfo) error {
	dev, err := b.capture.LookupDev()
	if err != nil {
		b.emitter.Emit(fmt.Sprintf("Couldn't find default device: %v", err))
		return fmt.Errorf("%w: %v", ErrDeviceNotFound, err)
	}

	session, err := b.capture.OpenLive(dev, injectSnapLen, false, WriteTimeout)
	if err != nil {
		b.emitter.Emit(fmt.Sprintf("Couldn't open device %s: %v", dev, err))
		return fmt.Errorf("%w %s: %v", ErrDeviceOpenFailed, dev, err)
	}
	defer session.Close()

	if err = session.WritePacketData(frame); err != nil {
		b.emitter.Emit(fmt.Sprintf("failed injecting packet: %v", err))
		if b.strictWrite {
			return fmt.Errorf("%w: %v", ErrInjectionFailed, err)
		}
	}
	return nil
}

func (*DefaultBackend) SetChannel(int) error { return nil }

func (*DefaultBackend) SetHTChannel(int, uint) error { return nil }

func (*DefaultBackend) Channel() int { return 0 }

func (*DefaultBackend) SetFreq(int) error { return nil }

func (*DefaultBackend) Freq() int { return 0 }

func (*DefaultBackend) SetMAC(net.HardwareAddr) error { return nil }

func (*DefaultBackend) MAC(net.HardwareAddr) error { return nil }

func (*DefaultBackend) SetRate(int) error { return nil }

func (*DefaultBackend) Rate() int { return 0 }

func (*DefaultBackend) SetMTU(int) error { return nil }

func (*DefaultBackend) MTU() int { return 0 }

func (*DefaultBackend) Monitor() bool { return false }

func (*DefaultBackend) Fd() int { return 0 }

// Close does nothing, no session outlives a Read or Write call.
func (*DefaultBackend) Close() error { return nil }
