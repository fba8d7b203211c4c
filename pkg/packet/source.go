package packet

import (
	"time"

	"github.com/google/gopacket"
	"github.com/v-byte-cpu/wif/pkg/osdep"
)

// DefaultSnapLen fits the largest 802.11 frame (7935 bytes of A-MSDU payload)
// together with a radiotap header.
const DefaultSnapLen = 8192

// readTimeoutError is a net.Error returned when no frame arrived within the read timeout.
type readTimeoutError struct{}

func (readTimeoutError) Error() string   { return "i/o timeout" }
func (readTimeoutError) Timeout() bool   { return true }
func (readTimeoutError) Temporary() bool { return true }

// Source reads and writes frames through a wireless interface,
// one frame per backend call.
type Source struct {
	wif osdep.Wif
	buf []byte
	ri  osdep.RxInfo
}

// Assert that Source conforms to the ReadWriter interface
var _ ReadWriter = (*Source)(nil)

func NewSource(wif osdep.Wif, snapLen int) *Source {
	if snapLen <= 0 {
		snapLen = DefaultSnapLen
	}
	return &Source{wif: wif, buf: make([]byte, snapLen)}
}

// ReadPacketData returns a slice of the internal buffer
// that is valid until the next call.
func (s *Source) ReadPacketData() ([]byte, *gopacket.CaptureInfo, error) {
	n, err := s.wif.Read(s.buf, &s.ri)
	if err != nil {
		return nil, nil, err
	}
	if n == 0 {
		return nil, nil, readTimeoutError{}
	}
	ci := &gopacket.CaptureInfo{
		Timestamp:     time.Now(),
		CaptureLength: n,
		Length:        n,
	}
	return s.buf[:n], ci, nil
}

func (s *Source) WritePacketData(frame []byte) error {
	return s.wif.Write(frame, nil)
}

func (s *Source) Close() error {
	return s.wif.Close()
}
