package packet

import (
	"sync"
	"time"

	"github.com/google/gopacket"
)

// ReadWriter captures and injects frames on the same device.
type ReadWriter interface {
	Reader
	Writer
}

// Limiter paces injected frames. go.uber.org/ratelimit limiters satisfy it.
type Limiter interface {
	// Take blocks until the next frame may be injected.
	Take() time.Time
}

type throttledReadWriter struct {
	ReadWriter
	limiter Limiter
}

// NewThrottledReadWriter delays every injected frame until limiter allows it,
// captured frames pass through untouched.
func NewThrottledReadWriter(rw ReadWriter, limiter Limiter) ReadWriter {
	return &throttledReadWriter{ReadWriter: rw, limiter: limiter}
}

func (rw *throttledReadWriter) WritePacketData(frame []byte) error {
	rw.limiter.Take()
	return rw.ReadWriter.WritePacketData(frame)
}

type syncReadWriter struct {
	mu sync.Mutex
	rw ReadWriter
}

// NewSyncReadWriter serializes captures and injections on rw so that
// a receiver and a sender can share one device. Calls never overlap.
func NewSyncReadWriter(rw ReadWriter) ReadWriter {
	return &syncReadWriter{rw: rw}
}

// ReadPacketData returns data that stays valid until the next capture
// on rw, injections do not touch it.
func (s *syncReadWriter) ReadPacketData() ([]byte, *gopacket.CaptureInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rw.ReadPacketData()
}

func (s *syncReadWriter) WritePacketData(frame []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rw.WritePacketData(frame)
}
