//go:generate mockgen -destination=mock_sender_test.go -package=packet -source sender.go

package packet

import (
	"context"
	"fmt"

	"github.com/google/gopacket"
)

// FrameData is a serialized frame ready for injection
// or the error that prevented building it.
type FrameData struct {
	Buf gopacket.SerializeBuffer
	Err error
}

type Sender interface {
	SendFrames(ctx context.Context, in <-chan *FrameData) (done <-chan interface{}, errc <-chan error)
}

type Writer interface {
	WritePacketData(frame []byte) error
}

type sender struct {
	w Writer
}

func NewSender(w Writer) Sender {
	return &sender{w}
}

// SendFrames injects frames from in one by one until in is closed or ctx is done.
// Every buffer is returned to the frame pool once written.
func (s *sender) SendFrames(ctx context.Context, in <-chan *FrameData) (<-chan interface{}, <-chan error) {
	done := make(chan interface{})
	errc := make(chan error, 100)
	go func() {
		defer close(errc)
		defer close(done)
		var n int
		for {
			select {
			case <-ctx.Done():
				return
			case frame, ok := <-in:
				if !ok {
					return
				}
				n++
				if err := s.send(frame); err != nil {
					errc <- fmt.Errorf("frame #%d: %w", n, err)
				}
			}
		}
	}()
	return done, errc
}

func (s *sender) send(frame *FrameData) (err error) {
	if frame.Err != nil {
		return frame.Err
	}
	defer func() {
		if ferr := FreeFrameBuffer(frame.Buf); err == nil {
			err = ferr
		}
	}()
	return s.w.WritePacketData(frame.Buf.Bytes())
}
