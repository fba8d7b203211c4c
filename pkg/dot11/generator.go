//go:generate mockgen -package dot11 -destination=mock_generator_test.go -source generator.go

package dot11

import (
	"context"

	"github.com/google/gopacket"
	"github.com/v-byte-cpu/wif/pkg/packet"
)

type FrameFiller interface {
	// Fill serializes the frame with sequence number seq into buf.
	Fill(buf gopacket.SerializeBuffer, seq uint16) error
}

type FrameGenerator interface {
	// Frames generates count frames, or frames until ctx is done if count is not positive.
	Frames(ctx context.Context, count int) <-chan *packet.FrameData
}

func NewFrameGenerator(filler FrameFiller) FrameGenerator {
	return &frameGenerator{filler}
}

type frameGenerator struct {
	filler FrameFiller
}

func (g *frameGenerator) Frames(ctx context.Context, count int) <-chan *packet.FrameData {
	out := make(chan *packet.FrameData)
	go func() {
		defer close(out)
		// sequence numbers are 12 bits and wrap around
		var seq uint16
		for i := 0; count <= 0 || i < count; i++ {
			buf := packet.NewFrameBuffer()
			if err := g.filler.Fill(buf, seq); err != nil {
				_ = packet.FreeFrameBuffer(buf)
				writeBufToChan(ctx, out, &packet.FrameData{Err: err})
			} else {
				writeBufToChan(ctx, out, &packet.FrameData{Buf: buf})
			}
			seq = (seq + 1) & 0x0fff
			select {
			case <-ctx.Done():
				return
			default:
			}
		}
	}()
	return out
}

func writeBufToChan(ctx context.Context, out chan *packet.FrameData, buf *packet.FrameData) {
	select {
	case <-ctx.Done():
		return
	case out <- buf:
	}
}

// RawFiller fills a prebuilt frame as is.
type RawFiller struct {
	frame []byte
}

func NewRawFiller(frame []byte) *RawFiller {
	return &RawFiller{frame}
}

func (f *RawFiller) Fill(buf gopacket.SerializeBuffer, _ uint16) error {
	return gopacket.Payload(f.frame).SerializeTo(buf, gopacket.SerializeOptions{})
}
