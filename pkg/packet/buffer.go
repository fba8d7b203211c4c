package packet

import (
	"sync"

	"github.com/google/gopacket"
)

// MaxFrameLen is the largest 802.11 MPDU without A-MSDU aggregation.
const MaxFrameLen = 2346

var framePool = sync.Pool{
	New: func() interface{} {
		return gopacket.NewSerializeBufferExpectedSize(MaxFrameLen, 0)
	},
}

// NewFrameBuffer takes an empty frame buffer from the pool.
func NewFrameBuffer() gopacket.SerializeBuffer {
	return framePool.Get().(gopacket.SerializeBuffer)
}

// FreeFrameBuffer clears buf and returns it to the pool.
// buf must not be used afterwards.
func FreeFrameBuffer(buf gopacket.SerializeBuffer) error {
	if err := buf.Clear(); err != nil {
		return err
	}
	framePool.Put(buf)
	return nil
}
