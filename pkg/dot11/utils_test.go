package dot11

import (
	"testing"
	"time"

	"github.com/v-byte-cpu/wif/pkg/packet"
)

const waitTimeout = 3 * time.Second

func chanToSlice(t *testing.T, in <-chan *packet.FrameData) []*packet.FrameData {
	t.Helper()
	result := []*packet.FrameData{}
	for {
		select {
		case data, ok := <-in:
			if !ok {
				return result
			}
			result = append(result, data)
		case <-time.After(waitTimeout):
			t.Fatal("read timeout")
		}
	}
}
