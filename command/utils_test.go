package command

import (
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/gopacket"
	"github.com/stretchr/testify/require"
	"github.com/v-byte-cpu/wif/pkg/dot11"
	"github.com/v-byte-cpu/wif/pkg/osdep"
)

var (
	testBSSID  = []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}
	testClient = []byte{0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb}
)

func deauthFrame(t *testing.T, bssid []byte) []byte {
	t.Helper()
	buf := gopacket.NewSerializeBuffer()
	require.NoError(t, dot11.NewDeauthFiller(bssid, testClient, dot11.ReasonClass3FromNonAssoc).Fill(buf, 0))
	return buf.Bytes()
}

// radioTapFrame prepends a radiotap header without optional fields.
func radioTapFrame(frame []byte) []byte {
	return append([]byte{0x00, 0x00, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00}, frame...)
}

// frameReader replays frames and then reports EOF.
type frameReader struct {
	frames [][]byte
}

func (r *frameReader) ReadPacketData() ([]byte, *gopacket.CaptureInfo, error) {
	if len(r.frames) == 0 {
		return nil, nil, io.EOF
	}
	frame := r.frames[0]
	r.frames = r.frames[1:]
	return frame, &gopacket.CaptureInfo{CaptureLength: len(frame), Length: len(frame)}, nil
}

// fakeWif records injected frames and captures the queued frames once.
type fakeWif struct {
	*osdep.DefaultBackend
	mu       sync.Mutex
	captured [][]byte
	written  [][]byte
	// busy is set while a Read or Write is in progress
	busy    bool
	overlap bool
}

func newFakeWif() *fakeWif {
	return &fakeWif{DefaultBackend: osdep.NewDefaultBackend()}
}

func (w *fakeWif) enter() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.busy {
		w.overlap = true
	}
	w.busy = true
}

func (w *fakeWif) leave() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.busy = false
}

func (w *fakeWif) Read(buf []byte, _ *osdep.RxInfo) (int, error) {
	w.enter()
	defer w.leave()
	time.Sleep(time.Millisecond)
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.captured) == 0 {
		return 0, nil
	}
	frame := w.captured[0]
	w.captured = w.captured[1:]
	return copy(buf, frame), nil
}

func (w *fakeWif) Write(frame []byte, _ *osdep.TxInfo) error {
	w.enter()
	defer w.leave()
	time.Sleep(time.Millisecond)
	w.mu.Lock()
	defer w.mu.Unlock()
	w.written = append(w.written, append([]byte(nil), frame...))
	return nil
}

func (w *fakeWif) overlapped() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.overlap
}

func (w *fakeWif) frames() [][]byte {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.written
}

// failingWif fails every capture with err.
type failingWif struct {
	*fakeWif
	err error
}

func (w *failingWif) Read([]byte, *osdep.RxInfo) (int, error) {
	return 0, w.err
}
