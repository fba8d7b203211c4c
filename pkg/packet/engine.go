package packet

import (
	"context"
	"sync"
)

// Engine injects frames and optionally captures at the same time.
type Engine struct {
	snd Sender
	rcv Receiver
}

// NewEngine creates an Engine, r may be nil for send-only operation.
func NewEngine(s Sender, r Receiver) *Engine {
	return &Engine{snd: s, rcv: r}
}

func (e *Engine) Start(ctx context.Context, frames <-chan *FrameData) (<-chan interface{}, <-chan error) {
	done, errc1 := e.snd.SendFrames(ctx, frames)
	if e.rcv == nil {
		return done, errc1
	}
	errc2 := e.rcv.ReceiveFrames(ctx)
	return done, MergeErrChan(ctx, errc1, errc2)
}

// MergeErrChan multiplexes channels into one that is closed when all of them are closed.
func MergeErrChan(ctx context.Context, channels ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	wg.Add(len(channels))

	out := make(chan error)
	multiplex := func(c <-chan error) {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case e, ok := <-c:
				if !ok {
					return
				}
				select {
				case <-ctx.Done():
					return
				case out <- e:
				}
			}
		}
	}
	for _, c := range channels {
		go multiplex(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}
