package osdep

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
)

// Emitter receives human-readable diagnostic lines of a backend.
type Emitter interface {
	Emit(line string)
}

type EmitterFunc func(line string)

func (f EmitterFunc) Emit(line string) {
	f(line)
}

// NopEmitter discards all lines.
var NopEmitter Emitter = EmitterFunc(func(string) {})

type writerEmitter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterEmitter writes every line followed by a newline to w.
func NewWriterEmitter(w io.Writer) Emitter {
	return &writerEmitter{w: w}
}

func (e *writerEmitter) Emit(line string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fmt.Fprintln(e.w, line)
}

type zapEmitter struct {
	logger *zap.Logger
}

func NewZapEmitter(logger *zap.Logger) Emitter {
	return &zapEmitter{logger.Named("osdep")}
}

func (e *zapEmitter) Emit(line string) {
	e.logger.Info(line)
}
