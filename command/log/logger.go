package log

import (
	"bufio"
	"context"
	"io"
	"time"

	"go.uber.org/zap"
)

type Result interface {
	// ID identifies equal results for deduplication
	ID() string
	String() string
	MarshalJSON() ([]byte, error)
}

type Logger interface {
	Error(err error)
	LogResults(ctx context.Context, results <-chan Result)
}

type ResultWriter interface {
	Write(w io.Writer, result Result) error
}

type logger struct {
	zapl  *zap.Logger
	label string

	w             io.Writer
	rw            ResultWriter
	flushInterval time.Duration
}

type LoggerOption func(*logger)

func JSON() LoggerOption {
	return func(l *logger) {
		l.rw = &JSONResultWriter{}
	}
}

func Plain() LoggerOption {
	return func(l *logger) {
		l.rw = &PlainResultWriter{}
	}
}

func FlushInterval(interval time.Duration) LoggerOption {
	return func(l *logger) {
		l.flushInterval = interval
	}
}

func WithZap(zapl *zap.Logger) LoggerOption {
	return func(l *logger) {
		l.zapl = zapl
	}
}

func NewLogger(w io.Writer, label string, opts ...LoggerOption) (Logger, error) {
	l := &logger{
		label:         label,
		rw:            &PlainResultWriter{},
		w:             w,
		flushInterval: 1 * time.Second,
	}
	for _, o := range opts {
		o(l)
	}
	if l.zapl == nil {
		zapl, err := zap.NewProduction()
		if err != nil {
			return nil, err
		}
		l.zapl = zapl
	}
	return l, nil
}

func (l *logger) Error(err error) {
	l.zapl.Error(l.label, zap.Error(err))
}

func (l *logger) LogResults(ctx context.Context, results <-chan Result) {
	bw := bufio.NewWriter(l.w)
	defer bw.Flush()
	var err error
	ticker := time.NewTicker(l.flushInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case result, ok := <-results:
			if !ok {
				return
			}
			if err = l.rw.Write(bw, result); err != nil {
				l.Error(err)
			}
		case <-ticker.C:
			if err = bw.Flush(); err != nil {
				l.Error(err)
			}
		}
	}
}
