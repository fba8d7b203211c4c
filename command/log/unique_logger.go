package log

import (
	"context"
)

// UniqueLogger logs only the first result of every ID.
type UniqueLogger struct {
	logger Logger
}

func NewUniqueLogger(logger Logger) *UniqueLogger {
	return &UniqueLogger{logger}
}

func (l *UniqueLogger) Error(err error) {
	l.logger.Error(err)
}

func (l *UniqueLogger) LogResults(ctx context.Context, results <-chan Result) {
	l.logger.LogResults(ctx, l.uniqResults(ctx, results))
}

func (*UniqueLogger) uniqResults(ctx context.Context, in <-chan Result) <-chan Result {
	results := make(chan Result, cap(in))
	go func() {
		defer close(results)
		var member struct{}
		set := make(map[string]interface{})

		for result := range in {
			id := result.ID()
			if _, exists := set[id]; !exists {
				set[id] = member
				select {
				case results <- result:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return results
}
