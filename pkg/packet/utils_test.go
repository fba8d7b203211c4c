package packet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const waitTimeout = 3 * time.Second

// drain reads in until it is closed and fails if more than expectedLen items arrive.
func drain[T any](t *testing.T, in <-chan T, expectedLen int) []T {
	t.Helper()
	var result []T
	timeout := time.After(waitTimeout)
	for {
		select {
		case item, ok := <-in:
			if !ok {
				return result
			}
			if len(result) == expectedLen {
				require.FailNow(t, "chan size is greater than expected", "item: %v", item)
			}
			result = append(result, item)
		case <-timeout:
			require.FailNow(t, "read timeout")
		}
	}
}
