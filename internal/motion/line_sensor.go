package motion

import (
	"bufio"
	"context"
	"io"

	"github.com/KirkDiggler/dice-companion/internal/errors"
)

// LineSensor stands in for a PIR sensor on a terminal: every line read
// from the input counts as one detection
type LineSensor struct {
	lines <-chan struct{}
}

// NewLineSensor starts reading r in the background until r is exhausted or
// ctx is done
func NewLineSensor(ctx context.Context, r io.Reader) *LineSensor {
	lines := make(chan struct{})
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- struct{}{}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return &LineSensor{lines: lines}
}

// Detect reports a pending line without blocking. It fails once the input
// is exhausted.
func (s *LineSensor) Detect(ctx context.Context) (bool, error) {
	select {
	case _, ok := <-s.lines:
		if !ok {
			return false, errors.Unavailable("motion input closed")
		}
		return true, nil
	case <-ctx.Done():
		return false, ctx.Err()
	default:
		return false, nil
	}
}
