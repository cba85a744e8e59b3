package utils

import (
	"context"
	"log"
	"runtime/debug"
)

// GoSafe runs fn in a new goroutine, recovering from panics so a single
// misbehaving job cannot bring the process down.
func GoSafe(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("recovered from panic: %v\n%s", r, debug.Stack())
			}
		}()
		fn()
	}()
}

// ShouldContinue reports whether the context is still alive.
func ShouldContinue(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	default:
		return true
	}
}
