// Package goroutine runs background work with panic recovery, so a
// misbehaving task cannot take the server process down with it.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"helpdesk/internal/shared/logger"
)

// SafeGo runs fn on its own goroutine. A panic inside fn is recovered and
// logged with its stack under the given task name instead of crashing.
func SafeGo(log logger.Interface, task string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("background task panicked",
					"task", task,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
