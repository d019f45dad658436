// Package timing formats elapsed durations for CLI progress lines.
package timing

import (
	"fmt"
	"time"
)

// Format renders d as "<s>s <ms>ms", or "<ms>ms" under one second.
func Format(d time.Duration) string {
	millis := d.Milliseconds()
	seconds := millis / 1000
	millis %= 1000
	if seconds > 0 {
		return fmt.Sprintf("%ds %dms", seconds, millis)
	}
	return fmt.Sprintf("%dms", millis)
}

// Since formats the time elapsed since start.
func Since(start time.Time) string {
	return Format(time.Since(start))
}
