//go:build !unix

package main

import "time"

var processStart = time.Now()

// cpuTime falls back to wall-clock time since start where rusage is unavailable.
func cpuTime() time.Duration { return time.Since(processStart) }
