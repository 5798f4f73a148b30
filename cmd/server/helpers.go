package main

import (
	"log"
	"time"

	"github.com/example/primesum/internal/cache"
)

// listenAddr turns a port into a listen address, defaulting to 8080.
func listenAddr(port string) string {
	if port == "" {
		port = "8080"
	}
	return ":" + port
}

// burstFor allows a tenth of the per-minute budget at once, at least 1.
func burstFor(rpm int) int {
	if b := rpm / 10; b > 1 {
		return b
	}
	return 1
}

// purgeEvery drops expired cache entries on each tick until the returned
// stop func is called.
func purgeEvery(c *cache.Cache, every time.Duration) (stop func()) {
	t := time.NewTicker(every)
	done := make(chan struct{})
	go func() {
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				if n := c.Purge(); n > 0 {
					log.Printf("event=cache_purge removed=%d remaining=%d", n, c.Len())
				}
			}
		}
	}()
	return func() { close(done) }
}
