package main

import (
	"context"
	"testing"
	"time"

	"github.com/example/primesum/internal/cache"
)

func TestListenAddr(t *testing.T) {
	if listenAddr("") != ":8080" { t.Fatalf("default") }
	if listenAddr("9090") != ":9090" { t.Fatalf("pass through") }
}

func TestBurstFor(t *testing.T) {
	if burstFor(0) != 1 || burstFor(10) != 1 || burstFor(60) != 6 { t.Fatalf("burst=%d,%d,%d", burstFor(0), burstFor(10), burstFor(60)) }
}

func TestPurgeEvery(t *testing.T) {
	c := cache.New(20*time.Millisecond, 0, 0)
	_, _, _ = c.GetOrCompute(context.Background(), 10, func(context.Context) (cache.Value, error) {
		return cache.Value{Primes: []int{2, 3, 5, 7}}, nil
	})
	stop := purgeEvery(c, 20*time.Millisecond)
	defer stop()
	deadline := time.Now().Add(time.Second)
	for c.Len() != 0 {
		if time.Now().After(deadline) { t.Fatalf("entry not purged") }
		time.Sleep(10 * time.Millisecond)
	}
}
