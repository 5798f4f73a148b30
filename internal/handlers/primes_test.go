package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/example/primesum/internal/cache"
	"github.com/example/primesum/internal/types"
)

func newPrimesHandler(rec *fakeRecorder) *PrimesHandler {
	deps := PrimesDeps{Cache: cache.New(time.Minute, 8, time.Second), MaxN: 1000, Timeout: time.Second, MaxConcurrency: 2}
	if rec != nil { deps.Store = rec }
	return NewPrimesHandler(deps)
}

func getPrimes(t *testing.T, h http.Handler, query string) (*httptest.ResponseRecorder, types.PrimesResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/primes"+query, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var out types.PrimesResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	return rec, out
}

func TestPrimes_ComputesThenHitsCache(t *testing.T) {
	fr := &fakeRecorder{}
	h := newPrimesHandler(fr)
	rec, out := getPrimes(t, h, "?n=10")
	if rec.Code != http.StatusOK { t.Fatalf("status=%d body=%s", rec.Code, rec.Body) }
	if out.Count != 4 || out.Last != 7 || len(out.Primes) != 4 || out.Source != cache.SourceComputed { t.Fatalf("out=%+v", out) }
	if fr.count() != 1 || fr.runs[0].Kind != "sieve" || fr.runs[0].Last != 7 { t.Fatalf("runs=%+v", fr.runs) }

	rec, out = getPrimes(t, h, "?n=10&list=false")
	if rec.Code != http.StatusOK { t.Fatalf("status=%d", rec.Code) }
	if out.Source != cache.SourceCache || out.Primes != nil || out.Count != 4 { t.Fatalf("cached out=%+v", out) }
	if fr.count() != 1 { t.Fatalf("cache hit recorded: %d", fr.count()) }
}

func TestPrimes_ZeroAndOne(t *testing.T) {
	h := newPrimesHandler(nil)
	for _, q := range []string{"?n=0", "?n=1"} {
		rec, out := getPrimes(t, h, q)
		if rec.Code != http.StatusOK || out.Count != 0 || out.Last != 0 { t.Fatalf("%s status=%d out=%+v", q, rec.Code, out) }
	}
}

func TestPrimes_BadInput(t *testing.T) {
	h := newPrimesHandler(nil)
	for _, q := range []string{"", "?n=", "?n=abc", "?n=-1", "?n=1001", "?n=5&list=maybe"} {
		rec, _ := getPrimes(t, h, q)
		if rec.Code != http.StatusBadRequest { t.Fatalf("%q status=%d", q, rec.Code) }
	}
}

func TestPrimes_BusyWhenNoSlot(t *testing.T) {
	h := NewPrimesHandler(PrimesDeps{Cache: cache.New(time.Minute, 8, 50*time.Millisecond), MaxN: 1000, Timeout: 30 * time.Millisecond, MaxConcurrency: 1})
	if err := h.slots.Acquire(context.Background(), 1); err != nil { t.Fatalf("acquire: %v", err) }
	defer h.slots.Release(1)
	rec, _ := getPrimes(t, h, "?n=100")
	if rec.Code != http.StatusServiceUnavailable { t.Fatalf("status=%d", rec.Code) }
}

func TestPrimes_RecordFailureStillServes(t *testing.T) {
	fr := &fakeRecorder{fail: errString("db down")}
	h := newPrimesHandler(fr)
	rec, out := getPrimes(t, h, "?n=30")
	if rec.Code != http.StatusOK || out.Count != 10 { t.Fatalf("status=%d out=%+v", rec.Code, out) }
}

func TestPrimes_ImpatientCallerDoesNotFailCoalescedCaller(t *testing.T) {
	h := NewPrimesHandler(PrimesDeps{Cache: cache.New(time.Minute, 8, 5*time.Second), MaxN: 1000, Timeout: 5 * time.Second, MaxConcurrency: 1})
	if err := h.slots.Acquire(context.Background(), 1); err != nil { t.Fatalf("acquire: %v", err) }
	go func() {
		time.Sleep(300 * time.Millisecond)
		h.slots.Release(1)
	}()

	impatient := make(chan int, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		req := httptest.NewRequest(http.MethodGet, "/api/primes?n=100", nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		impatient <- rec.Code
	}()
	time.Sleep(10 * time.Millisecond)

	rec, out := getPrimes(t, h, "?n=100")
	if rec.Code != http.StatusOK || out.Count != 25 { t.Fatalf("patient status=%d out=%+v", rec.Code, out) }
	if code := <-impatient; code != http.StatusServiceUnavailable { t.Fatalf("impatient status=%d", code) }
}
