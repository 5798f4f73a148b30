package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/example/primesum/internal/cache"
	"github.com/example/primesum/internal/sieve"
	"github.com/example/primesum/internal/store"
	"github.com/example/primesum/internal/types"
	"github.com/example/primesum/pkg/jsonutil"
	"golang.org/x/sync/semaphore"
)

var errBusy = errors.New("sieve capacity exhausted, try again later")

// PrimesDeps bundles dependencies needed by the primes handler.
type PrimesDeps struct {
	Cache          *cache.Cache
	Store          store.Recorder // optional
	MaxN           int
	Timeout        time.Duration
	MaxConcurrency int
}

type PrimesHandler struct {
	Deps  PrimesDeps
	slots *semaphore.Weighted
}

func NewPrimesHandler(deps PrimesDeps) *PrimesHandler {
	if deps.MaxConcurrency <= 0 {
		deps.MaxConcurrency = 1
	}
	return &PrimesHandler{Deps: deps, slots: semaphore.NewWeighted(int64(deps.MaxConcurrency))}
}

func (h *PrimesHandler) parse(r *http.Request) (n int, list bool, err error) {
	q := r.URL.Query()
	raw := q.Get("n")
	if raw == "" {
		return 0, false, errors.New("n required")
	}
	n, err = strconv.Atoi(raw)
	if err != nil {
		return 0, false, errors.New("n must be an integer")
	}
	if n < 0 {
		return 0, false, errors.New("n must be non-negative")
	}
	if h.Deps.MaxN > 0 && n > h.Deps.MaxN {
		return 0, false, fmt.Errorf("n must be at most %d", h.Deps.MaxN)
	}
	list = true
	if v := q.Get("list"); v != "" {
		if list, err = strconv.ParseBool(v); err != nil {
			return 0, false, errors.New("list must be a boolean")
		}
	}
	return n, list, nil
}

func (h *PrimesHandler) compute(n int) func(context.Context) (cache.Value, error) {
	return func(ctx context.Context) (cache.Value, error) {
		if err := h.slots.Acquire(ctx, 1); err != nil {
			return cache.Value{}, fmt.Errorf("%w: %v", errBusy, err)
		}
		defer h.slots.Release(1)
		start := time.Now()
		primes, err := sieve.Primes(n)
		if err != nil {
			return cache.Value{}, err
		}
		elapsed := time.Since(start)
		log.Printf("event=sieve n=%d count=%d elapsed_ms=%d", n, len(primes), elapsed.Milliseconds())
		return cache.Value{Primes: primes, ComputedAt: time.Now().UTC(), Elapsed: elapsed}, nil
	}
}

// ServeHTTP handles GET /api/primes?n=N[&list=false]
func (h *PrimesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	n, list, err := h.parse(r)
	if err != nil {
		jsonutil.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	if h.Deps.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Deps.Timeout)
		defer cancel()
	}
	val, source, err := h.Deps.Cache.GetOrCompute(ctx, n, h.compute(n))
	switch {
	case errors.Is(err, errBusy), errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		jsonutil.Error(w, http.StatusServiceUnavailable, errBusy.Error())
		return
	case errors.Is(err, sieve.ErrInvalidArgument):
		jsonutil.Error(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		jsonutil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	sum := sieve.Summarize(n, val.Primes)
	resp := types.PrimesResponse{
		N:         sum.N,
		Count:     sum.Count,
		Last:      sum.Last,
		Source:    source,
		ElapsedMS: types.Millis(val.Elapsed),
	}
	if list {
		resp.Primes = val.Primes
	}
	if source == cache.SourceComputed {
		record(r.Context(), h.Deps.Store, store.Run{
			Kind:      store.KindSieve,
			N:         sum.N,
			Count:     sum.Count,
			Last:      sum.Last,
			ElapsedMS: resp.ElapsedMS,
		})
	}
	jsonutil.JSON(w, http.StatusOK, resp)
}

// record stores a run on a best-effort basis; failures are only logged.
func record(ctx context.Context, rec store.Recorder, run store.Run) {
	if rec == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rec.Record(ctx, run); err != nil {
		log.Printf("event=record_failed kind=%s err=%q", run.Kind, err.Error())
	}
}
