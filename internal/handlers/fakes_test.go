package handlers

import (
	"context"
	"sync"

	"github.com/example/primesum/internal/store"
)

type fakeRecorder struct {
	mu   sync.Mutex
	runs []store.Run
	fail error
}

func (f *fakeRecorder) Record(_ context.Context, run store.Run) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil { return f.fail }
	f.runs = append(f.runs, run)
	return nil
}

func (f *fakeRecorder) Recent(_ context.Context, limit int) ([]store.Run, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil { return nil, f.fail }
	if limit > len(f.runs) { limit = len(f.runs) }
	return append([]store.Run(nil), f.runs[:limit]...), nil
}

func (f *fakeRecorder) Ping(_ context.Context) error { return f.fail }

func (f *fakeRecorder) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.runs)
}

type errString string
func (e errString) Error() string { return string(e) }
