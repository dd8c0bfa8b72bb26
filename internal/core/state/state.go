// Package state holds the per-entity containers that pages read from. Every
// asynchronous operation goes through the same three phases: begin sets
// loading and clears the error, success merges the result, failure records
// the error message. Results whose context was cancelled are dropped.
package state

import (
	"context"
	"sync"
)

type Status struct {
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

type base struct {
	mu       sync.RWMutex
	inflight int
	err      string
}

func (b *base) begin() {
	b.mu.Lock()
	b.inflight++
	b.err = ""
	b.mu.Unlock()
}

// status must be called with b.mu held.
func (b *base) status() Status {
	return Status{Loading: b.inflight > 0, Error: b.err}
}

func (b *base) Status() Status {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.status()
}

// dispatch runs op and applies its result under the container lock. apply is
// skipped when op failed or ctx was cancelled while op was in flight.
func dispatch[R any](ctx context.Context, b *base, op func(context.Context) (R, error), apply func(R)) (R, error) {
	return dispatchOrDiscard(ctx, b, op, apply, nil)
}

// dispatchOrDiscard is dispatch for ops with side effects outside the
// container. discard receives a successful result that was dropped because
// ctx was cancelled, and runs outside the lock.
func dispatchOrDiscard[R any](ctx context.Context, b *base, op func(context.Context) (R, error), apply func(R), discard func(R)) (R, error) {
	b.begin()

	res, err := op(ctx)

	b.mu.Lock()
	b.inflight--

	if ctxErr := ctx.Err(); ctxErr != nil {
		b.mu.Unlock()

		if err == nil && discard != nil {
			discard(res)
		}

		var zero R
		return zero, ctxErr
	}

	defer b.mu.Unlock()

	if err != nil {
		b.err = err.Error()
		return res, err
	}

	if apply != nil {
		apply(res)
	}

	return res, nil
}

// Task is an abortable handle on an operation started with Go.
type Task struct {
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// Go starts fn in the background with a context derived from ctx. Cancelling
// either ctx or the task stops fn and keeps its result out of the container.
func Go(ctx context.Context, fn func(context.Context) error) *Task {
	taskCtx, cancel := context.WithCancel(ctx)
	t := &Task{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(t.done)
		defer cancel()

		t.err = fn(taskCtx)
	}()

	return t
}

func (t *Task) Cancel() {
	t.cancel()
}

func (t *Task) Done() <-chan struct{} {
	return t.done
}

func (t *Task) Wait() error {
	<-t.done
	return t.err
}

func upsert[T any](items []T, item T, id func(T) string) []T {
	key := id(item)
	out := make([]T, 0, len(items)+1)
	replaced := false

	for _, existing := range items {
		if id(existing) == key {
			out = append(out, item)
			replaced = true
			continue
		}

		out = append(out, existing)
	}

	if !replaced {
		out = append(out, item)
	}

	return out
}

func remove[T any](items []T, key string, id func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, existing := range items {
		if id(existing) != key {
			out = append(out, existing)
		}
	}

	return out
}
