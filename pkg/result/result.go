package result

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Result is a settled outcome of a call that may have failed: exactly one of
// fulfilled(value) or rejected(error) holds. It lets callers carry upstream
// failures through ordinary data flow instead of aborting on the first error,
// so one failing dependency degrades one section of a page rather than the
// whole response.
//
// A Result is an immutable value. It is created by Fulfilled, Rejected, From,
// Wrap or All and never mutated afterwards.
type Result[T any] struct {
	value     T
	err       error
	fulfilled bool
}

// Fulfilled constructs a successful Result carrying v.
func Fulfilled[T any](v T) Result[T] {
	return Result[T]{value: v, fulfilled: true}
}

// ErrRejected is the error a rejection carries when constructed with a nil
// error, so a rejected Result always fails err-checking callers.
var ErrRejected = errors.New("rejected")

// Rejected constructs a failed Result carrying err. A nil err is normalized
// to ErrRejected; callers that want "no data" as a success state must model
// it as Fulfilled with an empty value instead.
func Rejected[T any](err error) Result[T] {
	if err == nil {
		err = ErrRejected
	}
	return Result[T]{err: err}
}

// From adapts an already-settled (value, error) pair into a Result, so plain
// calls compose with Wrap-produced results uniformly.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Rejected[T](err)
	}
	return Fulfilled(v)
}

// Wrap converts fn into a function of the same shape that cannot fail: on
// success the returned function yields Fulfilled, on error or panic it invokes
// the optional onError hooks and yields Rejected. It never re-panics and never
// returns the error through a second channel. This is the mandatory call
// pattern for every upstream call that must not abort page assembly.
func Wrap[T any](fn func(context.Context) (T, error), onError ...func(error)) func(context.Context) Result[T] {
	return func(ctx context.Context) (res Result[T]) {
		defer func() {
			if r := recover(); r != nil {
				err := fmt.Errorf("wrapped call panicked: %v", r)
				for _, hook := range onError {
					hook(err)
				}
				res = Rejected[T](err)
			}
		}()

		v, err := fn(ctx)
		if err != nil {
			for _, hook := range onError {
				hook(err)
			}
			return Rejected[T](err)
		}
		return Fulfilled(v)
	}
}

// All runs every fn concurrently and waits for all of them to settle,
// returning one Result per slot in input order. A failure in one slot never
// affects any other slot.
func All[T any](ctx context.Context, fns ...func(context.Context) (T, error)) []Result[T] {
	results := make([]Result[T], len(fns))

	var wg sync.WaitGroup
	for i, fn := range fns {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = Wrap(fn)(ctx)
		}()
	}
	wg.Wait()

	return results
}

// IsFulfilled reports whether the Result holds a value.
func (r Result[T]) IsFulfilled() bool {
	return r.fulfilled
}

// GetOrThrow returns the value, or the original error unchanged. It is the
// escape hatch back to ordinary error semantics, used only where a caller
// truly cannot proceed without the value.
func (r Result[T]) GetOrThrow() (T, error) {
	if !r.fulfilled {
		var zero T
		// A zero-value Result never went through a constructor; it still
		// must not look like success.
		if r.err == nil {
			return zero, ErrRejected
		}
		return zero, r.err
	}
	return r.value, nil
}

// GetOrHandle returns the value, or the outcome of fallback applied to the
// carried error.
func (r Result[T]) GetOrHandle(fallback func(error) T) T {
	if !r.fulfilled {
		return fallback(r.err)
	}
	return r.value
}

// GetOrZero returns the value, or T's zero value when rejected.
func (r Result[T]) GetOrZero() T {
	return r.value
}

// Map applies f to a fulfilled Result's value. A rejected Result passes
// through carrying the same error it was constructed with.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if !r.fulfilled {
		return Rejected[U](r.err)
	}
	return Fulfilled(f(r.value))
}

// Handle is a total pattern match: exactly one of the two branches runs and
// its return value is the outcome.
func Handle[T, U any](r Result[T], fulfilled func(T) U, rejected func(error) U) U {
	if !r.fulfilled {
		return rejected(r.err)
	}
	return fulfilled(r.value)
}
