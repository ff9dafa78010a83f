package runner

import "fmt"

// Result is the single completion signal delivered by a background
// operation: a user-facing status message on success, an error otherwise.
type Result struct {
	Message string
	Err     error
}

// Go runs op on its own goroutine and returns a channel that delivers
// exactly one Result. A panic inside op is recovered and surfaced as an
// error, so a failed task never crashes the process. There is no
// cancellation: once started, an operation runs to completion or failure.
func Go(op func() (string, error)) <-chan Result {
	done := make(chan Result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- Result{Err: fmt.Errorf("unexpected failure: %v", r)}
			}
		}()
		msg, err := op()
		done <- Result{Message: msg, Err: err}
	}()
	return done
}
