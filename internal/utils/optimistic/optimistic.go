// Package optimistic applies a change locally before it is durable and
// compensates when persisting it fails.
package optimistic

import (
	"context"
	"errors"
	"fmt"
)

// ErrStepIncomplete is returned when a Step is missing one of its functions.
var ErrStepIncomplete = errors.New("optimistic step requires apply, persist and revert")

// Step describes one optimistic change.
//
// Apply makes the change visible locally and must not fail. Persist makes it
// durable. Revert restores the local state captured before Apply and runs only
// when Persist fails.
type Step struct {
	Apply   func()
	Persist func(ctx context.Context) error
	Revert  func()
}

// Apply runs step and returns the Persist error, if any, after Revert has run.
// Readers may observe the applied value between Apply and Persist.
func Apply(ctx context.Context, step Step) error {
	if step.Apply == nil || step.Persist == nil || step.Revert == nil {
		return ErrStepIncomplete
	}

	step.Apply()
	if err := step.Persist(ctx); err != nil {
		step.Revert()
		return fmt.Errorf("persist failed, local change reverted: %w", err)
	}
	return nil
}
