package schedulers

import (
	"errors"
	"fmt"
)

const (
	DefaultQuantum               = 10
	DefaultContextSwitchDuration = 0.001
)

var ErrInvalidOptions = errors.New("invalid scheduler options")

// Options holds the per-run configuration shared by all algorithms.
// ContextSwitchDuration only weighs into CPU utilization; it never advances the clock.
type Options struct {
	Quantum               int
	ContextSwitchDuration float64
}

func DefaultOptions() Options {
	return Options{
		Quantum:               DefaultQuantum,
		ContextSwitchDuration: DefaultContextSwitchDuration,
	}
}

func (o Options) Validate() error {
	if o.Quantum < 1 {
		return fmt.Errorf("%w: quantum must be positive, got %d", ErrInvalidOptions, o.Quantum)
	}
	if o.ContextSwitchDuration < 0 {
		return fmt.Errorf("%w: context switch duration must not be negative, got %g", ErrInvalidOptions, o.ContextSwitchDuration)
	}
	return nil
}
