package core

import (
	"errors"
	"fmt"
)

// NotStarted marks a process that has never been dispatched.
const NotStarted = -1

var (
	ErrEmptyWorkload  = errors.New("workload has no processes")
	ErrInvalidBurst   = errors.New("burst time must be at least 1")
	ErrInvalidArrival = errors.New("arrival time must not be negative")
	ErrDuplicateID    = errors.New("duplicate process id")
)

// Process is one job of a workload together with its simulation state.
// Burst is never modified by a scheduler; Remaining is.
type Process struct {
	ID        string `json:"id" yaml:"id"`
	Arrival   int    `json:"arrival_time" yaml:"arrival_time"`
	Burst     int    `json:"burst_time" yaml:"burst_time"`
	Priority  int    `json:"priority" yaml:"priority"`
	Remaining int    `json:"remaining" yaml:"remaining"`
	Start     int    `json:"start" yaml:"start"`
	Finish    int    `json:"finish" yaml:"finish"`
}

func NewProcess(id string, arrival, burst, priority int) Process {
	return Process{
		ID:        id,
		Arrival:   arrival,
		Burst:     burst,
		Priority:  priority,
		Remaining: burst,
		Start:     NotStarted,
	}
}

// Reset clears everything a previous run wrote into the process.
func (p *Process) Reset() {
	p.Remaining = p.Burst
	p.Start = NotStarted
	p.Finish = 0
}

func (p Process) Finished() bool {
	return p.Finish > 0
}

func (p Process) TurnAround() int {
	return p.Finish - p.Arrival
}

func (p Process) Waiting() int {
	return p.TurnAround() - p.Burst
}

// Response is the delay between arrival and first dispatch.
func (p Process) Response() int {
	if p.Start == NotStarted {
		return 0
	}
	return p.Start - p.Arrival
}

// CloneWorkload returns a reset copy of the workload that shares no state with the input.
func CloneWorkload(workload []Process) []Process {
	clone := make([]Process, len(workload))
	copy(clone, workload)
	for i := range clone {
		clone[i].Reset()
	}
	return clone
}

// ValidateWorkload rejects workloads the schedulers cannot simulate to completion.
func ValidateWorkload(workload []Process) error {
	if len(workload) == 0 {
		return ErrEmptyWorkload
	}
	seen := make(map[string]struct{}, len(workload))
	for _, p := range workload {
		if p.Burst < 1 {
			return fmt.Errorf("pid %s: %w (got %d)", p.ID, ErrInvalidBurst, p.Burst)
		}
		if p.Arrival < 0 {
			return fmt.Errorf("pid %s: %w (got %d)", p.ID, ErrInvalidArrival, p.Arrival)
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("pid %s: %w", p.ID, ErrDuplicateID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
