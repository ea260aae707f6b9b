package requests

import (
	"errors"
	"fmt"
	"strings"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/schedulers"
)

var ErrInvalidJob = errors.New("invalid job")

// Priority ranks; a lower value runs first.
const (
	PriorityHigh   = 1
	PriorityNormal = 2
	PriorityLow    = 3
)

var priorityLabels = map[string]int{
	"high":   PriorityHigh,
	"normal": PriorityNormal,
	"low":    PriorityLow,
}

// ParsePriority maps a priority label to its rank. Unknown labels are treated as low.
func ParsePriority(label string) int {
	if rank, ok := priorityLabels[strings.ToLower(strings.TrimSpace(label))]; ok {
		return rank
	}
	return PriorityLow
}

type Job struct {
	ProcessId   string `json:"process_id" form:"process_id"`
	ArrivalTime int    `json:"arrival_time" form:"arrival_time"`
	BurstTime   int    `json:"burst_time" form:"burst_time"`
	Priority    string `json:"priority" form:"priority"`
}

func (j Job) validate() error {
	if strings.TrimSpace(j.ProcessId) == "" {
		return fmt.Errorf("%w: empty process id", ErrInvalidJob)
	}
	if j.BurstTime < 1 {
		return fmt.Errorf("%w: pid %s: burst time must be at least 1, got %d", ErrInvalidJob, j.ProcessId, j.BurstTime)
	}
	if j.ArrivalTime < 0 {
		return fmt.Errorf("%w: pid %s: arrival time must not be negative, got %d", ErrInvalidJob, j.ProcessId, j.ArrivalTime)
	}
	return nil
}

type ScheduleRequests struct {
	Jobs []Job `json:"jobs"`
	// optional per-request overrides of the configured options
	Quantum               *int     `json:"quantum,omitempty"`
	ContextSwitchDuration *float64 `json:"context_switch_duration,omitempty"`
}

// Workload converts the jobs into processes, rejecting degenerate entries.
func (r ScheduleRequests) Workload() ([]core.Process, error) {
	return toWorkload(r.Jobs)
}

// Options applies the request overrides on top of defaults.
func (r ScheduleRequests) Options(defaults schedulers.Options) schedulers.Options {
	opts := defaults
	if r.Quantum != nil {
		opts.Quantum = *r.Quantum
	}
	if r.ContextSwitchDuration != nil {
		opts.ContextSwitchDuration = *r.ContextSwitchDuration
	}
	return opts
}

func toWorkload(jobs []Job) ([]core.Process, error) {
	if len(jobs) == 0 {
		return nil, ErrNoValidRecords
	}
	workload := make([]core.Process, 0, len(jobs))
	for _, j := range jobs {
		if err := j.validate(); err != nil {
			return nil, err
		}
		workload = append(workload, core.NewProcess(strings.TrimSpace(j.ProcessId), j.ArrivalTime, j.BurstTime, ParsePriority(j.Priority)))
	}
	if err := core.ValidateWorkload(workload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJob, err)
	}
	return workload, nil
}
