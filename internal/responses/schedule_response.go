package responses

import "cpu-scheduler-simulator/internal/core"

type ProcessResponse struct {
	ProcessId      string `json:"process_id" yaml:"process_id"`
	Priority       int    `json:"priority" yaml:"priority"`
	ArrivalTime    int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime      int    `json:"burst_time" yaml:"burst_time"`
	StartTime      int    `json:"start_time" yaml:"start_time"`
	FinishTime     int    `json:"finish_time" yaml:"finish_time"`
	ResponseTime   int    `json:"response_time" yaml:"response_time"`
	TurnAroundTime int    `json:"turn_around_time" yaml:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time" yaml:"waiting_time"`
}

// ThroughputCheckpoint counts processes finished at or before Time.
type ThroughputCheckpoint struct {
	Time      int `json:"time" yaml:"time"`
	Completed int `json:"completed" yaml:"completed"`
}

// ScheduleResponse is the report of one algorithm run. It is built once and not modified afterwards.
type ScheduleResponse struct {
	Algorithm             string                 `json:"algorithm" yaml:"algorithm"`
	Makespan              int                    `json:"makespan" yaml:"makespan"`
	IdleTime              int                    `json:"idle_time" yaml:"idle_time"`
	ContextSwitches       int                    `json:"context_switches" yaml:"context_switches"`
	AverageWaitingTime    float64                `json:"average_waiting_time" yaml:"average_waiting_time"`
	MaxWaitingTime        int                    `json:"max_waiting_time" yaml:"max_waiting_time"`
	AverageTurnAroundTime float64                `json:"average_turn_around_time" yaml:"average_turn_around_time"`
	MaxTurnAroundTime     int                    `json:"max_turn_around_time" yaml:"max_turn_around_time"`
	AverageResponseTime   float64                `json:"average_response_time" yaml:"average_response_time"`
	CpuUtilization        float64                `json:"cpu_utilization" yaml:"cpu_utilization"`
	Throughput            []ThroughputCheckpoint `json:"throughput" yaml:"throughput"`
	Timeline              []core.Segment         `json:"timeline" yaml:"timeline"`
	Details               []ProcessResponse      `json:"details" yaml:"details"`
	Report                string                 `json:"report" yaml:"report"`
	FileName              string                 `json:"file_name" yaml:"file_name"`
}

// CompletedBy returns the throughput count recorded for checkpoint t, or false if t is not a checkpoint.
func (r ScheduleResponse) CompletedBy(t int) (int, bool) {
	for _, c := range r.Throughput {
		if c.Time == t {
			return c.Completed, true
		}
	}
	return 0, false
}
