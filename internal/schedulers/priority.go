package schedulers

import (
	"log"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/responses"
)

const (
	PriorityName           = "Priority Non-Preemptive"
	PreemptivePriorityName = "Priority Preemptive"
)

// SchedulePriority runs the ready process with the lowest priority value to completion.
func SchedulePriority(workload []core.Process, opts Options) (responses.ScheduleResponse, error) {
	log.Println("running priority algorithm ...")
	processes, err := prepare(workload, opts)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	return generateResponse(PriorityName, runNonPreemptive(processes, byPriority), opts), nil
}

// SchedulePreemptivePriority lets a newly arrived process with a lower priority value
// take the CPU at the instant it arrives.
func SchedulePreemptivePriority(workload []core.Process, opts Options) (responses.ScheduleResponse, error) {
	log.Println("running preemptive priority algorithm ...")
	processes, err := prepare(workload, opts)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	return generateResponse(PreemptivePriorityName, runPreemptive(processes, byPriority), opts), nil
}
