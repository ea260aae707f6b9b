package schedulers

import (
	"log"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/responses"
)

const (
	ShortestJobFirstName           = "SJF Non-Preemptive"
	ShortestRemainingTimeFirstName = "SJF Preemptive"
)

// ScheduleShortestJobFirst runs the ready process with the smallest burst to completion.
func ScheduleShortestJobFirst(workload []core.Process, opts Options) (responses.ScheduleResponse, error) {
	log.Println("running sjf algorithm ...")
	processes, err := prepare(workload, opts)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	return generateResponse(ShortestJobFirstName, runNonPreemptive(processes, byBurst), opts), nil
}

// ScheduleShortestRemainingTimeFirst is the preemptive SJF: at every clock unit the ready
// process with the least remaining time holds the CPU.
func ScheduleShortestRemainingTimeFirst(workload []core.Process, opts Options) (responses.ScheduleResponse, error) {
	log.Println("running srtf algorithm ...")
	processes, err := prepare(workload, opts)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	return generateResponse(ShortestRemainingTimeFirstName, runPreemptive(processes, byRemaining), opts), nil
}
