package schedulers

import (
	"log"
	"sort"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/responses"
)

const FirstComeFirstServeName = "FCFS"

func ScheduleFirstComeFirstServe(workload []core.Process, opts Options) (responses.ScheduleResponse, error) {
	log.Println("running fcfs algorithm ...")
	processes, err := prepare(workload, opts)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	// sort jobs by arrival time, keeping input order for equal arrivals
	jobs := make([]*core.Process, len(processes))
	for i := range processes {
		jobs[i] = &processes[i]
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].Arrival < jobs[j].Arrival
	})

	var (
		clock    int
		switches int
		lastID   string
		tl       core.Timeline
	)
	for i, p := range jobs {
		if clock < p.Arrival {
			tl.Idle(clock, p.Arrival)
			clock = p.Arrival
		}
		if i == 0 || lastID != p.ID {
			switches++
			lastID = p.ID
		}
		log.Println("pid:", p.ID, "dispatched at", clock)
		p.Start = clock
		clock += p.Burst
		p.Remaining = 0
		p.Finish = clock
		tl.Run(p.Start, clock, p.ID)
	}

	response := generateResponse(FirstComeFirstServeName, simulation{
		timeline:        tl,
		processes:       processes,
		contextSwitches: normalizedSwitches(switches),
		makespan:        clock,
	}, opts)
	return response, nil
}

// prepare validates the inputs and returns a private copy of the workload to simulate on.
func prepare(workload []core.Process, opts Options) ([]core.Process, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := core.ValidateWorkload(workload); err != nil {
		return nil, err
	}
	return core.CloneWorkload(workload), nil
}
