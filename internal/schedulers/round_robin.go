package schedulers

import (
	"log"
	"sort"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/responses"
)

const RoundRobinName = "Round Robin"

func ScheduleRoundRobin(workload []core.Process, opts Options) (responses.ScheduleResponse, error) {
	log.Println("running roundRobin algorithm with timeQuantum = ", opts.Quantum)
	processes, err := prepare(workload, opts)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	// sort jobs by arrival time
	jobs := make([]*core.Process, len(processes))
	for i := range processes {
		jobs[i] = &processes[i]
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].Arrival < jobs[j].Arrival
	})
	enqueued := make([]bool, len(jobs))

	var (
		clock, done int
		switches    int
		active      *core.Process
		readyQueue  = make([]*core.Process, 0, len(jobs))
		tl          core.Timeline
	)
	admitArrivals := func() {
		for i, p := range jobs {
			if !enqueued[i] && p.Arrival <= clock {
				readyQueue = append(readyQueue, p)
				enqueued[i] = true
			}
		}
	}

	for done < len(jobs) {
		admitArrivals()
		if len(readyQueue) == 0 {
			tl.Idle(clock, clock+1)
			clock++
			continue
		}

		p := readyQueue[0]
		readyQueue = readyQueue[1:]
		if active != p {
			switches++
			active = p
		}
		if p.Start == core.NotStarted {
			p.Start = clock
		}

		slice := p.Remaining
		if slice > opts.Quantum {
			slice = opts.Quantum
		}
		start := clock
		clock += slice
		p.Remaining -= slice
		tl.Run(start, clock, p.ID)

		// arrivals during the slice queue up ahead of the preempted process
		admitArrivals()
		if p.Remaining > 0 {
			log.Println("pid:", p.ID, "quantum expired at", clock, "remaining", p.Remaining)
			readyQueue = append(readyQueue, p)
		} else {
			p.Finish = clock
			done++
		}
	}

	response := generateResponse(RoundRobinName, simulation{
		timeline:        tl,
		processes:       processes,
		contextSwitches: normalizedSwitches(switches),
		makespan:        clock,
	}, opts)
	return response, nil
}
