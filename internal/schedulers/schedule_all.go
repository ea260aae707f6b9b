package schedulers

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/responses"
)

// ErrPartialResults is returned by ScheduleAll when at least one algorithm failed to produce a report.
var ErrPartialResults = errors.New("some algorithms did not produce a report")

type ScheduleFunc func(workload []core.Process, opts Options) (responses.ScheduleResponse, error)

type Algorithm struct {
	Name     string
	Schedule ScheduleFunc
}

// Algorithms lists every supported algorithm in presentation order.
var Algorithms = []Algorithm{
	{Name: FirstComeFirstServeName, Schedule: ScheduleFirstComeFirstServe},
	{Name: ShortestJobFirstName, Schedule: ScheduleShortestJobFirst},
	{Name: ShortestRemainingTimeFirstName, Schedule: ScheduleShortestRemainingTimeFirst},
	{Name: RoundRobinName, Schedule: ScheduleRoundRobin},
	{Name: PriorityName, Schedule: SchedulePriority},
	{Name: PreemptivePriorityName, Schedule: SchedulePreemptivePriority},
}

type outcome struct {
	algorithm string
	response  responses.ScheduleResponse
	err       error
}

// ScheduleAll runs every algorithm concurrently, each on its own copy of the workload,
// and returns the reports in completion order. If any algorithm fails, the reports that
// did complete are returned together with an error wrapping ErrPartialResults.
func ScheduleAll(workload []core.Process, opts Options) ([]responses.ScheduleResponse, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := core.ValidateWorkload(workload); err != nil {
		return nil, err
	}
	return scheduleAll(workload, opts, Algorithms)
}

func scheduleAll(workload []core.Process, opts Options, algorithms []Algorithm) ([]responses.ScheduleResponse, error) {
	outcomes := make(chan outcome, len(algorithms))
	for _, algorithm := range algorithms {
		go func(algorithm Algorithm) {
			outcomes <- runAlgorithm(algorithm, core.CloneWorkload(workload), opts)
		}(algorithm)
	}

	results := make([]responses.ScheduleResponse, 0, len(algorithms))
	var errs []error
	for range algorithms {
		o := <-outcomes
		if o.err != nil {
			log.Println("algorithm", o.algorithm, "failed:", o.err)
			errs = append(errs, fmt.Errorf("%s: %w", o.algorithm, o.err))
			continue
		}
		results = append(results, o.response)
	}

	if len(errs) > 0 {
		return results, fmt.Errorf("%w (%d of %d reports): %w",
			ErrPartialResults, len(results), len(algorithms), errors.Join(errs...))
	}
	return results, nil
}

func runAlgorithm(algorithm Algorithm, workload []core.Process, opts Options) (o outcome) {
	o.algorithm = algorithm.Name
	defer func() {
		if r := recover(); r != nil {
			o.err = fmt.Errorf("panic: %v", r)
		}
	}()
	o.response, o.err = algorithm.Schedule(workload, opts)
	return o
}

// SortByAlgorithm orders results the way Algorithms lists them; unknown names go last.
func SortByAlgorithm(results []responses.ScheduleResponse) {
	rank := make(map[string]int, len(Algorithms))
	for i, a := range Algorithms {
		rank[a.Name] = i
	}
	position := func(name string) int {
		if i, ok := rank[name]; ok {
			return i
		}
		return len(Algorithms)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return position(results[i].Algorithm) < position(results[j].Algorithm)
	})
}

// Lookup finds an algorithm by its report name.
func Lookup(name string) (Algorithm, bool) {
	for _, a := range Algorithms {
		if a.Name == name {
			return a, true
		}
	}
	return Algorithm{}, false
}
