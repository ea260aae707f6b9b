package schedulers

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/responses"
	"cpu-scheduler-simulator/internal/util"
)

// ThroughputCheckpoints are the fixed clock values at which completed processes are counted.
var ThroughputCheckpoints = [...]int{50, 100, 150, 200}

func generateResponse(algorithm string, sim simulation, opts Options) responses.ScheduleResponse {
	proccessDetails := generateProcessDetails(sim.processes)
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(proccessDetails)
	maxWaitingTime, maxTurnAroundTime := util.CalculateMax(proccessDetails)

	var completedWork int
	for _, d := range proccessDetails {
		completedWork += d.BurstTime
	}

	throughput := make([]responses.ThroughputCheckpoint, 0, len(ThroughputCheckpoints))
	for _, t := range ThroughputCheckpoints {
		completed := 0
		for _, d := range proccessDetails {
			if d.FinishTime <= t {
				completed++
			}
		}
		throughput = append(throughput, responses.ThroughputCheckpoint{Time: t, Completed: completed})
	}

	var utilization float64
	if sim.makespan > 0 {
		elapsed := float64(sim.makespan) + float64(sim.contextSwitches)*opts.ContextSwitchDuration
		utilization = float64(completedWork) / elapsed * 100
	}

	response := responses.ScheduleResponse{
		Algorithm:             algorithm,
		Makespan:              sim.makespan,
		IdleTime:              sim.timeline.IdleTime(),
		ContextSwitches:       sim.contextSwitches,
		AverageWaitingTime:    averageWaitingTime,
		MaxWaitingTime:        maxWaitingTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		MaxTurnAroundTime:     maxTurnAroundTime,
		AverageResponseTime:   averageResponseTime,
		CpuUtilization:        utilization,
		Throughput:            throughput,
		Timeline:              sim.timeline.Segments(),
		Details:               proccessDetails,
		FileName:              reportFileName(algorithm),
	}
	response.Report = renderReport(response)

	log.Printf("%s finished: makespan=%d context switches=%d utilization=%.4f",
		algorithm, response.Makespan, response.ContextSwitches, response.CpuUtilization)
	return response
}

// generateProcessDetails covers finished processes only, ordered by id.
func generateProcessDetails(processes []core.Process) []responses.ProcessResponse {
	details := make([]responses.ProcessResponse, 0, len(processes))
	for _, p := range processes {
		if !p.Finished() {
			continue
		}
		details = append(details, responses.ProcessResponse{
			ProcessId:      p.ID,
			Priority:       p.Priority,
			ArrivalTime:    p.Arrival,
			BurstTime:      p.Burst,
			StartTime:      p.Start,
			FinishTime:     p.Finish,
			ResponseTime:   p.Response(),
			TurnAroundTime: p.TurnAround(),
			WaitingTime:    p.Waiting(),
		})
	}
	sort.SliceStable(details, func(i, j int) bool {
		return details[i].ProcessId < details[j].ProcessId
	})
	return details
}

func reportFileName(algorithm string) string {
	return strings.ReplaceAll(algorithm, " ", "_") + "_Output.txt"
}

func renderReport(r responses.ScheduleResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Algorithm Result: %s\n", r.Algorithm)
	b.WriteString(strings.Repeat("-", 30) + "\n")

	b.WriteString("a) Timeline:\n")
	for _, s := range r.Timeline {
		fmt.Fprintf(&b, "[ %d ] - - %s - - [ %d ]\n", s.Start, s.Label, s.End)
	}

	fmt.Fprintf(&b, "\nb) Waiting Time:\n   Maximum: %d\n   Average: %.2f\n", r.MaxWaitingTime, r.AverageWaitingTime)
	fmt.Fprintf(&b, "c) Turnaround Time:\n   Maximum: %d\n   Average: %.2f\n", r.MaxTurnAroundTime, r.AverageTurnAroundTime)

	b.WriteString("d) Throughput:\n")
	table := tablewriter.NewWriter(&b)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"T", "Completed"})
	for _, c := range r.Throughput {
		table.Append([]string{fmt.Sprint(c.Time), fmt.Sprint(c.Completed)})
	}
	table.Render()

	fmt.Fprintf(&b, "e) CPU Utilization: %%%.4f\n", r.CpuUtilization)
	fmt.Fprintf(&b, "f) Context Switches: %d\n", r.ContextSwitches)
	return b.String()
}
