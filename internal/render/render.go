// Package render turns schedule responses into text for terminals and files.
package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/responses"
)

// Summary writes one comparison row per algorithm.
func Summary(w io.Writer, results []responses.ScheduleResponse) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Wait", "Avg Turnaround", "Utilization %", "Context Switches", "Done by T=200"})
	for _, r := range results {
		completed, _ := r.CompletedBy(200)
		table.Append([]string{
			r.Algorithm,
			fmt.Sprintf("%.2f", r.AverageWaitingTime),
			fmt.Sprintf("%.2f", r.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", r.CpuUtilization),
			fmt.Sprint(r.ContextSwitches),
			fmt.Sprint(completed),
		})
	}
	table.Render()
}

// Schedule writes the per-process table of one response.
func Schedule(w io.Writer, r responses.ScheduleResponse) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Start", "Wait", "Turnaround", "Exit"})
	for _, d := range r.Details {
		table.Append([]string{
			d.ProcessId,
			fmt.Sprint(d.Priority),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.StartTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.FinishTime),
		})
	}
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", r.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", r.AverageTurnAroundTime),
		fmt.Sprintf("Makespan\n%d", r.Makespan)})
	table.Render()
}

// Gantt draws the timeline as a row of labelled cells followed by their start times.
func Gantt(w io.Writer, timeline []core.Segment) {
	_, _ = fmt.Fprint(w, "|")
	for _, s := range timeline {
		padding := strings.Repeat(" ", max(0, 8-len(s.Label))/2)
		_, _ = fmt.Fprint(w, padding, s.Label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, s := range timeline {
		_, _ = fmt.Fprint(w, s.Start, "\t")
		if i == len(timeline)-1 {
			_, _ = fmt.Fprint(w, s.End)
		}
	}
	_, _ = fmt.Fprintln(w)
}

// Title writes the algorithm name framed by dashes.
func Title(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// WriteReports stores every report under its file name in dir and returns the written paths.
func WriteReports(dir string, results []responses.ScheduleResponse) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating report dir: %w", err)
	}
	paths := make([]string, 0, len(results))
	for _, r := range results {
		path := filepath.Join(dir, r.FileName)
		if err := os.WriteFile(path, []byte(r.Report), 0o644); err != nil {
			return paths, fmt.Errorf("writing %s: %w", r.FileName, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
