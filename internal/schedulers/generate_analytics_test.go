package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/responses"
)

func TestGenerateResponse_EmptySimulation(t *testing.T) {
	r := generateResponse("Empty", simulation{}, DefaultOptions())

	assert.Zero(t, r.CpuUtilization)
	assert.Zero(t, r.AverageWaitingTime)
	assert.Empty(t, r.Details)
	assert.Len(t, r.Throughput, len(ThroughputCheckpoints))
}

func TestGenerateResponse_Throughput(t *testing.T) {
	workload := []core.Process{job("A", 0, 40), job("B", 0, 30), job("C", 0, 100)}

	r, err := ScheduleFirstComeFirstServe(workload, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []responses.ThroughputCheckpoint{
		{Time: 50, Completed: 1},
		{Time: 100, Completed: 2},
		{Time: 150, Completed: 2},
		{Time: 200, Completed: 3},
	}, r.Throughput)
	completed, ok := r.CompletedBy(200)
	assert.True(t, ok)
	assert.Equal(t, 3, completed)
	_, ok = r.CompletedBy(75)
	assert.False(t, ok)
}

func TestGenerateResponse_UtilizationChargesContextSwitches(t *testing.T) {
	workload := []core.Process{job("A", 0, 5), job("B", 1, 3), job("C", 2, 1)}

	r, err := ScheduleFirstComeFirstServe(workload, Options{Quantum: 10, ContextSwitchDuration: 0.5})
	require.NoError(t, err)

	// 9 units of work over a makespan of 9 plus 2 switches of 0.5
	assert.InDelta(t, 90.0, r.CpuUtilization, 1e-9)
}

func TestGenerateResponse_DetailsSortedByID(t *testing.T) {
	workload := []core.Process{job("C", 0, 1), job("A", 0, 1), job("B", 0, 1)}

	r, err := ScheduleFirstComeFirstServe(workload, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, r.Details, 3)
	assert.Equal(t, "A", r.Details[0].ProcessId)
	assert.Equal(t, "B", r.Details[1].ProcessId)
	assert.Equal(t, "C", r.Details[2].ProcessId)
}

func TestGenerateResponse_Report(t *testing.T) {
	workload := []core.Process{job("A", 0, 5), job("B", 1, 3), job("C", 2, 1)}

	r, err := ScheduleFirstComeFirstServe(workload, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "FCFS_Output.txt", r.FileName)
	assert.Contains(t, r.Report, "Algorithm Result: FCFS\n")
	assert.Contains(t, r.Report, "[ 0 ] - - A - - [ 5 ]\n[ 5 ] - - B - - [ 8 ]\n[ 8 ] - - C - - [ 9 ]\n")
	assert.Contains(t, r.Report, "b) Waiting Time:\n   Maximum: 6\n   Average: 3.33\n")
	assert.Contains(t, r.Report, "c) Turnaround Time:\n   Maximum: 7\n   Average: 6.33\n")
	assert.Contains(t, r.Report, "e) CPU Utilization: %99.9778\n")
	assert.Contains(t, r.Report, "f) Context Switches: 2\n")
	assert.Regexp(t, `\|\s+200\s+\|\s+3\s+\|`, r.Report)
}

func TestReportFileName(t *testing.T) {
	assert.Equal(t, "SJF_Non-Preemptive_Output.txt", reportFileName(ShortestJobFirstName))
	assert.Equal(t, "Round_Robin_Output.txt", reportFileName(RoundRobinName))
}
