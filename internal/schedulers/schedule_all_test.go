package schedulers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/responses"
)

func mixedWorkload() []core.Process {
	return []core.Process{
		core.NewProcess("P1", 0, 8, 2),
		core.NewProcess("P2", 1, 4, 1),
		core.NewProcess("P3", 2, 9, 3),
		core.NewProcess("P4", 3, 5, 2),
		core.NewProcess("P5", 30, 2, 1),
		core.NewProcess("P6", 31, 6, 3),
		core.NewProcess("P7", 60, 3, 2),
		core.NewProcess("P8", 60, 3, 1),
	}
}

func TestScheduleAll_ReturnsEveryAlgorithm(t *testing.T) {
	results, err := ScheduleAll(mixedWorkload(), Options{Quantum: 3, ContextSwitchDuration: 0.001})
	require.NoError(t, err)
	require.Len(t, results, len(Algorithms))

	SortByAlgorithm(results)
	for i, a := range Algorithms {
		assert.Equal(t, a.Name, results[i].Algorithm)
	}
}

func TestScheduleAll_Invariants(t *testing.T) {
	workload := mixedWorkload()
	totalBurst := 0
	for _, p := range workload {
		totalBurst += p.Burst
	}

	results, err := ScheduleAll(workload, Options{Quantum: 3, ContextSwitchDuration: 0.001})
	require.NoError(t, err)

	for _, r := range results {
		t.Run(r.Algorithm, func(t *testing.T) {
			require.NotEmpty(t, r.Timeline)

			clock, busy := 0, 0
			for _, s := range r.Timeline {
				assert.Equal(t, clock, s.Start, "segments must tile the clock without gaps")
				assert.Greater(t, s.End, s.Start)
				if !s.Idle() {
					busy += s.Duration()
				}
				clock = s.End
			}
			assert.Equal(t, r.Makespan, clock)
			assert.Equal(t, totalBurst, busy)

			require.Len(t, r.Details, len(workload))
			for _, d := range r.Details {
				assert.Equal(t, d.FinishTime-d.ArrivalTime, d.TurnAroundTime)
				assert.Equal(t, d.TurnAroundTime-d.BurstTime, d.WaitingTime)
				assert.GreaterOrEqual(t, d.WaitingTime, 0)
				assert.GreaterOrEqual(t, d.StartTime, d.ArrivalTime)
			}

			for i := 1; i < len(r.Throughput); i++ {
				assert.LessOrEqual(t, r.Throughput[i-1].Completed, r.Throughput[i].Completed)
			}
			assert.Greater(t, r.CpuUtilization, 0.0)
			assert.LessOrEqual(t, r.CpuUtilization, 100.0)
		})
	}
}

func TestScheduleAll_Deterministic(t *testing.T) {
	opts := Options{Quantum: 2, ContextSwitchDuration: 0.001}

	first, err := ScheduleAll(mixedWorkload(), opts)
	require.NoError(t, err)
	second, err := ScheduleAll(mixedWorkload(), opts)
	require.NoError(t, err)

	SortByAlgorithm(first)
	SortByAlgorithm(second)
	assert.Equal(t, first, second)
}

func TestScheduleAll_LeavesWorkloadUntouched(t *testing.T) {
	workload := mixedWorkload()

	_, err := ScheduleAll(workload, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, mixedWorkload(), workload)
}

func TestScheduleAll_RejectsInvalidInputBeforeRunning(t *testing.T) {
	results, err := ScheduleAll([]core.Process{job("A", 0, -2)}, DefaultOptions())
	assert.ErrorIs(t, err, core.ErrInvalidBurst)
	assert.Nil(t, results)

	results, err = ScheduleAll(mixedWorkload(), Options{Quantum: -1})
	assert.ErrorIs(t, err, ErrInvalidOptions)
	assert.Nil(t, results)
}

func TestScheduleAll_ReportsFailedWorkers(t *testing.T) {
	broken := errors.New("broken")
	algorithms := []Algorithm{
		{Name: FirstComeFirstServeName, Schedule: ScheduleFirstComeFirstServe},
		{Name: "Panics", Schedule: func([]core.Process, Options) (responses.ScheduleResponse, error) {
			panic("boom")
		}},
		{Name: "Fails", Schedule: func([]core.Process, Options) (responses.ScheduleResponse, error) {
			return responses.ScheduleResponse{}, broken
		}},
	}

	results, err := scheduleAll(mixedWorkload(), DefaultOptions(), algorithms)

	require.Len(t, results, 1)
	assert.Equal(t, FirstComeFirstServeName, results[0].Algorithm)
	require.ErrorIs(t, err, ErrPartialResults)
	assert.ErrorIs(t, err, broken)
	assert.Contains(t, err.Error(), "Panics: panic: boom")
	assert.Contains(t, err.Error(), "1 of 3 reports")
}

func TestLookup(t *testing.T) {
	a, ok := Lookup(RoundRobinName)
	require.True(t, ok)
	assert.Equal(t, RoundRobinName, a.Name)

	_, ok = Lookup("Lottery")
	assert.False(t, ok)
}
