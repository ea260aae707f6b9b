package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cpu-scheduler-simulator/internal/responses"
)

func TestCalculateAverage(t *testing.T) {
	details := []responses.ProcessResponse{
		{ProcessId: "A", WaitingTime: 0, ResponseTime: 0, TurnAroundTime: 5},
		{ProcessId: "B", WaitingTime: 4, ResponseTime: 4, TurnAroundTime: 7},
		{ProcessId: "C", WaitingTime: 6, ResponseTime: 6, TurnAroundTime: 7},
	}

	wait, response, turnaround := CalculateAverage(details)

	assert.InDelta(t, 10.0/3, wait, 1e-9)
	assert.InDelta(t, 10.0/3, response, 1e-9)
	assert.InDelta(t, 19.0/3, turnaround, 1e-9)
}

func TestCalculateAverage_Empty(t *testing.T) {
	wait, response, turnaround := CalculateAverage(nil)

	assert.Zero(t, wait)
	assert.Zero(t, response)
	assert.Zero(t, turnaround)
}

func TestCalculateMax(t *testing.T) {
	details := []responses.ProcessResponse{
		{WaitingTime: 3, TurnAroundTime: 10},
		{WaitingTime: 9, TurnAroundTime: 4},
	}

	maxWait, maxTurnaround := CalculateMax(details)

	assert.Equal(t, 9, maxWait)
	assert.Equal(t, 10, maxTurnaround)
}
