package util

import "cpu-scheduler-simulator/internal/responses"

func CalculateAverage(proccessDetails []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	if len(proccessDetails) == 0 {
		return
	}

	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, proccess := range proccessDetails {
		waitingTimeSum += float64(proccess.WaitingTime)
		responseTimeSum += float64(proccess.ResponseTime)
		turnAroundTimeSum += float64(proccess.TurnAroundTime)
	}

	proccessCount := float64(len(proccessDetails))

	averageWaitingTime = waitingTimeSum / proccessCount
	averageResponseTime = responseTimeSum / proccessCount
	averageTurnAroundTime = turnAroundTimeSum / proccessCount
	return
}

func CalculateMax(proccessDetails []responses.ProcessResponse) (maxWaitingTime, maxTurnAroundTime int) {
	for _, proccess := range proccessDetails {
		if proccess.WaitingTime > maxWaitingTime {
			maxWaitingTime = proccess.WaitingTime
		}
		if proccess.TurnAroundTime > maxTurnAroundTime {
			maxTurnAroundTime = proccess.TurnAroundTime
		}
	}
	return
}
