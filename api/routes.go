package api

import "github.com/gofiber/fiber/v2"

func Register(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/srtf", handler.ShortestRemainingTimeFirst)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/priority", handler.Priority)
		v1.Post("/priority-preemptive", handler.PreemptivePriority)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Post("/all/upload", handler.UploadWorkload)
		v1.Get("/reports/:file", handler.DownloadReport)
		v1.Get("/summary", handler.Summary)
	}
}
