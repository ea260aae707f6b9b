package api

import (
	"bytes"
	"errors"
	"log"
	"sync"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler-simulator/config"
	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/render"
	"cpu-scheduler-simulator/internal/requests"
	"cpu-scheduler-simulator/internal/responses"
	"cpu-scheduler-simulator/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	PreemptivePriority(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	UploadWorkload(ctx *fiber.Ctx) error
	DownloadReport(ctx *fiber.Ctx) error
	Summary(ctx *fiber.Ctx) error
}

// SchedulerHandlerImpl keeps the results of the most recent run-all request so that
// reports can be downloaded afterwards; each new run replaces them.
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig

	mu          sync.RWMutex
	lastResults []responses.ScheduleResponse
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ScheduleFirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ScheduleShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ScheduleShortestRemainingTimeFirst)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ScheduleRoundRobin)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.SchedulePriority)
}

func (s *SchedulerHandlerImpl) PreemptivePriority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.SchedulePreemptivePriority)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}
	workload, err := request.Workload()
	if err != nil {
		return errorResponse(ctx, err)
	}
	return s.scheduleAll(ctx, workload, request.Options(s.config.Options()))
}

// UploadWorkload runs every algorithm on a CSV file sent as the "workload" form field.
// Form fields "quantum" and "context_switch_duration" override the configured options.
func (s *SchedulerHandlerImpl) UploadWorkload(ctx *fiber.Ctx) error {
	header, err := ctx.FormFile("workload")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing workload file"})
	}
	file, err := header.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "can not read workload file"})
	}
	defer file.Close()

	workload, err := requests.LoadCSV(file)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var overrides struct {
		Quantum               *int     `form:"quantum"`
		ContextSwitchDuration *float64 `form:"context_switch_duration"`
	}
	if err := ctx.BodyParser(&overrides); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}
	request := requests.ScheduleRequests{Quantum: overrides.Quantum, ContextSwitchDuration: overrides.ContextSwitchDuration}
	return s.scheduleAll(ctx, workload, request.Options(s.config.Options()))
}

func (s *SchedulerHandlerImpl) DownloadReport(ctx *fiber.Ctx) error {
	name := ctx.Params("file")
	for _, r := range s.results() {
		if r.FileName == name {
			ctx.Attachment(r.FileName)
			ctx.Type("txt")
			return ctx.SendString(r.Report)
		}
	}
	return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "report not found"})
}

func (s *SchedulerHandlerImpl) Summary(ctx *fiber.Ctx) error {
	results := s.results()
	if len(results) == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no simulation has been run yet"})
	}
	schedulers.SortByAlgorithm(results)

	var buf bytes.Buffer
	render.Summary(&buf, results)
	ctx.Type("txt")
	return ctx.Send(buf.Bytes())
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, schedule schedulers.ScheduleFunc) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}
	workload, err := request.Workload()
	if err != nil {
		return errorResponse(ctx, err)
	}
	response, err := schedule(workload, request.Options(s.config.Options()))
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) scheduleAll(ctx *fiber.Ctx, workload []core.Process, opts schedulers.Options) error {
	results, err := schedulers.ScheduleAll(workload, opts)
	if err != nil && !errors.Is(err, schedulers.ErrPartialResults) {
		return errorResponse(ctx, err)
	}

	s.mu.Lock()
	s.lastResults = results
	s.mu.Unlock()

	if err != nil {
		log.Println("run-all returned partial results:", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   err.Error(),
			"results": results,
		})
	}
	return ctx.JSON(results)
}

func (s *SchedulerHandlerImpl) results() []responses.ScheduleResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	results := make([]responses.ScheduleResponse, len(s.lastResults))
	copy(results, s.lastResults)
	return results
}

func errorResponse(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, requests.ErrInvalidJob),
		errors.Is(err, requests.ErrNoValidRecords),
		errors.Is(err, schedulers.ErrInvalidOptions),
		errors.Is(err, core.ErrEmptyWorkload),
		errors.Is(err, core.ErrInvalidBurst),
		errors.Is(err, core.ErrInvalidArrival),
		errors.Is(err, core.ErrDuplicateID):
		status = fiber.StatusBadRequest
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
