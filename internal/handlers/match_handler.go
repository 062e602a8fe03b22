package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"polifund/grant-matcher/internal/models"
	"polifund/grant-matcher/internal/repositories"
	"polifund/grant-matcher/internal/services"
)

type MatchHandler struct {
	matcher services.MatcherService
	runRepo repositories.MatchRunRepository
	worker  services.Worker
}

func NewMatchHandler(
	matcher services.MatcherService,
	runRepo repositories.MatchRunRepository,
	worker services.Worker,
) *MatchHandler {
	return &MatchHandler{
		matcher: matcher,
		runRepo: runRepo,
		worker:  worker,
	}
}

// HandleMatch handles POST /match: synchronous evaluation of a company
// profile against the stored announcement batch.
func (h *MatchHandler) HandleMatch(c *fiber.Ctx) error {
	req, ok := parseMatchRequest(c)
	if !ok {
		return nil
	}

	profile := req.Profile()
	response, err := h.matcher.RunMatch(c.Context(), &profile)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to run matching",
		})
	}

	return c.JSON(response)
}

// HandleCreateRun handles POST /match/runs: queues an asynchronous
// match run and returns its ID immediately.
func (h *MatchHandler) HandleCreateRun(c *fiber.Ctx) error {
	req, ok := parseMatchRequest(c)
	if !ok {
		return nil
	}

	run := &models.MatchRun{
		ID:          uuid.New(),
		CompanyName: req.CompanyName,
		Profile:     req.Profile(),
		Status:      models.RunStatusQueued,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.runRepo.Create(run); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create match run",
		})
	}

	h.worker.EnqueueRun(run.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.MatchRunResponse{
		ID:     run.ID.String(),
		Status: string(models.RunStatusQueued),
	})
}

// parseMatchRequest validates the shared request body: companyName and
// revenue are required, bizType and items need at least one entry.
// Everything else passes through as-is; the engine degrades gracefully
// on missing optional fields. On failure the 400 response has already
// been written and ok is false.
func parseMatchRequest(c *fiber.Ctx) (*models.MatchRequest, bool) {
	var req models.MatchRequest

	if err := c.BodyParser(&req); err != nil {
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
		return nil, false
	}

	if req.CompanyName == "" || req.Revenue == nil {
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "companyName and revenue are required",
		})
		return nil, false
	}

	if len(req.BizType) == 0 {
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "bizType requires at least one entry",
		})
		return nil, false
	}

	if len(req.Items) == 0 {
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "items requires at least one entry",
		})
		return nil, false
	}

	return &req, true
}
