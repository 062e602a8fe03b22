package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"polifund/grant-matcher/internal/models"
	"polifund/grant-matcher/internal/repositories"
)

type ResultHandler struct {
	runRepo repositories.MatchRunRepository
}

func NewResultHandler(runRepo repositories.MatchRunRepository) *ResultHandler {
	return &ResultHandler{
		runRepo: runRepo,
	}
}

// HandleGetRun handles GET /match/runs/:id.
func (h *ResultHandler) HandleGetRun(c *fiber.Ctx) error {
	idParam := c.Params("id")
	runID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid match run ID format",
		})
	}

	run, err := h.runRepo.FindByID(runID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Match run not found",
		})
	}

	response := models.MatchRunResultResponse{
		ID:     run.ID.String(),
		Status: string(run.Status),
	}

	if run.Status == models.RunStatusCompleted {
		response.Result = run.Result
	}

	if run.Status == models.RunStatusFailed && run.ErrorMessage != nil {
		response.ErrorMessage = run.ErrorMessage
	}

	return c.JSON(response)
}
