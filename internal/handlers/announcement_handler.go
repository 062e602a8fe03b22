package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"polifund/grant-matcher/internal/models"
	"polifund/grant-matcher/internal/repositories"
)

type AnnouncementHandler struct {
	annRepo repositories.AnnouncementRepository
}

func NewAnnouncementHandler(annRepo repositories.AnnouncementRepository) *AnnouncementHandler {
	return &AnnouncementHandler{
		annRepo: annRepo,
	}
}

// HandleUpsert handles POST /announcements: a batch of announcements
// already normalized by the ingestion collaborator. Normalization of
// upstream source formats does not happen here.
func (h *AnnouncementHandler) HandleUpsert(c *fiber.Ctx) error {
	var req models.AnnouncementUpsertRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if len(req.Announcements) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "announcements requires at least one entry",
		})
	}

	for i, ann := range req.Announcements {
		if ann.AnnID == "" || ann.Title == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("announcement %d: annId and title are required", i),
			})
		}
		if ann.MaxAmount < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("announcement %s: maxAmount must be non-negative", ann.AnnID),
			})
		}
	}

	if err := h.annRepo.Upsert(req.Announcements); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store announcements",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.AnnouncementUpsertResponse{
		Upserted: len(req.Announcements),
	})
}

// HandleList handles GET /announcements.
func (h *AnnouncementHandler) HandleList(c *fiber.Ctx) error {
	announcements, err := h.annRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list announcements",
		})
	}

	return c.JSON(models.AnnouncementListResponse{
		Announcements: announcements,
		Count:         len(announcements),
	})
}
