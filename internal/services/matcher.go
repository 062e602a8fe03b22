package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"polifund/grant-matcher/internal/matching"
	"polifund/grant-matcher/internal/models"
	"polifund/grant-matcher/internal/repositories"
)

type MatcherService interface {
	// RunMatch evaluates a profile against the full announcement store
	// and returns the ranked batch result.
	RunMatch(ctx context.Context, profile *models.CompanyProfile) (*models.MatchingResponse, error)

	// ProcessRun executes a queued match run end to end, persisting
	// the result or the failure.
	ProcessRun(ctx context.Context, runID uuid.UUID) error
}

type matcherService struct {
	annRepo repositories.AnnouncementRepository
	runRepo repositories.MatchRunRepository
	engine  *matching.Engine
}

func NewMatcherService(
	annRepo repositories.AnnouncementRepository,
	runRepo repositories.MatchRunRepository,
	engine *matching.Engine,
) MatcherService {
	return &matcherService{
		annRepo: annRepo,
		runRepo: runRepo,
		engine:  engine,
	}
}

func (s *matcherService) RunMatch(_ context.Context, profile *models.CompanyProfile) (*models.MatchingResponse, error) {
	announcements, err := s.annRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load announcements: %w", err)
	}

	return s.engine.Match(profile, announcements), nil
}

func (s *matcherService) ProcessRun(ctx context.Context, runID uuid.UUID) error {
	if err := s.runRepo.UpdateStatus(runID, models.RunStatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	run, err := s.runRepo.FindByID(runID)
	if err != nil {
		s.runRepo.UpdateError(runID, err.Error())
		return fmt.Errorf("failed to get match run: %w", err)
	}

	response, err := s.RunMatch(ctx, &run.Profile)
	if err != nil {
		s.runRepo.UpdateError(runID, err.Error())
		return fmt.Errorf("failed to run matching: %w", err)
	}

	if err := s.runRepo.UpdateResult(runID, response); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	log.Printf("✅ Match run %s completed: %d recommended, %d rejected\n",
		runID, response.MatchCount, len(response.Rejected))
	return nil
}
