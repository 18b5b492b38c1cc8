// Package services holds read-model logic that spans repositories and is
// too heavy for a handler.
package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/paddynes2/stride-process-app/internal/canvas"
	"github.com/paddynes2/stride-process-app/internal/repository"
	"github.com/paddynes2/stride-process-app/pkg/logger"
	"go.uber.org/zap"
)

// SummaryService computes the workspace roll-up (status and executor
// counts, monthly hours) server-side, so dashboards don't need to pull
// every step over the wire.
type SummaryService interface {
	WorkspaceSummary(ctx context.Context, workspaceID uuid.UUID) (*canvas.Summary, error)
	TabSummary(ctx context.Context, workspaceID, tabID uuid.UUID) (*canvas.Summary, error)
}

type summaryService struct {
	stepRepo repository.StepRepository
}

func NewSummaryService(stepRepo repository.StepRepository) SummaryService {
	return &summaryService{stepRepo: stepRepo}
}

var _ SummaryService = (*summaryService)(nil)

// WorkspaceSummary aggregates every step in the workspace, across tabs.
func (s *summaryService) WorkspaceSummary(ctx context.Context, workspaceID uuid.UUID) (*canvas.Summary, error) {
	return s.summarize(ctx, workspaceID, uuid.Nil)
}

// TabSummary aggregates one tab's steps only.
func (s *summaryService) TabSummary(ctx context.Context, workspaceID, tabID uuid.UUID) (*canvas.Summary, error) {
	return s.summarize(ctx, workspaceID, tabID)
}

func (s *summaryService) summarize(ctx context.Context, workspaceID, tabID uuid.UUID) (*canvas.Summary, error) {
	steps, err := s.stepRepo.ListByTab(ctx, workspaceID, tabID)
	if err != nil {
		return nil, err
	}
	sum := canvas.Summarize(steps)
	logger.L().Debug("summary computed",
		zap.String("workspace_id", workspaceID.String()),
		zap.Int("steps", sum.StepCount),
	)
	return &sum, nil
}
