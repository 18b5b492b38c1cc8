package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/paddynes2/stride-process-app/internal/models"
	appErr "github.com/paddynes2/stride-process-app/pkg/errors"
)

// stubBase backs the repository interfaces with function fields so each
// test wires exactly the behavior it asserts.
type stubBase[T any] struct {
	createFn func(ctx context.Context, obj *T) error
	getFn    func(ctx context.Context, id any, dest *T) error
	updateFn func(ctx context.Context, obj *T) error
	deleteFn func(ctx context.Context, id any) error
}

func (s *stubBase[T]) Create(ctx context.Context, obj *T) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, obj)
}

func (s *stubBase[T]) GetByID(ctx context.Context, id any, dest *T) error {
	if s.getFn == nil {
		return appErr.New(appErr.CodeNotFound, "entity not found")
	}
	return s.getFn(ctx, id, dest)
}

func (s *stubBase[T]) Update(ctx context.Context, obj *T) error {
	if s.updateFn == nil {
		return nil
	}
	return s.updateFn(ctx, obj)
}

func (s *stubBase[T]) Delete(ctx context.Context, id any) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

type stubStepRepo struct {
	stubBase[models.Step]
	listFn func(ctx context.Context, workspaceID, tabID uuid.UUID) ([]models.Step, error)
}

func (s *stubStepRepo) ListByTab(ctx context.Context, workspaceID, tabID uuid.UUID) ([]models.Step, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, workspaceID, tabID)
}

type stubSectionRepo struct {
	stubBase[models.Section]
	listFn func(ctx context.Context, workspaceID, tabID uuid.UUID) ([]models.Section, error)
}

func (s *stubSectionRepo) ListByTab(ctx context.Context, workspaceID, tabID uuid.UUID) ([]models.Section, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, workspaceID, tabID)
}

type stubConnectionRepo struct {
	stubBase[models.Connection]
	listFn func(ctx context.Context, workspaceID, tabID uuid.UUID) ([]models.Connection, error)
}

func (s *stubConnectionRepo) ListByTab(ctx context.Context, workspaceID, tabID uuid.UUID) ([]models.Connection, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, workspaceID, tabID)
}

type stubTabRepo struct {
	stubBase[models.Tab]
	listFn  func(ctx context.Context, workspaceID uuid.UUID) ([]models.Tab, error)
	countFn func(ctx context.Context, workspaceID uuid.UUID) (int64, error)
}

func (s *stubTabRepo) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]models.Tab, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, workspaceID)
}

func (s *stubTabRepo) CountByWorkspace(ctx context.Context, workspaceID uuid.UUID) (int64, error) {
	if s.countFn == nil {
		return 0, nil
	}
	return s.countFn(ctx, workspaceID)
}

type stubWorkspaceRepo struct {
	stubBase[models.Workspace]
	bootstrapFn   func(ctx context.Context, ws *models.Workspace) error
	getWithTabsFn func(ctx context.Context, id uuid.UUID, dest *models.Workspace) error
	listFn        func(ctx context.Context) ([]models.Workspace, error)
}

func (s *stubWorkspaceRepo) Bootstrap(ctx context.Context, ws *models.Workspace) error {
	if s.bootstrapFn == nil {
		return nil
	}
	return s.bootstrapFn(ctx, ws)
}

func (s *stubWorkspaceRepo) GetWithTabs(ctx context.Context, id uuid.UUID, dest *models.Workspace) error {
	if s.getWithTabsFn == nil {
		return appErr.New(appErr.CodeNotFound, "workspace not found")
	}
	return s.getWithTabsFn(ctx, id, dest)
}

func (s *stubWorkspaceRepo) List(ctx context.Context) ([]models.Workspace, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx)
}
