package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/paddynes2/stride-process-app/internal/models"
	appErr "github.com/paddynes2/stride-process-app/pkg/errors"
	"gorm.io/gorm"
)

type WorkspaceRepository interface {
	BaseRepository[models.Workspace]
	// Bootstrap creates a workspace together with its default tab so a
	// workspace is never observable without at least one tab.
	Bootstrap(ctx context.Context, ws *models.Workspace) error
	GetWithTabs(ctx context.Context, id uuid.UUID, dest *models.Workspace) error
	List(ctx context.Context) ([]models.Workspace, error)
}

type workspaceRepository struct {
	BaseRepository[models.Workspace]
	db *gorm.DB
}

func NewWorkspaceRepository(db *gorm.DB) WorkspaceRepository {
	return &workspaceRepository{BaseRepository: NewBaseRepository[models.Workspace](db), db: db}
}

func (r *workspaceRepository) Bootstrap(ctx context.Context, ws *models.Workspace) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ws).Error; err != nil {
			return err
		}
		tab := models.Tab{WorkspaceID: ws.ID, Name: "Main", Position: 0}
		if err := tx.Create(&tab).Error; err != nil {
			return err
		}
		ws.Tabs = []models.Tab{tab}
		return nil
	})
	if err != nil {
		return appErr.Wrap(err, appErr.CodeCreateFailed, "bootstrap workspace failed")
	}
	return nil
}

func (r *workspaceRepository) GetWithTabs(ctx context.Context, id uuid.UUID, dest *models.Workspace) error {
	err := r.db.WithContext(ctx).
		Preload("Tabs", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(dest, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return appErr.New(appErr.CodeNotFound, "workspace not found")
		}
		return appErr.Wrap(err, appErr.CodeQueryFailed, "get workspace failed")
	}
	return nil
}

func (r *workspaceRepository) List(ctx context.Context) ([]models.Workspace, error) {
	var out []models.Workspace
	if err := r.db.WithContext(ctx).Where("is_active = true").Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeQueryFailed, "list workspaces failed")
	}
	return out, nil
}
