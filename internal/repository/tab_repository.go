package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/paddynes2/stride-process-app/internal/models"
	appErr "github.com/paddynes2/stride-process-app/pkg/errors"
	"gorm.io/gorm"
)

type TabRepository interface {
	BaseRepository[models.Tab]
	ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]models.Tab, error)
	CountByWorkspace(ctx context.Context, workspaceID uuid.UUID) (int64, error)
}

type tabRepository struct {
	BaseRepository[models.Tab]
	db *gorm.DB
}

func NewTabRepository(db *gorm.DB) TabRepository {
	return &tabRepository{BaseRepository: NewBaseRepository[models.Tab](db), db: db}
}

// Create assigns position = max(existing)+1 (0 when the workspace has no
// tabs) inside a transaction so concurrent creates cannot collide.
func (r *tabRepository) Create(ctx context.Context, tab *models.Tab) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxPos *int
		if err := tx.Model(&models.Tab{}).
			Where("workspace_id = ?", tab.WorkspaceID).
			Select("MAX(position)").Scan(&maxPos).Error; err != nil {
			return err
		}
		if maxPos != nil {
			tab.Position = *maxPos + 1
		} else {
			tab.Position = 0
		}
		return tx.Create(tab).Error
	})
	if err != nil {
		return appErr.Wrap(err, appErr.CodeCreateFailed, "create tab failed")
	}
	return nil
}

func (r *tabRepository) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]models.Tab, error) {
	var out []models.Tab
	if err := r.db.WithContext(ctx).Where("workspace_id = ?", workspaceID).Order("position ASC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeQueryFailed, "list tabs failed")
	}
	return out, nil
}

func (r *tabRepository) CountByWorkspace(ctx context.Context, workspaceID uuid.UUID) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Tab{}).Where("workspace_id = ?", workspaceID).Count(&n).Error; err != nil {
		return 0, appErr.Wrap(err, appErr.CodeQueryFailed, "count tabs failed")
	}
	return n, nil
}
