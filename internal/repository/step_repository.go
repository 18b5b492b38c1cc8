package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/paddynes2/stride-process-app/internal/models"
	appErr "github.com/paddynes2/stride-process-app/pkg/errors"
	"gorm.io/gorm"
)

type StepRepository interface {
	BaseRepository[models.Step]
	ListByTab(ctx context.Context, workspaceID, tabID uuid.UUID) ([]models.Step, error)
}

type stepRepository struct {
	BaseRepository[models.Step]
	db *gorm.DB
}

func NewStepRepository(db *gorm.DB) StepRepository {
	return &stepRepository{BaseRepository: NewBaseRepository[models.Step](db), db: db}
}

func (r *stepRepository) ListByTab(ctx context.Context, workspaceID, tabID uuid.UUID) ([]models.Step, error) {
	var out []models.Step
	q := r.db.WithContext(ctx).Where("workspace_id = ?", workspaceID)
	if tabID != uuid.Nil {
		q = q.Where("tab_id = ?", tabID)
	}
	if err := q.Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeQueryFailed, "list steps failed")
	}
	return out, nil
}

// Delete removes the step and every connection that references it as
// source or target, in one transaction.
func (r *stepRepository) Delete(ctx context.Context, id any) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("source_step_id = ? OR target_step_id = ?", id, id).Delete(&models.Connection{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Step{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return appErr.New(appErr.CodeNotFound, "step not found")
		}
		return nil
	})
	if err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return err
		}
		return appErr.Wrap(err, appErr.CodeDeleteFailed, "delete step failed")
	}
	return nil
}
