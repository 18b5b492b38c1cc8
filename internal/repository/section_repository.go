package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/paddynes2/stride-process-app/internal/models"
	appErr "github.com/paddynes2/stride-process-app/pkg/errors"
	"gorm.io/gorm"
)

type SectionRepository interface {
	BaseRepository[models.Section]
	ListByTab(ctx context.Context, workspaceID, tabID uuid.UUID) ([]models.Section, error)
}

type sectionRepository struct {
	BaseRepository[models.Section]
	db *gorm.DB
}

func NewSectionRepository(db *gorm.DB) SectionRepository {
	return &sectionRepository{BaseRepository: NewBaseRepository[models.Section](db), db: db}
}

func (r *sectionRepository) ListByTab(ctx context.Context, workspaceID, tabID uuid.UUID) ([]models.Section, error) {
	var out []models.Section
	q := r.db.WithContext(ctx).Where("workspace_id = ?", workspaceID)
	if tabID != uuid.Nil {
		q = q.Where("tab_id = ?", tabID)
	}
	if err := q.Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeQueryFailed, "list sections failed")
	}
	return out, nil
}

// Delete orphans member steps before removing the section: section_id is a
// weak back-relation, never ownership, so steps survive their container.
func (r *sectionRepository) Delete(ctx context.Context, id any) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Step{}).Where("section_id = ?", id).Update("section_id", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Section{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return appErr.New(appErr.CodeNotFound, "section not found")
		}
		return nil
	})
	if err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return err
		}
		return appErr.Wrap(err, appErr.CodeDeleteFailed, "delete section failed")
	}
	return nil
}
