package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/paddynes2/stride-process-app/internal/models"
	appErr "github.com/paddynes2/stride-process-app/pkg/errors"
	"gorm.io/gorm"
)

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

type ConnectionRepository interface {
	BaseRepository[models.Connection]
	ListByTab(ctx context.Context, workspaceID, tabID uuid.UUID) ([]models.Connection, error)
}

type connectionRepository struct {
	BaseRepository[models.Connection]
	db *gorm.DB
}

func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &connectionRepository{BaseRepository: NewBaseRepository[models.Connection](db), db: db}
}

// Create inserts a connection, translating the unique-index violation on
// (tab_id, source_step_id, target_step_id) into a duplicate error so the
// API can answer 409 instead of a generic failure.
func (r *connectionRepository) Create(ctx context.Context, conn *models.Connection) error {
	if err := r.db.WithContext(ctx).Create(conn).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return appErr.New(appErr.CodeDuplicate, "Connection already exists between these steps")
		}
		return appErr.Wrap(err, appErr.CodeCreateFailed, "create connection failed")
	}
	return nil
}

func (r *connectionRepository) ListByTab(ctx context.Context, workspaceID, tabID uuid.UUID) ([]models.Connection, error) {
	var out []models.Connection
	q := r.db.WithContext(ctx).Where("workspace_id = ?", workspaceID)
	if tabID != uuid.Nil {
		q = q.Where("tab_id = ?", tabID)
	}
	if err := q.Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeQueryFailed, "list connections failed")
	}
	return out, nil
}
