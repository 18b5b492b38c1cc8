package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/paddynes2/stride-process-app/internal/models"
	appErr "github.com/paddynes2/stride-process-app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connectionsRouter(repo *stubConnectionRepo) chi.Router {
	h := NewConnectionsHandler(repo, newValidator())
	r := chi.NewRouter()
	r.Get("/connections", h.List)
	r.Post("/connections", h.Create)
	r.Delete("/connections/{id}", h.Delete)
	return r
}

func connectionBody(source, target string) map[string]any {
	return map[string]any{
		"workspace_id":   uuid.New().String(),
		"tab_id":         uuid.New().String(),
		"source_step_id": source,
		"target_step_id": target,
	}
}

func TestConnectionCreateRejectsSelfLoop(t *testing.T) {
	id := uuid.New().String()
	repo := &stubConnectionRepo{}
	repo.createFn = func(ctx context.Context, obj *models.Connection) error {
		t.Fatal("self-loop must be rejected before the repository")
		return nil
	}

	rec, env := doRequest(t, connectionsRouter(repo), http.MethodPost, "/connections", connectionBody(id, id))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "validation", env.Error.Code)
	assert.Equal(t, "source and target steps must be different", env.Error.Message)
}

func TestConnectionCreateMapsDuplicateTo409(t *testing.T) {
	repo := &stubConnectionRepo{}
	repo.createFn = func(ctx context.Context, obj *models.Connection) error {
		return appErr.New(appErr.CodeDuplicate, "Connection already exists between these steps")
	}

	rec, env := doRequest(t, connectionsRouter(repo), http.MethodPost, "/connections",
		connectionBody(uuid.New().String(), uuid.New().String()))

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "duplicate", env.Error.Code)
}

func TestConnectionCreate(t *testing.T) {
	repo := &stubConnectionRepo{}
	repo.createFn = func(ctx context.Context, obj *models.Connection) error {
		obj.ID = uuid.New()
		return nil
	}

	rec, env := doRequest(t, connectionsRouter(repo), http.MethodPost, "/connections",
		connectionBody(uuid.New().String(), uuid.New().String()))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, env.Error)
}

func TestConnectionCreateRequiresAllIDs(t *testing.T) {
	rec, env := doRequest(t, connectionsRouter(&stubConnectionRepo{}), http.MethodPost, "/connections",
		map[string]any{"workspace_id": uuid.New().String()})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "validation", env.Error.Code)
}

func TestConnectionDeleteNotFound(t *testing.T) {
	repo := &stubConnectionRepo{}
	repo.deleteFn = func(ctx context.Context, id any) error {
		return appErr.New(appErr.CodeNotFound, "entity not found")
	}

	rec, env := doRequest(t, connectionsRouter(repo), http.MethodDelete, "/connections/"+uuid.New().String(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "not_found", env.Error.Code)
}
