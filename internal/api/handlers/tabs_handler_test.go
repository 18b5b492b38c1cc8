package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/paddynes2/stride-process-app/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tabsRouter(repo *stubTabRepo) chi.Router {
	h := NewTabsHandler(repo, newValidator())
	r := chi.NewRouter()
	r.Get("/tabs", h.List)
	r.Post("/tabs", h.Create)
	r.Patch("/tabs/{id}", h.Update)
	r.Delete("/tabs/{id}", h.Delete)
	return r
}

func TestTabDeleteRefusesLastTab(t *testing.T) {
	tab := models.Tab{ID: uuid.New(), WorkspaceID: uuid.New(), Name: "Main"}
	repo := &stubTabRepo{}
	repo.getFn = func(ctx context.Context, id any, dest *models.Tab) error {
		*dest = tab
		return nil
	}
	repo.countFn = func(ctx context.Context, workspaceID uuid.UUID) (int64, error) {
		return 1, nil
	}
	repo.deleteFn = func(ctx context.Context, id any) error {
		t.Fatal("last tab must never reach the delete path")
		return nil
	}

	rec, env := doRequest(t, tabsRouter(repo), http.MethodDelete, "/tabs/"+tab.ID.String(), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "validation", env.Error.Code)
	assert.Equal(t, "Cannot delete the last tab of a workspace", env.Error.Message)
}

func TestTabDeleteAllowedWithSiblings(t *testing.T) {
	tab := models.Tab{ID: uuid.New(), WorkspaceID: uuid.New(), Name: "Tab 2"}
	deleted := false
	repo := &stubTabRepo{}
	repo.getFn = func(ctx context.Context, id any, dest *models.Tab) error {
		*dest = tab
		return nil
	}
	repo.countFn = func(ctx context.Context, workspaceID uuid.UUID) (int64, error) {
		return 2, nil
	}
	repo.deleteFn = func(ctx context.Context, id any) error {
		deleted = true
		return nil
	}

	rec, env := doRequest(t, tabsRouter(repo), http.MethodDelete, "/tabs/"+tab.ID.String(), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, env.Error)
	assert.True(t, deleted)
}

func TestTabCreate(t *testing.T) {
	wsID := uuid.New()
	repo := &stubTabRepo{}
	repo.createFn = func(ctx context.Context, tab *models.Tab) error {
		tab.ID = uuid.New()
		tab.Position = 3
		return nil
	}

	rec, env := doRequest(t, tabsRouter(repo), http.MethodPost, "/tabs",
		map[string]any{"workspace_id": wsID.String(), "name": "Tab 4"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	var tab models.Tab
	require.NoError(t, json.Unmarshal(env.Data, &tab))
	assert.Equal(t, "Tab 4", tab.Name)
	assert.Equal(t, 3, tab.Position, "server assigns the trailing position")
}

func TestTabCreateRequiresName(t *testing.T) {
	rec, env := doRequest(t, tabsRouter(&stubTabRepo{}), http.MethodPost, "/tabs",
		map[string]any{"workspace_id": uuid.New().String(), "name": "  "})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "validation", env.Error.Code)
}

func TestTabUpdateViewport(t *testing.T) {
	tab := models.Tab{ID: uuid.New(), WorkspaceID: uuid.New(), Name: "Main"}
	var saved models.Tab
	repo := &stubTabRepo{}
	repo.getFn = func(ctx context.Context, id any, dest *models.Tab) error {
		*dest = tab
		return nil
	}
	repo.updateFn = func(ctx context.Context, obj *models.Tab) error {
		saved = *obj
		return nil
	}

	rec, _ := doRequest(t, tabsRouter(repo), http.MethodPatch, "/tabs/"+tab.ID.String(),
		map[string]any{"viewport": map[string]float64{"x": 10, "y": -5, "zoom": 0.8}})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, saved.Viewport)
	assert.Equal(t, 0.8, saved.Viewport.Zoom)
}

func TestTabListRequiresWorkspaceParam(t *testing.T) {
	rec, env := doRequest(t, tabsRouter(&stubTabRepo{}), http.MethodGet, "/tabs", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "validation", env.Error.Code)
}
