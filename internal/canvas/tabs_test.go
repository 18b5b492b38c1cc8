package canvas

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/paddynes2/stride-process-app/internal/models"
	appErr "github.com/paddynes2/stride-process-app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tabFixture(workspaceID uuid.UUID, name string, position int) models.Tab {
	return models.Tab{ID: uuid.New(), WorkspaceID: workspaceID, Name: name, Position: position}
}

func TestSessionRefreshActivatesFirstTab(t *testing.T) {
	stub := newAPIStub(t)
	wsID := uuid.New()
	main := tabFixture(wsID, "Main", 0)
	second := tabFixture(wsID, "Tab 2", 1)

	stub.handle("/api/v1/tabs", func(w http.ResponseWriter, r *http.Request) {
		respondData(w, []models.Tab{main, second})
	})

	s := NewSession(stub.client(), &captureNotifier{}, wsID)
	require.NoError(t, s.Refresh(context.Background()))

	assert.Equal(t, main.ID, s.ActiveTabID())
	assert.Len(t, s.Tabs(), 2)
}

func TestSessionRefreshKeepsSurvivingActiveTab(t *testing.T) {
	stub := newAPIStub(t)
	wsID := uuid.New()
	main := tabFixture(wsID, "Main", 0)
	second := tabFixture(wsID, "Tab 2", 1)

	stub.handle("/api/v1/tabs", func(w http.ResponseWriter, r *http.Request) {
		respondData(w, []models.Tab{main, second})
	})

	s := NewSession(stub.client(), &captureNotifier{}, wsID)
	require.NoError(t, s.Refresh(context.Background()))
	s.Activate(second.ID)

	require.NoError(t, s.Refresh(context.Background()))
	assert.Equal(t, second.ID, s.ActiveTabID())
}

func TestSessionCreateTabNamesByOrdinalAndActivates(t *testing.T) {
	stub := newAPIStub(t)
	wsID := uuid.New()
	main := tabFixture(wsID, "Main", 0)

	stub.handle("GET /api/v1/tabs", func(w http.ResponseWriter, r *http.Request) {
		respondData(w, []models.Tab{main})
	})
	stub.handle("POST /api/v1/tabs", func(w http.ResponseWriter, r *http.Request) {
		respondData(w, tabFixture(wsID, "Tab 2", 1))
	})

	s := NewSession(stub.client(), &captureNotifier{}, wsID)
	require.NoError(t, s.Refresh(context.Background()))

	tab, err := s.CreateTab(context.Background())
	require.NoError(t, err)

	req, _ := stub.lastRequest()
	assert.Equal(t, "Tab 2", req.Body["name"])
	assert.Equal(t, tab.ID, s.ActiveTabID())
	assert.Len(t, s.Tabs(), 2)
}

func TestSessionDeleteLastTabRefusedBeforeNetwork(t *testing.T) {
	stub := newAPIStub(t)
	wsID := uuid.New()
	main := tabFixture(wsID, "Main", 0)

	stub.handle("/api/v1/tabs", func(w http.ResponseWriter, r *http.Request) {
		respondData(w, []models.Tab{main})
	})

	notify := &captureNotifier{}
	s := NewSession(stub.client(), notify, wsID)
	require.NoError(t, s.Refresh(context.Background()))
	before := stub.requestCount()

	err := s.DeleteTab(context.Background(), main.ID)

	require.Error(t, err)
	assert.True(t, appErr.IsCode(err, appErr.CodeValidation))
	assert.Equal(t, before, stub.requestCount(), "last-tab refusal must not hit the server")
	assert.Equal(t, "Cannot delete the last tab", notify.lastError())
	assert.Len(t, s.Tabs(), 1)
}

func TestSessionDeleteActiveTabSwitchesToFirst(t *testing.T) {
	stub := newAPIStub(t)
	wsID := uuid.New()
	main := tabFixture(wsID, "Main", 0)
	second := tabFixture(wsID, "Tab 2", 1)

	stub.handle("GET /api/v1/tabs", func(w http.ResponseWriter, r *http.Request) {
		respondData(w, []models.Tab{main, second})
	})
	stub.handle("DELETE /api/v1/tabs/"+second.ID.String(), func(w http.ResponseWriter, r *http.Request) {
		respondData(w, map[string]bool{"deleted": true})
	})

	s := NewSession(stub.client(), &captureNotifier{}, wsID)
	require.NoError(t, s.Refresh(context.Background()))
	s.Activate(second.ID)

	require.NoError(t, s.DeleteTab(context.Background(), second.ID))
	assert.Equal(t, main.ID, s.ActiveTabID())
	assert.Len(t, s.Tabs(), 1)
}

func TestSessionRenameTab(t *testing.T) {
	stub := newAPIStub(t)
	wsID := uuid.New()
	main := tabFixture(wsID, "Main", 0)

	stub.handle("GET /api/v1/tabs", func(w http.ResponseWriter, r *http.Request) {
		respondData(w, []models.Tab{main})
	})
	stub.handle("PATCH /api/v1/tabs/"+main.ID.String(), func(w http.ResponseWriter, r *http.Request) {
		renamed := main
		renamed.Name = "Billing"
		respondData(w, renamed)
	})

	s := NewSession(stub.client(), &captureNotifier{}, wsID)
	require.NoError(t, s.Refresh(context.Background()))
	require.NoError(t, s.RenameTab(context.Background(), main.ID, "Billing"))

	assert.Equal(t, "Billing", s.Tabs()[0].Name)
}

func TestSessionSaveViewport(t *testing.T) {
	stub := newAPIStub(t)
	wsID := uuid.New()
	main := tabFixture(wsID, "Main", 0)

	stub.handle("GET /api/v1/tabs", func(w http.ResponseWriter, r *http.Request) {
		respondData(w, []models.Tab{main})
	})
	stub.handle("PATCH /api/v1/tabs/"+main.ID.String(), func(w http.ResponseWriter, r *http.Request) {
		saved := main
		saved.Viewport = &models.Viewport{X: 12, Y: -4, Zoom: 1.5}
		respondData(w, saved)
	})

	s := NewSession(stub.client(), &captureNotifier{}, wsID)
	require.NoError(t, s.Refresh(context.Background()))

	s.SaveViewport(context.Background(), main.ID, models.Viewport{X: 12, Y: -4, Zoom: 1.5})

	got := s.Tabs()[0]
	require.NotNil(t, got.Viewport)
	assert.Equal(t, 1.5, got.Viewport.Zoom)
}

func TestSessionActivateUnknownTabIgnored(t *testing.T) {
	stub := newAPIStub(t)
	wsID := uuid.New()
	main := tabFixture(wsID, "Main", 0)

	stub.handle("/api/v1/tabs", func(w http.ResponseWriter, r *http.Request) {
		respondData(w, []models.Tab{main})
	})

	s := NewSession(stub.client(), &captureNotifier{}, wsID)
	require.NoError(t, s.Refresh(context.Background()))

	s.Activate(uuid.New())
	assert.Equal(t, main.ID, s.ActiveTabID())
}
