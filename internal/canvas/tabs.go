package canvas

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/paddynes2/stride-process-app/internal/client"
	"github.com/paddynes2/stride-process-app/internal/models"
	appErr "github.com/paddynes2/stride-process-app/pkg/errors"
)

// Session tracks the tab strip of one open workspace: the ordered tab
// list and which tab is active. Tab mutations go through the gateway and
// the local list is refreshed from the confirmed records, so ordering
// always reflects what the server assigned.
type Session struct {
	mu          sync.Mutex
	gw          *client.Client
	notify      Notifier
	workspaceID uuid.UUID
	tabs        []models.Tab
	activeTabID uuid.UUID
}

func NewSession(gw *client.Client, notify Notifier, workspaceID uuid.UUID) *Session {
	if notify == nil {
		notify = LogNotifier{}
	}
	return &Session{gw: gw, notify: notify, workspaceID: workspaceID}
}

// Refresh reloads the tab list from the server. The active tab is kept
// when it still exists, otherwise the first tab becomes active.
func (s *Session) Refresh(ctx context.Context) error {
	tabs, err := s.gw.ListTabs(ctx, s.workspaceID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tabs = tabs
	if s.indexOfLocked(s.activeTabID) < 0 {
		s.activeTabID = uuid.Nil
		if len(tabs) > 0 {
			s.activeTabID = tabs[0].ID
		}
	}
	return nil
}

// Tabs returns a copy of the current tab list in position order.
func (s *Session) Tabs() []models.Tab {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Tab, len(s.tabs))
	copy(out, s.tabs)
	return out
}

// ActiveTabID returns the id of the active tab, or uuid.Nil when the
// session has not loaded yet.
func (s *Session) ActiveTabID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeTabID
}

// Activate switches the active tab. Unknown ids are ignored.
func (s *Session) Activate(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOfLocked(id) >= 0 {
		s.activeTabID = id
	}
}

// CreateTab adds a tab named "Tab N" where N is the next ordinal, then
// activates it. The server assigns the trailing position.
func (s *Session) CreateTab(ctx context.Context) (*models.Tab, error) {
	s.mu.Lock()
	name := fmt.Sprintf("Tab %d", len(s.tabs)+1)
	s.mu.Unlock()

	tab, err := s.gw.CreateTab(ctx, s.workspaceID, name)
	if err != nil {
		s.notify.Error("Failed to create tab")
		return nil, err
	}
	s.mu.Lock()
	s.tabs = append(s.tabs, *tab)
	s.activeTabID = tab.ID
	s.mu.Unlock()
	return tab, nil
}

// RenameTab persists a new tab name and applies the confirmed record.
func (s *Session) RenameTab(ctx context.Context, id uuid.UUID, name string) error {
	tab, err := s.gw.UpdateTab(ctx, id, client.Fields{"name": name})
	if err != nil {
		s.notify.Error("Failed to rename tab")
		return err
	}
	s.replaceTab(*tab)
	return nil
}

// SaveViewport persists the camera state of a tab. Viewport saves are
// fire-and-forget; a failure only surfaces in the log via the notifier.
func (s *Session) SaveViewport(ctx context.Context, id uuid.UUID, vp models.Viewport) {
	tab, err := s.gw.UpdateTab(ctx, id, client.Fields{"viewport": vp})
	if err != nil {
		return
	}
	s.replaceTab(*tab)
}

// DeleteTab removes a tab. The last remaining tab of a workspace cannot
// be deleted; the guard fires before any network call and the server
// enforces the same rule. When the active tab is deleted the first
// surviving tab becomes active.
func (s *Session) DeleteTab(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	if len(s.tabs) <= 1 {
		s.mu.Unlock()
		s.notify.Error("Cannot delete the last tab")
		return appErr.New(appErr.CodeValidation, "Cannot delete the last tab of a workspace")
	}
	s.mu.Unlock()

	if err := s.gw.DeleteTab(ctx, id); err != nil {
		s.notify.Error("Failed to delete tab")
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOfLocked(id); i >= 0 {
		s.tabs = append(s.tabs[:i:i], s.tabs[i+1:]...)
	}
	if s.activeTabID == id && len(s.tabs) > 0 {
		s.activeTabID = s.tabs[0].ID
	}
	return nil
}

func (s *Session) replaceTab(tab models.Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOfLocked(tab.ID); i >= 0 {
		s.tabs[i] = tab
	}
}

func (s *Session) indexOfLocked(id uuid.UUID) int {
	for i, t := range s.tabs {
		if t.ID == id {
			return i
		}
	}
	return -1
}
