package canvas

import (
	"sync"
	"time"
)

// Debouncer delays a call until the input has been quiet for the window.
// Trailing-edge only: each Trigger cancels any pending call and schedules
// the new one, so the latest value always wins and earlier pending writes
// are superseded, not queued.
type Debouncer struct {
	mu    sync.Mutex
	d     time.Duration
	timer *time.Timer
}

func NewDebouncer(d time.Duration) *Debouncer {
	return &Debouncer{d: d}
}

// Trigger schedules fn after the debounce window, replacing any pending fn.
func (db *Debouncer) Trigger(fn func()) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.timer != nil {
		db.timer.Stop()
	}
	db.timer = time.AfterFunc(db.d, fn)
}

// Cancel drops any pending call. Used when the bound entity changes
// under the editor.
func (db *Debouncer) Cancel() {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.timer != nil {
		db.timer.Stop()
		db.timer = nil
	}
}
