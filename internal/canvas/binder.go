package canvas

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paddynes2/stride-process-app/internal/client"
	"github.com/paddynes2/stride-process-app/internal/models"
)

// NameDebounce is how long a text field stays quiet before its value is
// persisted. Enum and numeric fields write immediately.
const NameDebounce = 500 * time.Millisecond

// StepBinder binds the detail-panel form of one step to the gateway.
// Each setter persists exactly one field; the confirmed record replaces
// the local copy on success, and failures leave the stale value in place.
type StepBinder struct {
	store    *Store
	gw       *client.Client
	notify   Notifier
	stepID   uuid.UUID
	debounce *Debouncer
}

func NewStepBinder(store *Store, gw *client.Client, notify Notifier, stepID uuid.UUID) *StepBinder {
	if notify == nil {
		notify = LogNotifier{}
	}
	return &StepBinder{
		store:    store,
		gw:       gw,
		notify:   notify,
		stepID:   stepID,
		debounce: NewDebouncer(NameDebounce),
	}
}

// Close cancels any pending debounced write. Call when the panel unbinds.
func (b *StepBinder) Close() { b.debounce.Cancel() }

// Step returns the current copy of the bound step.
func (b *StepBinder) Step() (models.Step, bool) { return b.store.StepByID(b.stepID) }

func (b *StepBinder) update(ctx context.Context, field string, value any) {
	updated, err := b.gw.UpdateStep(ctx, b.stepID, client.Fields{field: value})
	if err != nil {
		b.notify.Error(fmt.Sprintf("Failed to update %s", field))
		return
	}
	b.store.ReplaceStep(*updated)
}

// SetName schedules a debounced name write. Only the latest value typed
// within the window is persisted; whitespace-only names are dropped.
func (b *StepBinder) SetName(ctx context.Context, name string) {
	b.debounce.Trigger(func() {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return
		}
		b.update(ctx, "name", trimmed)
	})
}

func (b *StepBinder) SetStatus(ctx context.Context, status models.StepStatus) {
	b.update(ctx, "status", status)
}

func (b *StepBinder) SetExecutor(ctx context.Context, executor models.ExecutorType) {
	b.update(ctx, "executor", executor)
}

func (b *StepBinder) SetStepType(ctx context.Context, stepType *string) {
	b.update(ctx, "step_type", stepType)
}

func (b *StepBinder) SetNotes(ctx context.Context, notes *string) {
	b.update(ctx, "notes", notes)
}

func (b *StepBinder) SetVideoURL(ctx context.Context, url *string) {
	b.update(ctx, "video_url", url)
}

func (b *StepBinder) SetTimeMinutes(ctx context.Context, minutes *int) {
	b.update(ctx, "time_minutes", minutes)
}

func (b *StepBinder) SetFrequencyPerMonth(ctx context.Context, freq *int) {
	b.update(ctx, "frequency_per_month", freq)
}

func (b *StepBinder) SetAttributes(ctx context.Context, attrs map[string]any) {
	b.update(ctx, "attributes", attrs)
}

// MonthlyCost derives the read-only monthly cost in hours:
// time_minutes * frequency_per_month / 60. It is displayed only when both
// inputs are present and non-zero, and never persisted.
func (b *StepBinder) MonthlyCost() (float64, bool) {
	st, ok := b.store.StepByID(b.stepID)
	if !ok {
		return 0, false
	}
	return monthlyCost(st.TimeMinutes, st.FrequencyPerMonth)
}

func monthlyCost(minutes, freq *int) (float64, bool) {
	if minutes == nil || freq == nil || *minutes == 0 || *freq == 0 {
		return 0, false
	}
	return float64(*minutes) * float64(*freq) / 60, true
}

// EmbedURL returns the embeddable form of the bound step's video URL.
func (b *StepBinder) EmbedURL() (string, bool) {
	st, ok := b.store.StepByID(b.stepID)
	if !ok || st.VideoURL == nil {
		return "", false
	}
	return NormalizeVideoURL(*st.VideoURL)
}

// SectionBinder binds the detail-panel form of one section.
type SectionBinder struct {
	store     *Store
	gw        *client.Client
	notify    Notifier
	sectionID uuid.UUID
	debounce  *Debouncer
}

func NewSectionBinder(store *Store, gw *client.Client, notify Notifier, sectionID uuid.UUID) *SectionBinder {
	if notify == nil {
		notify = LogNotifier{}
	}
	return &SectionBinder{
		store:     store,
		gw:        gw,
		notify:    notify,
		sectionID: sectionID,
		debounce:  NewDebouncer(NameDebounce),
	}
}

func (b *SectionBinder) Close() { b.debounce.Cancel() }

func (b *SectionBinder) Section() (models.Section, bool) { return b.store.SectionByID(b.sectionID) }

func (b *SectionBinder) update(ctx context.Context, field string, value any) {
	updated, err := b.gw.UpdateSection(ctx, b.sectionID, client.Fields{field: value})
	if err != nil {
		b.notify.Error(fmt.Sprintf("Failed to update %s", field))
		return
	}
	b.store.ReplaceSection(*updated)
}

func (b *SectionBinder) SetName(ctx context.Context, name string) {
	b.debounce.Trigger(func() {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return
		}
		b.update(ctx, "name", trimmed)
	})
}

func (b *SectionBinder) SetSummary(ctx context.Context, summary *string) {
	b.update(ctx, "summary", summary)
}

func (b *SectionBinder) SetNotes(ctx context.Context, notes *string) {
	b.update(ctx, "notes", notes)
}

// MemberSteps returns the steps currently contained by the bound section,
// for the panel's status roll-up.
func (b *SectionBinder) MemberSteps() []models.Step {
	snap := b.store.Snapshot()
	var out []models.Step
	for _, st := range snap.Steps {
		if st.SectionID != nil && *st.SectionID == b.sectionID {
			out = append(out, st)
		}
	}
	return out
}

// StatusCounts aggregates the member steps by status.
func (b *SectionBinder) StatusCounts() map[models.StepStatus]int {
	counts := map[models.StepStatus]int{}
	for _, st := range b.MemberSteps() {
		counts[st.Status]++
	}
	return counts
}
