package canvas

import (
	"sort"
	"strings"

	"github.com/paddynes2/stride-process-app/internal/models"
)

// StepFilter narrows and orders the step list view. Zero values mean
// "no filter"; Sort defaults to name ascending.
type StepFilter struct {
	Search   string
	Status   models.StepStatus
	Executor models.ExecutorType
	Sort     string
	Desc     bool
}

// Sortable column names for FilterSteps.
const (
	SortByName      = "name"
	SortByStatus    = "status"
	SortByExecutor  = "executor"
	SortByTime      = "time_minutes"
	SortByFrequency = "frequency_per_month"
	SortByCreatedAt = "created_at"
)

// FilterSteps returns the steps matching the filter, sorted. The input
// slice is not modified. Search matches the name case-insensitively.
func FilterSteps(steps []models.Step, f StepFilter) []models.Step {
	needle := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]models.Step, 0, len(steps))
	for _, st := range steps {
		if needle != "" && !strings.Contains(strings.ToLower(st.Name), needle) {
			continue
		}
		if f.Status != "" && st.Status != f.Status {
			continue
		}
		if f.Executor != "" && st.Executor != f.Executor {
			continue
		}
		out = append(out, st)
	}

	less := lessFunc(f.Sort)
	sort.SliceStable(out, func(i, j int) bool {
		if f.Desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func lessFunc(field string) func(a, b models.Step) bool {
	switch field {
	case SortByStatus:
		return func(a, b models.Step) bool { return a.Status < b.Status }
	case SortByExecutor:
		return func(a, b models.Step) bool { return a.Executor < b.Executor }
	case SortByTime:
		return func(a, b models.Step) bool { return intPtrVal(a.TimeMinutes) < intPtrVal(b.TimeMinutes) }
	case SortByFrequency:
		return func(a, b models.Step) bool {
			return intPtrVal(a.FrequencyPerMonth) < intPtrVal(b.FrequencyPerMonth)
		}
	case SortByCreatedAt:
		return func(a, b models.Step) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return func(a, b models.Step) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
}

func intPtrVal(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
