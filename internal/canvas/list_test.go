package canvas

import (
	"testing"
	"time"

	"github.com/paddynes2/stride-process-app/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listFixture() []models.Step {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return []models.Step{
		{Name: "Send invoice", Status: models.StatusLive, Executor: models.ExecutorAutomation, TimeMinutes: intp(5), CreatedAt: base.Add(2 * time.Hour)},
		{Name: "Review contract", Status: models.StatusDraft, Executor: models.ExecutorPerson, TimeMinutes: intp(45), CreatedAt: base},
		{Name: "Archive records", Status: models.StatusLive, Executor: models.ExecutorPerson, CreatedAt: base.Add(time.Hour)},
	}
}

func names(steps []models.Step) []string {
	out := make([]string, len(steps))
	for i, st := range steps {
		out[i] = st.Name
	}
	return out
}

func TestFilterStepsSearch(t *testing.T) {
	got := FilterSteps(listFixture(), StepFilter{Search: "IN"})
	assert.ElementsMatch(t, []string{"Send invoice", "Review contract"}, names(got))
}

func TestFilterStepsByStatusAndExecutor(t *testing.T) {
	got := FilterSteps(listFixture(), StepFilter{Status: models.StatusLive, Executor: models.ExecutorPerson})
	require.Len(t, got, 1)
	assert.Equal(t, "Archive records", got[0].Name)
}

func TestFilterStepsDefaultSortIsNameAscending(t *testing.T) {
	got := FilterSteps(listFixture(), StepFilter{})
	assert.Equal(t, []string{"Archive records", "Review contract", "Send invoice"}, names(got))
}

func TestFilterStepsSortDescending(t *testing.T) {
	got := FilterSteps(listFixture(), StepFilter{Sort: SortByCreatedAt, Desc: true})
	assert.Equal(t, []string{"Send invoice", "Archive records", "Review contract"}, names(got))
}

func TestFilterStepsSortByTimeTreatsNilAsZero(t *testing.T) {
	got := FilterSteps(listFixture(), StepFilter{Sort: SortByTime})
	assert.Equal(t, []string{"Archive records", "Send invoice", "Review contract"}, names(got))
}

func TestFilterStepsDoesNotMutateInput(t *testing.T) {
	in := listFixture()
	FilterSteps(in, StepFilter{Sort: SortByCreatedAt, Desc: true})
	assert.Equal(t, "Send invoice", in[0].Name)
}
