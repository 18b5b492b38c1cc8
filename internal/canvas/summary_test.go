package canvas

import (
	"testing"

	"github.com/paddynes2/stride-process-app/internal/models"
	"github.com/stretchr/testify/assert"
)

func intp(v int) *int { return &v }

func TestSummarize(t *testing.T) {
	steps := []models.Step{
		{Status: models.StatusLive, Executor: models.ExecutorPerson, TimeMinutes: intp(30), FrequencyPerMonth: intp(4)},
		{Status: models.StatusLive, Executor: models.ExecutorAutomation, TimeMinutes: intp(10), FrequencyPerMonth: intp(60)},
		{Status: models.StatusDraft, Executor: models.ExecutorEmpty},
	}

	sum := Summarize(steps)

	assert.Equal(t, 3, sum.StepCount)
	assert.Equal(t, 2, sum.StatusCounts[models.StatusLive])
	assert.Equal(t, 1, sum.StatusCounts[models.StatusDraft])
	assert.Equal(t, 1, sum.ExecutorCounts[models.ExecutorPerson])
	assert.Equal(t, 1, sum.ExecutorCounts[models.ExecutorAutomation])
	assert.Equal(t, 1, sum.ExecutorCounts[models.ExecutorEmpty])
	assert.Equal(t, 30*4+10*60, sum.TotalMinutes)
	assert.InDelta(t, 12.0, sum.MonthlyHours, 1e-9)
}

func TestSummarizeSkipsIncompleteCostInputs(t *testing.T) {
	steps := []models.Step{
		{Status: models.StatusDraft, Executor: models.ExecutorEmpty, TimeMinutes: intp(45)},
		{Status: models.StatusDraft, Executor: models.ExecutorEmpty, FrequencyPerMonth: intp(8)},
		{Status: models.StatusDraft, Executor: models.ExecutorEmpty, TimeMinutes: intp(0), FrequencyPerMonth: intp(8)},
	}

	sum := Summarize(steps)

	assert.Zero(t, sum.TotalMinutes)
	assert.Zero(t, sum.MonthlyHours)
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)
	assert.Zero(t, sum.StepCount)
	assert.Empty(t, sum.StatusCounts)
	assert.Empty(t, sum.ExecutorCounts)
}

func TestMonthlyCost(t *testing.T) {
	hours, ok := monthlyCost(intp(90), intp(2))
	assert.True(t, ok)
	assert.InDelta(t, 3.0, hours, 1e-9)

	_, ok = monthlyCost(nil, intp(2))
	assert.False(t, ok)
	_, ok = monthlyCost(intp(90), nil)
	assert.False(t, ok)
	_, ok = monthlyCost(intp(0), intp(2))
	assert.False(t, ok)
	_, ok = monthlyCost(intp(90), intp(0))
	assert.False(t, ok)
}
