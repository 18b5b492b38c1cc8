package canvas

import "github.com/paddynes2/stride-process-app/internal/models"

// Summary is the roll-up shown in the workspace header: how much of the
// mapped process sits in each state, who executes it, and what it costs
// per month. Cost only counts steps that carry both a duration and a
// frequency.
type Summary struct {
	StepCount      int                         `json:"step_count"`
	StatusCounts   map[models.StepStatus]int   `json:"status_counts"`
	ExecutorCounts map[models.ExecutorType]int `json:"executor_counts"`
	TotalMinutes   int                         `json:"total_minutes"`
	MonthlyHours   float64                     `json:"monthly_hours"`
}

// Summarize aggregates a step list into a Summary.
func Summarize(steps []models.Step) Summary {
	sum := Summary{
		StepCount:      len(steps),
		StatusCounts:   map[models.StepStatus]int{},
		ExecutorCounts: map[models.ExecutorType]int{},
	}
	for _, st := range steps {
		sum.StatusCounts[st.Status]++
		sum.ExecutorCounts[st.Executor]++
		if hours, ok := monthlyCost(st.TimeMinutes, st.FrequencyPerMonth); ok {
			sum.TotalMinutes += *st.TimeMinutes * *st.FrequencyPerMonth
			sum.MonthlyHours += hours
		}
	}
	return sum
}
