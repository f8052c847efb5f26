package cryptofolio

import "github.com/etnz/cryptofolio/date"

// GoalReport measures the portfolio against the user's goal on a given day.
type GoalReport struct {
	// Set is false when no goal is defined; every other field is then
	// meaningless.
	Set bool `json:"set"`

	Target  Money `json:"target"`
	Current Money `json:"current"`

	// ProgressPct is unclamped and exceeds 100 once the target is passed.
	// Clamping to [0,100] is a bar-rendering concern, not a numeric one.
	ProgressPct Percent `json:"progressPct"`

	// Remaining is target minus current. Negative means the goal is
	// exceeded by that much; Exceeded spares callers the sign check.
	Remaining Money `json:"remaining"`
	Exceeded  bool  `json:"exceeded"`

	// DaysLeft counts whole days until the target date: zero means today,
	// negative that the date passed. Only meaningful with HasTargetDate.
	HasTargetDate bool      `json:"hasTargetDate"`
	TargetDate    date.Date `json:"targetDate"`
	DaysLeft      int       `json:"daysLeft"`

	// ROI compares current value to the initial investment. Only defined
	// when an initial investment was recorded.
	HasROI            bool    `json:"hasRoi"`
	InitialInvestment Money   `json:"initialInvestment"`
	ROI               Percent `json:"roi"`
}

// NewGoalReport computes goal progress for the given current portfolio value.
func NewGoalReport(g Goal, current Money, today date.Date) *GoalReport {
	if !g.IsSet() {
		return &GoalReport{Set: false}
	}

	currency := current.Currency()
	report := &GoalReport{
		Set:     true,
		Target:  g.TargetValue.In(currency),
		Current: current,
	}
	report.ProgressPct = current.PercentOf(report.Target)
	report.Remaining = report.Target.Sub(current)
	report.Exceeded = report.Remaining.IsNegative()

	if !g.TargetDate.IsZero() {
		report.HasTargetDate = true
		report.TargetDate = g.TargetDate
		report.DaysLeft = today.DaysUntil(g.TargetDate)
	}

	if g.InitialInvestment.IsPositive() {
		report.HasROI = true
		report.InitialInvestment = g.InitialInvestment.In(currency)
		// (current - initial) / initial * 100
		report.ROI = current.Sub(report.InitialInvestment).PercentOf(report.InitialInvestment)
	}
	return report
}
