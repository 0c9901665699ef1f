// Package budgeting provides pure cost aggregation over a project's
// finance schedule. These helpers are used by the approval routing,
// the audit trail and reporting alike, so they must stay side-effect free.
package budgeting

import (
	"github.com/capexhub/capex_planning_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TotalLifecycleCost sums all ten buckets of the schedule: the full
// multi-year cost envelope of a project, in thousands.
func TotalLifecycleCost(s domain.FinanceSchedule) decimal.Decimal {
	total := decimal.Zero
	for _, b := range []decimal.Decimal{
		s.Prior, s.Current, s.Q1, s.Q2, s.Q3, s.Q4, s.Y1, s.Y2, s.Y3, s.Y4,
	} {
		total = total.Add(b)
	}
	return total
}

// BudgetYearGrossCost sums exactly the four quarterly buckets: the spend
// committed for the active budget cycle only.
func BudgetYearGrossCost(s domain.FinanceSchedule) decimal.Decimal {
	return s.Q1.Add(s.Q2).Add(s.Q3).Add(s.Q4)
}
