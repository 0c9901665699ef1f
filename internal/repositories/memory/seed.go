package memory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/capexhub/capex_planning_app/internal/core/domain"
)

// SeedUsers returns the demo participant roster: project leads and country
// managers for each operating country plus an administrator.
func SeedUsers() []domain.User {
	return []domain.User{
		{UserID: "u1", Name: "John Doe", Role: domain.RoleProjectLead, Country: domain.CountryBR},
		{UserID: "u2", Name: "Carlos Silva", Role: domain.RoleProjectLead, Country: domain.CountryBR},
		{UserID: "u3", Name: "Elena Rodriguez", Role: domain.RoleCountryManager, Country: domain.CountryBR},
		{UserID: "u4", Name: "Ahmed Mansour", Role: domain.RoleProjectLead, Country: domain.CountryGQ},
		{UserID: "u5", Name: "Sarah Conner", Role: domain.RoleCountryManager, Country: domain.CountryGQ},
		{UserID: "u6", Name: "Jean-Luc Picard", Role: domain.RoleProjectLead, Country: domain.CountryCG},
		{UserID: "u7", Name: "Ellen Ripley", Role: domain.RoleCountryManager, Country: domain.CountryCG},
		{UserID: "u8", Name: "Admin User", Role: domain.RoleAdmin, Country: domain.CountryBR},
	}
}

// SeedProjects returns one sample proposal per operating country for the
// given budget year, used when the backing store starts out empty.
func SeedProjects(budgetYear int, now time.Time) []domain.Project {
	k := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
	code := func(c domain.Country, seq int) string {
		return fmt.Sprintf("%s-%d-%s-%03d", c, budgetYear, domain.Subsidiaries[c], seq)
	}
	return []domain.Project{
		{
			ProjectID:    uuid.NewString(),
			BudgetYear:   budgetYear,
			Country:      domain.CountryBR,
			Code:         code(domain.CountryBR, 1),
			Name:         "Pampo Platform Upgrade",
			StartDate:    fmt.Sprintf("%d-01-15", budgetYear),
			EndDate:      fmt.Sprintf("%d-11-30", budgetYear),
			Concession:   "General",
			Category:     "Maintenance",
			ProjectClass: "Baseline",
			Priority:     "Essential",
			Owner:        "Carlos Silva",
			Reviewers:    []string{"John Doe", "Elena Rodriguez"},
			MultiYear:    "Single",
			ExpenseType:  domain.CAPEX,
			Description:  "Structural reinforcement of the main deck.",
			Justification: "Safety critical maintenance required by regulation.",
			PlanEngineering: domain.PlanningRow{Prior: true, Q1: true},
			PlanProcurement: domain.PlanningRow{Q1: true, Q2: true},
			PlanExecution:   domain.PlanningRow{Q3: true, Q4: true},
			AFENumber:       fmt.Sprintf("AFE-BR-%d-001", budgetYear),
			Expenditures:    domain.FinanceSchedule{Q1: k(500), Q2: k(1200), Q3: k(800)},
			Status:          domain.StatusDraft,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ProjectID:    uuid.NewString(),
			BudgetYear:   budgetYear,
			Country:      domain.CountryGQ,
			Code:         code(domain.CountryGQ, 1),
			Name:         "Zafiro Well Intervention",
			StartDate:    fmt.Sprintf("%d-03-01", budgetYear),
			EndDate:      fmt.Sprintf("%d-06-30", budgetYear),
			Concession:   "Ceiba",
			Category:     "Wells",
			ProjectClass: "Productive",
			Priority:     "Important",
			Owner:        "Ahmed Mansour",
			Reviewers:    []string{"John Doe"},
			AdditionalReserves: true,
			MultiYear:    "Single",
			ExpenseType:  domain.SOPEX,
			Description:  "Routine intervention for well Z-12 to restore production levels.",
			Justification: "Well production has declined by 15% over the last quarter.",
			PlanEngineering: domain.PlanningRow{Q1: true},
			PlanProcurement: domain.PlanningRow{Q1: true},
			PlanExecution:   domain.PlanningRow{Q2: true},
			Expenditures:    domain.FinanceSchedule{Q1: k(200), Q2: k(1500)},
			Status:          domain.StatusSubmitted,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ProjectID:    uuid.NewString(),
			BudgetYear:   budgetYear,
			Country:      domain.CountryCG,
			Code:         code(domain.CountryCG, 1),
			Name:         "Nkossa Digital Twin Pilot",
			StartDate:    fmt.Sprintf("%d-02-01", budgetYear),
			EndDate:      fmt.Sprintf("%d-06-01", budgetYear+1),
			Concession:   "Nkossa",
			Category:     "Other",
			ProjectClass: "Other",
			Priority:     "Optional",
			Owner:        "Jean-Luc Picard",
			Reviewers:    []string{"Sarah Conner", "Elena Rodriguez"},
			MultiYear:    "Multi",
			ExpenseType:  domain.SOPEX,
			Description:  "Implementation of a digital twin for the Nkossa floating production unit.",
			Justification: "Optimization of maintenance schedules and reduction of POB.",
			PlanEngineering: domain.PlanningRow{Q1: true, Q2: true},
			PlanProcurement: domain.PlanningRow{Q2: true, Q3: true},
			PlanExecution:   domain.PlanningRow{Q4: true, Subsequent: true},
			AFENumber:       fmt.Sprintf("AFE-CG-NK-%d", budgetYear),
			Expenditures:    domain.FinanceSchedule{Q1: k(150), Q2: k(300), Q3: k(300), Q4: k(400), Y1: k(1200)},
			Status:          domain.StatusCMApproved,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}
}
