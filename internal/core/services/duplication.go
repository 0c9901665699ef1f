package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/capexhub/capex_planning_app/internal/core/domain"
	"github.com/capexhub/capex_planning_app/internal/utils/budgeting"
	"github.com/capexhub/capex_planning_app/internal/utils/projectcode"
)

// DuplicateProject clones a project into the next budget cycle and returns
// the new project's id. The source is left completely unmodified; lineage
// is preserved by code reference in PrevBudgetRef so it stays readable even
// if the source record is later deleted.
func (s *projectService) DuplicateProject(ctx context.Context, projectID string, actor domain.User) (string, error) {
	source, err := s.GetProjectByID(ctx, projectID)
	if err != nil {
		return "", err
	}
	if err := s.checkEditable(ctx, source.Country, actor); err != nil {
		return "", err
	}

	now := s.now()
	next := *source
	next.ProjectID = uuid.NewString()
	next.BudgetYear = source.BudgetYear + 1
	// Auto-generation is re-enabled for the clone regardless of the
	// source's override flag.
	next.ManualCodeOverride = false
	next.Code = projectcode.Generate(source.Country, strconv.Itoa(next.BudgetYear), s.snapshot())
	next.Status = domain.StatusDraft
	next.InitiatedBefore = true
	next.PrevBudgetRef = source.Code

	next.Expenditures = rollForward(source.Expenditures)
	next.PlanEngineering = domain.PlanningRow{}
	next.PlanProcurement = domain.PlanningRow{}
	next.PlanExecution = domain.PlanningRow{}

	next.PrevTotalCost = budgeting.TotalLifecycleCost(source.Expenditures)
	next.PrevExpenditures = budgeting.BudgetYearGrossCost(source.Expenditures)

	next.Comments = nil
	next.AuditTrail = []domain.AuditLog{{
		AuditID:   uuid.NewString(),
		Timestamp: now,
		User:      actor.Name,
		Field:     "Project",
		OldValue:  "N/A",
		NewValue:  fmt.Sprintf("Duplicated from %d project %s", source.BudgetYear, source.Code),
		Stage:     domain.StatusDraft,
	}}
	next.CreatedAt = now
	next.UpdatedAt = now

	s.mu.Lock()
	s.projects[next.ProjectID] = next
	s.mu.Unlock()

	s.persist(next.ProjectID, "save", func(pctx context.Context) error {
		return s.projectRepo.SaveProject(pctx, next)
	})

	s.logger.Info("project duplicated into next cycle",
		"source_code", source.Code,
		"new_code", next.Code,
		"budget_year", next.BudgetYear,
	)
	return next.ProjectID, nil
}

// rollForward shifts a multi-year schedule by one budget cycle: everything
// spent or committed through the source year collapses into the historical
// bucket, the outlook years move up one slot and the new year's quarterly
// plan starts blank.
func rollForward(src domain.FinanceSchedule) domain.FinanceSchedule {
	return domain.FinanceSchedule{
		Prior:   src.Prior.Add(src.Q1).Add(src.Q2).Add(src.Q3).Add(src.Q4),
		Current: decimal.Zero,
		Q1:      decimal.Zero,
		Q2:      decimal.Zero,
		Q3:      decimal.Zero,
		Q4:      decimal.Zero,
		Y1:      src.Y2,
		Y2:      src.Y3,
		Y3:      src.Y4,
		Y4:      decimal.Zero,
	}
}
