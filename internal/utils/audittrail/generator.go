// Package audittrail diffs two versions of a project and emits the ordered
// audit entries for the save. Appending the entries to the project's trail
// is the caller's responsibility.
package audittrail

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/capexhub/capex_planning_app/internal/core/domain"
	"github.com/capexhub/capex_planning_app/internal/utils/budgeting"
	"github.com/google/uuid"
)

// Generate compares the previous and next versions of a project and returns
// the audit entries describing the change. A nil previous version means the
// project is being created and yields exactly one creation entry.
//
// All entries of one invocation share the given timestamp and carry the
// next version's status as their stage. Entries appear in a fixed field
// order: Name, Start Date, End Date, Concession, Priority, Expense Type,
// Status, then Total Expenditures.
func Generate(previous *domain.Project, next domain.Project, actingUser string, now time.Time) []domain.AuditLog {
	if previous == nil {
		return []domain.AuditLog{{
			AuditID:   uuid.NewString(),
			Timestamp: now,
			User:      actingUser,
			Field:     "Project",
			OldValue:  "N/A",
			NewValue:  "Created",
			Stage:     next.Status,
		}}
	}

	var logs []domain.AuditLog
	record := func(field string, oldVal, newVal any) {
		if structurallyEqual(oldVal, newVal) {
			return
		}
		logs = append(logs, domain.AuditLog{
			AuditID:   uuid.NewString(),
			Timestamp: now,
			User:      actingUser,
			Field:     field,
			OldValue:  fmt.Sprintf("%v", oldVal),
			NewValue:  fmt.Sprintf("%v", newVal),
			Stage:     next.Status,
		})
	}

	record("Name", previous.Name, next.Name)
	record("Start Date", previous.StartDate, next.StartDate)
	record("End Date", previous.EndDate, next.EndDate)
	record("Concession", previous.Concession, next.Concession)
	record("Priority", previous.Priority, next.Priority)
	record("Expense Type", previous.ExpenseType, next.ExpenseType)
	record("Status", previous.Status, next.Status)

	// Financials are audited by total only, to keep the trail readable.
	oldTotal := budgeting.TotalLifecycleCost(previous.Expenditures)
	newTotal := budgeting.TotalLifecycleCost(next.Expenditures)
	if !oldTotal.Equal(newTotal) {
		record("Total Expenditures", oldTotal.String(), newTotal.String())
	}

	return logs
}

// structurallyEqual compares two values by their JSON encoding so nested
// values compare by content, not identity.
func structurallyEqual(a, b any) bool {
	aj, errA := json.Marshal(a)
	bj, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b)
	}
	return string(aj) == string(bj)
}
