package dto

import (
	"github.com/capexhub/capex_planning_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateSettingsRequest defines the admin-editable global settings.
// Pointers differentiate omitted fields from zero-value fields; LockDates
// replaces the whole map when present.
type UpdateSettingsRequest struct {
	ActiveBudgetYear *int                      `json:"activeBudgetYear"`
	IsReadOnly       *bool                     `json:"isReadOnly"`
	SystemMessage    *string                   `json:"systemMessage"`
	LockDates        map[domain.Country]string `json:"lockDates"`
	HQApprovalLimit  *decimal.Decimal          `json:"hqApprovalLimit"`
}
