package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the workflow state of a project proposal.
type Status string

const (
	StatusDraft      Status = "Draft"
	StatusSubmitted  Status = "Submitted"
	StatusCMApproved Status = "Country Manager Approved"
	StatusHQApproved Status = "Approved by HQ"
	StatusRevision   Status = "Returned for Revision"
	StatusRejected   Status = "Rejected"
)

// ExpenseType classifies the spend category of a project.
type ExpenseType string

const (
	CAPEX ExpenseType = "CAPEX"
	SOPEX ExpenseType = "SOPEX"
	ABEX  ExpenseType = "ABEX"
)

// FinanceSchedule holds the ten monetary buckets of a project, all in
// thousands of currency units: everything spent before the budget year,
// the current-year committed amount, the four budget-year quarters, and
// the four outlook years.
type FinanceSchedule struct {
	Prior   decimal.Decimal `json:"prior"`
	Current decimal.Decimal `json:"current"`
	Q1      decimal.Decimal `json:"q1"`
	Q2      decimal.Decimal `json:"q2"`
	Q3      decimal.Decimal `json:"q3"`
	Q4      decimal.Decimal `json:"q4"`
	Y1      decimal.Decimal `json:"y1"`
	Y2      decimal.Decimal `json:"y2"`
	Y3      decimal.Decimal `json:"y3"`
	Y4      decimal.Decimal `json:"y4"`
}

// PlanningRow tracks in which periods a project phase is active.
type PlanningRow struct {
	Prior      bool `json:"prior"`
	Q1         bool `json:"q1"`
	Q2         bool `json:"q2"`
	Q3         bool `json:"q3"`
	Q4         bool `json:"q4"`
	Subsequent bool `json:"subsequent"`
}

// Project is the central entity: a capital-budget proposal moving through
// the staged approval workflow. It exclusively owns its schedule, planning
// rows, comments and audit trail.
type Project struct {
	ProjectID          string  `json:"projectID"` // Primary Key (UUID)
	BudgetYear         int     `json:"budgetYear" validate:"required"`
	Country            Country `json:"country" validate:"required"`
	Code               string  `json:"code"`
	ManualCodeOverride bool    `json:"manualCodeOverride"`
	Name               string  `json:"name" validate:"required"`
	StartDate          string  `json:"startDate"` // YYYY-MM-DD
	EndDate            string  `json:"endDate"`   // YYYY-MM-DD
	Concession         string  `json:"concession"`
	Category           string  `json:"category"`
	Subcategory        string  `json:"subcategory,omitempty"`
	ProjectClass       string  `json:"projectClass"`
	Priority           string  `json:"priority"`
	Owner              string  `json:"owner"`
	Reviewers          []string `json:"reviewers"`
	AdditionalReserves bool        `json:"additionalReserves"`
	MultiYear          string      `json:"multiYear"` // "Single" or "Multi"
	ExpenseType        ExpenseType `json:"expenseType"`

	Description   string `json:"description"`
	Justification string `json:"justification"`

	PlanEngineering PlanningRow `json:"planEngineering"`
	PlanProcurement PlanningRow `json:"planProcurement"`
	PlanExecution   PlanningRow `json:"planExecution"`

	InitiatedBefore bool            `json:"initiatedBefore"`
	PrevBudgetRef   string          `json:"prevBudgetRef"` // code of the prior-year project, if duplicated
	AFENumber       string          `json:"afeNumber,omitempty"`
	EstimateClass   string          `json:"estimateClass,omitempty"`
	Expenditures    FinanceSchedule `json:"expenditures"`

	// Production & economics block, populated only when AdditionalReserves is set.
	OilPriceScenario     string `json:"oilPriceScenario,omitempty"`
	ExpectedFirstOilDate string `json:"expectedFirstOilDate,omitempty"`
	GrossInvestment      string `json:"grossInvestment,omitempty"`
	GrossReserves        string `json:"grossReserves,omitempty"`
	NetNPV10             string `json:"netNPV10,omitempty"`
	NetInvestmentPerBoe  string `json:"netInvestmentPerBoe,omitempty"`
	NetNpvPerInvestment  string `json:"netNpvPerInvestment,omitempty"`
	NetIRR               string `json:"netIRR,omitempty"`
	PaybackMonths        string `json:"paybackMonths,omitempty"`
	BreakevenOilPrice    string `json:"breakevenOilPrice,omitempty"`

	PrevTotalCost    decimal.Decimal `json:"prevTotalCost"`
	PrevExpenditures decimal.Decimal `json:"prevExpenditures"`
	PrevComments     string          `json:"prevComments"`

	Status     Status     `json:"status"`
	Comments   []Comment  `json:"comments"`
	AuditTrail []AuditLog `json:"auditTrail"` // append-only, never reordered or mutated
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// IsTerminal reports whether no further workflow transitions are defined
// from s. Duplication creates a new Draft project; it never transitions a
// terminal one.
func (s Status) IsTerminal() bool {
	return s == StatusHQApproved || s == StatusRejected
}
