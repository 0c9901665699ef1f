package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Thresholds holds the cost limits that route the approval workflow.
type Thresholds struct {
	// HQApprovalLimit short-circuits the second approval tier: a project
	// whose total lifecycle cost is below this limit is final-approved by
	// the country manager. Zero disables the short-circuit.
	HQApprovalLimit decimal.Decimal `json:"hqApprovalLimit"`
}

// GlobalSettings is the process-wide configuration the core consumes.
type GlobalSettings struct {
	ActiveBudgetYear int                `json:"activeBudgetYear"`
	IsReadOnly       bool               `json:"isReadOnly"`
	SystemMessage    string             `json:"systemMessage"`
	LockDates        map[Country]string `json:"lockDates"` // YYYY-MM-DD per country, empty means unlocked
	Thresholds       Thresholds         `json:"thresholds"`
}

// CountryLocked reports whether the given country is past its lock date at
// the given instant. The lock date itself is still editable; the lock takes
// effect the following day.
func (g GlobalSettings) CountryLocked(c Country, now time.Time) bool {
	raw, ok := g.LockDates[c]
	if !ok || raw == "" {
		return false
	}
	lock, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return false
	}
	return now.After(lock.AddDate(0, 0, 1))
}

// EditableBy reports whether a user with the given role may mutate projects
// of the given country under these settings. Admins bypass both the global
// read-only flag and country lock dates.
func (g GlobalSettings) EditableBy(role Role, c Country, now time.Time) bool {
	if role == RoleAdmin {
		return true
	}
	return !g.IsReadOnly && !g.CountryLocked(c, now)
}

// MasterData holds the catalogs of valid classification values.
type MasterData struct {
	Categories     []string             `json:"categories"`
	Subcategories  []string             `json:"subcategories"`
	ProjectClasses []string             `json:"projectClasses"`
	Priorities     []string             `json:"priorities"`
	Concessions    map[Country][]string `json:"concessions"` // valid concession/asset names per country
}

// DefaultMasterData returns the bootstrap catalogs used when the host
// application supplies none.
func DefaultMasterData() MasterData {
	return MasterData{
		Categories: []string{
			"Drilling", "Wells", "Geosciences", "Topside", "Subsea",
			"Marine", "Maintenance", "Integrity", "Decom", "Other",
		},
		Subcategories: []string{
			"N/A", "P&A", "Productive", "Reliability", "P65",
			"SGIP", "SGSO", "SGSS", "Studies", "HSE",
		},
		ProjectClasses: []string{"Baseline", "Regulatory", "Productive", "Other"},
		Priorities:     []string{"Essential", "Important", "Optional"},
		Concessions: map[Country][]string{
			CountryBR: {"PPM1", "PCE1", "P08", "P65", "General", "Other", "Decom", "All assets"},
			CountryGQ: {"Okume & Ceiba", "Okume", "Ceiba", "General", "Other"},
			CountryCG: {"Nkossa", "Lianzi", "Moho", "General", "Other"},
		},
	}
}
