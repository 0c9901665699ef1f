// Package projectcode generates human-readable project identifiers of the
// form {country}-{year}-{subsidiary}-{sequence}.
package projectcode

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/capexhub/capex_planning_app/internal/core/domain"
)

// Generate suggests the next project code for a country and year given the
// current snapshot of existing projects.
//
// The year is taken from the first four characters of dateOrYear (a date or
// bare year string); if absent, the current calendar year is used. The
// sequence is one more than the number of existing projects already carrying
// the same country/year/subsidiary prefix, zero-padded to three digits.
//
// This is a count-based suggestion, not a reservation: concurrent callers
// working from the same snapshot can be handed the same code. The project
// service surfaces such collisions as a save-time conflict.
func Generate(country domain.Country, dateOrYear string, existing []domain.Project) string {
	year := extractYear(dateOrYear)
	subsidiary := subsidiaryCode(country)

	prefix := fmt.Sprintf("%s-%s-%s", country, year, subsidiary)
	count := 0
	for _, p := range existing {
		if strings.HasPrefix(p.Code, prefix) {
			count++
		}
	}

	return fmt.Sprintf("%s-%03d", prefix, count+1)
}

func extractYear(dateOrYear string) string {
	if len(dateOrYear) >= 4 {
		candidate := dateOrYear[:4]
		if _, err := strconv.Atoi(candidate); err == nil {
			return candidate
		}
	}
	return strconv.Itoa(time.Now().Year())
}

func subsidiaryCode(country domain.Country) string {
	if code, ok := domain.Subsidiaries[country]; ok {
		return code
	}
	return string(country)
}
