// Package insights provides skill-gap and salary-growth analysis helpers.
package insights

import (
	"math"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

const (
	// DefaultGrowthRate is the annual growth used when a career has no trend data.
	DefaultGrowthRate = 0.05
	// DefaultBaseSalary is used for careers without an average salary.
	DefaultBaseSalary = 50000
	// DefaultYears is the projection horizon when none is requested.
	DefaultYears = 5
)

// ExtractUserSkills splits the comma-separated skills answer of a profile.
func ExtractUserSkills(profile types.UserProfile) []string {
	return types.SplitList(profile.Skills)
}

// SkillGapReport lists the career skills the user does not have. Skills are
// compared case-insensitively; the gap percentage is 0 for a career without
// skills.
func SkillGapReport(userSkills, careerSkills []string) types.SkillGap {
	have := make(map[string]bool, len(userSkills))
	for _, skill := range userSkills {
		have[strings.ToLower(strings.TrimSpace(skill))] = true
	}

	missing := []string{}
	for _, skill := range careerSkills {
		if !have[strings.ToLower(strings.TrimSpace(skill))] {
			missing = append(missing, skill)
		}
	}

	gap := 0.0
	if len(careerSkills) > 0 {
		gap = round(float64(len(missing))/float64(len(careerSkills))*100, 2)
	}

	return types.SkillGap{
		UserSkills:    nonNil(userSkills),
		CareerSkills:  nonNil(careerSkills),
		MissingSkills: missing,
		GapPercentage: gap,
	}
}

// AnnualGrowthRate converts a career's five-year growth percentage into a
// compound annual rate, falling back to DefaultGrowthRate.
func AnnualGrowthRate(career types.CareerRecord) float64 {
	pct := career.GrowthTrend.FiveYearGrowthPct
	if pct <= 0 {
		return DefaultGrowthRate
	}
	return round(math.Pow(1+pct/100, 1.0/5)-1, 4)
}

// GrowthProjection compounds the career's average salary over years. A rate of
// zero uses AnnualGrowthRate and non-positive years use DefaultYears.
func GrowthProjection(career types.CareerRecord, years int, rate float64) types.GrowthProjection {
	if years <= 0 {
		years = DefaultYears
	}
	if rate <= 0 {
		rate = AnnualGrowthRate(career)
	}
	base := career.AvgSalary
	if base <= 0 {
		base = DefaultBaseSalary
	}

	return types.GrowthProjection{
		CurrentSalary:   base,
		ProjectedSalary: round(float64(base)*math.Pow(1+rate, float64(years)), 2),
		Years:           years,
		GrowthRate:      rate,
	}
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
