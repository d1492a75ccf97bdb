package trends

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-compass/internal/extract"
	"github.com/jonathan/career-compass/internal/types"
)

const (
	// DefaultPeriod is used when a request names no period.
	DefaultPeriod = "6months"
	generalField  = "General Industry"
)

func bullets(lines ...string) string {
	for i, line := range lines {
		lines[i] = extract.Bullet + line
	}
	return strings.Join(lines, "\n")
}

// Default returns the pre-seeded trends brief for a field. Every category holds
// plausible generic content.
func Default(field string) types.Trends {
	field = fieldName(field)
	return types.Trends{
		Field: field,
		EmergingTechnologies: bullets(
			"AI-assisted tools are being adopted across everyday workflows",
			"Automation is reducing repetitive manual tasks",
			fmt.Sprintf("Cloud-based platforms are becoming the default for %s teams", field),
		),
		MarketTrends: bullets(
			"Remote and hybrid work remain common for experienced professionals",
			"Employers favour candidates who combine domain knowledge with digital skills",
			"Contract and freelance opportunities continue to grow",
		),
		SkillDemands: bullets(
			"Data literacy and comfort with analytics tools",
			"Clear written and verbal communication",
			"Adaptability and continuous learning",
		),
		IndustryNews: bullets(
			fmt.Sprintf("Organisations in %s are investing in digital transformation", field),
			"Regulation around data privacy and AI use is tightening",
			"Industry bodies are expanding professional certification programs",
		),
		FutureOutlook: bullets(
			fmt.Sprintf("Steady long-term demand is expected for skilled %s professionals", field),
			"Roles will increasingly blend technical and interpersonal skills",
			"Lifelong learning will be essential to stay competitive",
		),
		SalaryTrends: bullets(
			"Salaries for specialised skills are rising faster than average",
			"Entry-level pay is stable with strong growth after two to three years",
			"Certifications and portfolios support higher starting offers",
		),
		KeyCompanies: bullets(
			"Established industry leaders with structured graduate programs",
			"Fast-growing startups applying new technology to the field",
			"Consultancies and agencies serving clients across sectors",
		),
	}
}

func fieldName(field string) string {
	if field = strings.TrimSpace(field); field != "" {
		return field
	}
	return generalField
}
