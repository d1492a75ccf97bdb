package trends

import (
	"encoding/json"
	"strings"

	"github.com/jonathan/career-compass/internal/extract"
	"github.com/jonathan/career-compass/internal/llm"
	"github.com/jonathan/career-compass/internal/types"
)

// categoryFields maps each fixed category heading to its slot in a brief.
var categoryFields = []struct {
	heading string
	field   func(*types.Trends) *string
}{
	{"EMERGING TECHNOLOGIES", func(t *types.Trends) *string { return &t.EmergingTechnologies }},
	{"MARKET TRENDS", func(t *types.Trends) *string { return &t.MarketTrends }},
	{"SKILL DEMANDS", func(t *types.Trends) *string { return &t.SkillDemands }},
	{"INDUSTRY NEWS", func(t *types.Trends) *string { return &t.IndustryNews }},
	{"FUTURE OUTLOOK", func(t *types.Trends) *string { return &t.FutureOutlook }},
	{"SALARY TRENDS", func(t *types.Trends) *string { return &t.SalaryTrends }},
	{"KEY COMPANIES", func(t *types.Trends) *string { return &t.KeyCompanies }},
}

// Parse converts a completion response into a complete trends brief and reports
// which tier produced it. Categories missing from the response keep their
// default content.
func Parse(text, field string) (trends types.Trends, source types.Source) {
	field = fieldName(field)
	defer func() {
		if r := recover(); r != nil {
			trends, source = Default(field), types.SourceDefault
		}
	}()

	if strings.TrimSpace(text) == "" {
		return Default(field), types.SourceDefault
	}

	trends = Default(field)
	if parseJSON(text, &trends) {
		return trends, types.SourceParsed
	}

	trends = Default(field)
	if parseSections(text, &trends) {
		return trends, types.SourceHeuristic
	}
	return Default(field), types.SourceDefault
}

type jsonTrends struct {
	EmergingTechnologies extract.TextList `json:"emerging_technologies"`
	MarketTrends         extract.TextList `json:"market_trends"`
	SkillDemands         extract.TextList `json:"skill_demands"`
	IndustryNews         extract.TextList `json:"industry_news"`
	FutureOutlook        extract.TextList `json:"future_outlook"`
	SalaryTrends         extract.TextList `json:"salary_trends"`
	KeyCompanies         extract.TextList `json:"key_companies"`
}

func parseJSON(text string, trends *types.Trends) bool {
	cleaned, ok := llm.ExtractJSON(text)
	if !ok || !strings.HasPrefix(cleaned, "{") {
		return false
	}

	var raw jsonTrends
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return false
	}

	values := []extract.TextList{
		raw.EmergingTechnologies, raw.MarketTrends, raw.SkillDemands, raw.IndustryNews,
		raw.FutureOutlook, raw.SalaryTrends, raw.KeyCompanies,
	}
	found := false
	for i, value := range values {
		if joined := value.Bullets(); joined != "" {
			*categoryFields[i].field(trends) = joined
			found = true
		}
	}
	return found
}

// parseSections is the heuristic tier. A non-bullet line naming a category opens
// a block for it; an unrelated upper-case heading closes the open block. Each
// block is normalized with extract.ExtractBulletPoints.
func parseSections(text string, trends *types.Trends) bool {
	blocks := map[int][]string{}
	var order []int
	current := -1

	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if idx := categoryIndex(line); idx >= 0 {
			current = idx
			if _, seen := blocks[idx]; !seen {
				order = append(order, idx)
			}
			blocks[idx] = append(blocks[idx], line)
			continue
		}
		if extract.IsHeadingLine(line) {
			current = -1
			continue
		}
		if current >= 0 {
			blocks[current] = append(blocks[current], line)
		}
	}

	for _, idx := range order {
		*categoryFields[idx].field(trends) = extract.ExtractBulletPoints(strings.Join(blocks[idx], "\n"))
	}
	return len(order) > 0
}

// categoryIndex returns the category a heading line names, or -1. Bullet lines
// never open a category even when they mention one.
func categoryIndex(line string) int {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "•") || strings.HasPrefix(trimmed, "* ") {
		return -1
	}
	upper := strings.ToUpper(extract.CleanText(trimmed))
	for i, category := range categoryFields {
		if strings.Contains(upper, category.heading) {
			return i
		}
	}
	return -1
}
