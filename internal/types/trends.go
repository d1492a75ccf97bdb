package types

import "time"

// Trends is an industry-trends brief. Every category holds bullet-joined text
// and is always populated.
type Trends struct {
	Field                string `json:"field"`
	EmergingTechnologies string `json:"emerging_technologies"`
	MarketTrends         string `json:"market_trends"`
	SkillDemands         string `json:"skill_demands"`
	IndustryNews         string `json:"industry_news"`
	FutureOutlook        string `json:"future_outlook"`
	SalaryTrends         string `json:"salary_trends"`
	KeyCompanies         string `json:"key_companies"`
}

// TrendsResponse wraps a trends brief with generation metadata.
type TrendsResponse struct {
	Trends      Trends    `json:"trends"`
	Field       string    `json:"field"`
	Period      string    `json:"period"`
	Source      Source    `json:"source"`
	GeneratedAt time.Time `json:"generated_at"`
}
