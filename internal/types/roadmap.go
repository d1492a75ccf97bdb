package types

import "time"

// Source records which degradation tier produced a synthesized result.
type Source string

const (
	// SourceParsed means the LLM returned well-formed structured JSON
	SourceParsed Source = "parsed"
	// SourceHeuristic means the structure was recovered from free-form text
	SourceHeuristic Source = "heuristic"
	// SourceDefault means the canned fallback content was used
	SourceDefault Source = "default"
)

// Roadmap is a structured learning roadmap for one career.
type Roadmap struct {
	Career           string          `json:"career"`
	SkillGapAnalysis string          `json:"skill_gap_analysis"`
	LearningPhases   []LearningPhase `json:"learning_phases"`
	Resources        []Resource      `json:"resources"`
	Timeline         string          `json:"timeline"`
	Projects         []string        `json:"projects"`
	Networking       string          `json:"networking"`
}

// LearningPhase is one stage of a roadmap.
type LearningPhase struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

// Resource is a recommended learning resource.
type Resource struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// RoadmapResponse wraps a roadmap with generation metadata.
type RoadmapResponse struct {
	Roadmap     Roadmap   `json:"roadmap"`
	CareerTitle string    `json:"career_title"`
	Source      Source    `json:"source"`
	GeneratedAt time.Time `json:"generated_at"`
}
