// Package llm - extractor.go builds prompts that ask for sectioned plain-text output.
package llm

import (
	"fmt"
	"strings"
)

// SectionSchema defines a plain-text response layout for LLM generation.
type SectionSchema struct {
	Name        string         // Schema name (e.g., "LearningRoadmap", "IndustryTrends")
	Description string         // Task preamble describing what to write
	Sections    []SectionField // Expected sections, in order
}

// SectionField defines a single section of the response.
type SectionField struct {
	Heading     string // Upper-case heading line (e.g., "SKILL GAP ANALYSIS")
	Description string // What the section must contain
	Required    bool   // Whether the section must always be present
}

// BuildSectionPrompt constructs the LLM prompt from schema and input context.
func BuildSectionPrompt(schema SectionSchema, context string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Respond in plain text using exactly these section headings, each on its own line in upper case, with a blank line between sections:\n")
	for i, section := range schema.Sections {
		requiredHint := ""
		if section.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("%d. %s%s", i+1, section.Heading, requiredHint))
		if section.Description != "" {
			sb.WriteString(fmt.Sprintf(" - %s", section.Description))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Do not use markdown emphasis characters such as *, **, _ or backticks.\n")
	sb.WriteString("- Start list items with \"- \".\n")
	sb.WriteString("- Do not return JSON and do not wrap the answer in code blocks.\n\n")

	sb.WriteString("Context:\n\"\"\"\n")
	sb.WriteString(context)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// Headings returns the section headings of the schema in order.
func (s SectionSchema) Headings() []string {
	headings := make([]string, 0, len(s.Sections))
	for _, section := range s.Sections {
		headings = append(headings, section.Heading)
	}
	return headings
}

// --- Predefined Schemas ---

// RoadmapSchema returns the section layout for personalised learning roadmaps.
func RoadmapSchema() SectionSchema {
	return SectionSchema{
		Name: "LearningRoadmap",
		Description: `You are an expert career coach and learning strategist.
Create a comprehensive, actionable learning roadmap for the career and person described in the context.`,
		Sections: []SectionField{
			{
				Heading:     "SKILL GAP ANALYSIS",
				Description: "Two to four sentences comparing the person's current skills with the career's required skills",
				Required:    true,
			},
			{
				Heading:     "LEARNING PHASES",
				Description: "One line per phase formatted as 'Phase <n>: <name> (<duration>): <description>', optionally followed by '- ' detail lines",
				Required:    true,
			},
			{
				Heading:     "RECOMMENDED RESOURCES",
				Description: "Up to seven '- ' lines naming specific courses, books, certifications or documentation",
				Required:    true,
			},
			{
				Heading:     "TIMELINE",
				Description: "The overall timeline with key milestones",
				Required:    true,
			},
			{
				Heading:     "PRACTICAL PROJECTS",
				Description: "Up to five '- ' lines, each a portfolio project",
				Required:    true,
			},
			{
				Heading:     "NETWORKING",
				Description: "Communities, events and mentorship strategies",
				Required:    true,
			},
			{
				Heading:     "NEXT STEPS",
				Description: "Three concrete actions for the coming week",
				Required:    false,
			},
		},
	}
}

// TrendsSchema returns the section layout for industry trend briefs.
func TrendsSchema() SectionSchema {
	return SectionSchema{
		Name: "IndustryTrends",
		Description: `You are an industry analyst and career strategist with expertise in tracking market trends and technological developments.
Focus on actionable insights for career growth and development.`,
		Sections: []SectionField{
			{Heading: "EMERGING TECHNOLOGIES", Description: "Emerging technologies and tools as '- ' lines", Required: true},
			{Heading: "MARKET TRENDS", Description: "Market trends and opportunities as '- ' lines", Required: true},
			{Heading: "SKILL DEMANDS", Description: "Skills in demand and how they are evolving as '- ' lines", Required: true},
			{Heading: "INDUSTRY NEWS", Description: "Major developments as '- ' lines", Required: true},
			{Heading: "FUTURE OUTLOOK", Description: "Predictions for the next few years as '- ' lines", Required: true},
			{Heading: "SALARY TRENDS", Description: "Salary trends and job market analysis as '- ' lines", Required: true},
			{Heading: "KEY COMPANIES", Description: "Companies and startups to watch as '- ' lines", Required: true},
		},
	}
}
