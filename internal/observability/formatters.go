// Package observability provides the process logger and formatted output
// utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

// PrintCareerMatches outputs the top recommended careers with scores.
func (p *Printer) PrintCareerMatches(matches []types.CareerMatch) {
	if len(matches) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Careers recommended: %d\n\n", len(matches)))

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		match := matches[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, match.Title))
		if match.MatchScore > 0 {
			sb.WriteString(fmt.Sprintf("    Score: %d\n", match.MatchScore))
		}
		if match.Explanation != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", match.Explanation))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more careers", len(matches)-maxItemsToShow))
	}

	p.printBox("RECOMMENDED CAREERS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMentorMatches outputs matched mentors with their scores.
func (p *Printer) PrintMentorMatches(matches []types.MentorMatch) {
	if len(matches) == 0 {
		p.printBox("MATCHED MENTORS", "No mentor scored above the threshold")
		return
	}

	var sb strings.Builder
	for i, match := range matches {
		sb.WriteString(fmt.Sprintf("%s (%d)\n", match.Name, match.MatchScore))
		if match.Title != "" || match.Company != "" {
			sb.WriteString(fmt.Sprintf("  %s, %s\n", match.Title, match.Company))
		}
		if len(match.Expertise) > 0 {
			sb.WriteString(fmt.Sprintf("  [%s]\n", strings.Join(match.Expertise, ", ")))
		}
		if i < len(matches)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("MATCHED MENTORS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoadmap outputs the phases and resources of a learning roadmap.
func (p *Printer) PrintRoadmap(resp *types.RoadmapResponse) {
	if resp == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Career:   %s\n", resp.CareerTitle))
	sb.WriteString(fmt.Sprintf("Source:   %s\n", resp.Source))
	sb.WriteString(fmt.Sprintf("Timeline: %s\n\n", resp.Roadmap.Timeline))

	sb.WriteString("Phases:\n")
	for _, phase := range resp.Roadmap.LearningPhases {
		sb.WriteString(fmt.Sprintf("  • %s (%s)\n", phase.Name, phase.Duration))
	}

	if len(resp.Roadmap.Resources) > 0 {
		sb.WriteString("\nResources:\n")
		count := min(len(resp.Roadmap.Resources), maxItemsToShow)
		for i := 0; i < count; i++ {
			r := resp.Roadmap.Resources[i]
			sb.WriteString(fmt.Sprintf("  • %s [%s]\n", r.Name, r.Category))
		}
		if len(resp.Roadmap.Resources) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resp.Roadmap.Resources)-maxItemsToShow))
		}
	}

	p.printBox("LEARNING ROADMAP", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTrends outputs the first line of each trend category.
func (p *Printer) PrintTrends(resp *types.TrendsResponse) {
	if resp == nil {
		return
	}

	t := resp.Trends
	sections := []struct {
		name string
		text string
	}{
		{"Emerging technologies", t.EmergingTechnologies},
		{"Market trends", t.MarketTrends},
		{"Skill demands", t.SkillDemands},
		{"Industry news", t.IndustryNews},
		{"Future outlook", t.FutureOutlook},
		{"Salary trends", t.SalaryTrends},
		{"Key companies", t.KeyCompanies},
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Field: %s (%s, %s)\n", resp.Field, resp.Period, resp.Source))
	for _, s := range sections {
		first, _, _ := strings.Cut(s.text, "\n")
		sb.WriteString(fmt.Sprintf("\n%s:\n  %s\n", s.name, first))
	}

	p.printBox("INDUSTRY TRENDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillGap outputs the missing skills for a career.
func (p *Printer) PrintSkillGap(gap *types.SkillGap) {
	if gap == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Gap: %.2f%% (%d of %d skills missing)\n",
		gap.GapPercentage, len(gap.MissingSkills), len(gap.CareerSkills)))
	for _, skill := range gap.MissingSkills {
		sb.WriteString(fmt.Sprintf("  ✗ %s\n", skill))
	}

	p.printBox("SKILL GAP", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPlanErrors outputs the parts of a career plan that could not be produced.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintPlanErrors(errs map[string]string) {
	if len(errs) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ALL PLAN SECTIONS GENERATED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	parts := make([]string, 0, len(errs))
	for part := range errs {
		parts = append(parts, part)
	}
	sort.Strings(parts)

	var sb strings.Builder
	for i, part := range parts {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", part))
		sb.WriteString(fmt.Sprintf("  %s\n", errs[part]))
		if i < len(parts)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("PLAN SECTIONS UNAVAILABLE", strings.TrimSuffix(sb.String(), "\n"))
}
