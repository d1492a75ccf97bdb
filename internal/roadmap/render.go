package roadmap

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// RenderText renders a roadmap in the plain-text section layout the prompt asks
// the LLM for. Parse reads the output back without losing any section.
func RenderText(r types.Roadmap) string {
	var sb strings.Builder

	sb.WriteString("SKILL GAP ANALYSIS\n")
	sb.WriteString(r.SkillGapAnalysis)
	sb.WriteString("\n\nLEARNING PHASES\n")
	for i, phase := range r.LearningPhases {
		lines := strings.Split(phase.Description, "\n")
		sb.WriteString(fmt.Sprintf("Phase %d: %s (%s): %s\n", i+1, phase.Name, phase.Duration, lines[0]))
		for _, detail := range lines[1:] {
			sb.WriteString("- " + detail + "\n")
		}
	}

	sb.WriteString("\nRECOMMENDED RESOURCES\n")
	for _, res := range r.Resources {
		sb.WriteString("- " + res.Name + "\n")
	}

	sb.WriteString("\nTIMELINE\n")
	sb.WriteString(r.Timeline)

	sb.WriteString("\n\nPRACTICAL PROJECTS\n")
	for _, project := range r.Projects {
		sb.WriteString("- " + project + "\n")
	}

	sb.WriteString("\nNETWORKING\n")
	sb.WriteString(r.Networking)
	sb.WriteString("\n")

	return sb.String()
}
