package roadmap

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

const (
	defaultDuration = "3 months"
	defaultTimeline = "6-12 months for comprehensive learning"
	unknownCareer   = "Unknown Career"
)

// DefaultPhases returns the four canonical learning phases.
func DefaultPhases() []types.LearningPhase {
	return []types.LearningPhase{
		{Name: "Foundation", Description: "Build core skills and learn the fundamental tools of the field", Duration: defaultDuration},
		{Name: "Intermediate", Description: "Develop specialized knowledge through guided practice", Duration: defaultDuration},
		{Name: "Advanced", Description: "Master advanced concepts and tackle complex real-world problems", Duration: defaultDuration},
		{Name: "Professional", Description: "Build a portfolio, earn credentials and prepare for job applications", Duration: defaultDuration},
	}
}

func defaultResources() []types.Resource {
	return []types.Resource{
		{Type: "Course", Name: "An introductory online course covering the fundamentals", Category: "Online Course"},
		{Type: "Book", Name: "A well-reviewed foundational book for the field", Category: "Book"},
		{Type: "Documentation", Name: "Official documentation for the core tools", Category: "Documentation"},
		{Type: "Certification", Name: "An entry-level industry certification", Category: "Resource"},
	}
}

func defaultProjects() []string {
	return []string{
		"Create a personal portfolio website",
		"Build a project related to your interests",
		"Contribute to an open-source project",
	}
}

func defaultSkillGap(career string) string {
	return fmt.Sprintf("Compare your current skills with the core requirements of the %s role. "+
		"Focus first on the fundamentals you have not yet practised, then build depth through projects.", career)
}

const defaultNetworking = "Join professional communities and online forums, attend industry meetups and events, " +
	"and look for a mentor already working in the field."

// DefaultRoadmap returns the complete canonical roadmap for a career title.
func DefaultRoadmap(career string) types.Roadmap {
	career = careerTitle(career)
	return types.Roadmap{
		Career:           career,
		SkillGapAnalysis: defaultSkillGap(career),
		LearningPhases:   DefaultPhases(),
		Resources:        defaultResources(),
		Timeline:         defaultTimeline,
		Projects:         defaultProjects(),
		Networking:       defaultNetworking,
	}
}

// fillDefaults populates every empty field of r from the default roadmap and
// enforces the list caps.
func fillDefaults(r *types.Roadmap, career string) {
	def := DefaultRoadmap(career)
	if strings.TrimSpace(r.Career) == "" {
		r.Career = def.Career
	}
	if strings.TrimSpace(r.SkillGapAnalysis) == "" {
		r.SkillGapAnalysis = def.SkillGapAnalysis
	}
	if len(r.LearningPhases) == 0 {
		r.LearningPhases = def.LearningPhases
	}
	for i := range r.LearningPhases {
		if strings.TrimSpace(r.LearningPhases[i].Name) == "" {
			r.LearningPhases[i].Name = fmt.Sprintf("Phase %d", i+1)
		}
		if strings.TrimSpace(r.LearningPhases[i].Duration) == "" {
			r.LearningPhases[i].Duration = defaultDuration
		}
	}
	if len(r.Resources) == 0 {
		r.Resources = def.Resources
	}
	if len(r.Resources) > maxResources {
		r.Resources = r.Resources[:maxResources]
	}
	if strings.TrimSpace(r.Timeline) == "" {
		r.Timeline = def.Timeline
	}
	if len(r.Projects) == 0 {
		r.Projects = def.Projects
	}
	if len(r.Projects) > maxProjects {
		r.Projects = r.Projects[:maxProjects]
	}
	if strings.TrimSpace(r.Networking) == "" {
		r.Networking = def.Networking
	}
}

func careerTitle(title string) string {
	if title = strings.TrimSpace(title); title != "" {
		return title
	}
	return unknownCareer
}
