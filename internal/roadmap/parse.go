package roadmap

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/jonathan/career-compass/internal/extract"
	"github.com/jonathan/career-compass/internal/llm"
	"github.com/jonathan/career-compass/internal/types"
)

const (
	maxResources = 7
	maxProjects  = 5
)

type section int

const (
	sectionNone section = iota
	sectionSkillGap
	sectionPhases
	sectionResources
	sectionTimeline
	sectionProjects
	sectionNetworking
)

// dispatch is evaluated in order; the first keyword found in a block's heading wins.
var dispatch = []struct {
	keyword string
	section section
}{
	{"skill gap", sectionSkillGap},
	{"learning phase", sectionPhases},
	{"resource", sectionResources},
	{"timeline", sectionTimeline},
	{"project", sectionProjects},
	{"networking", sectionNetworking},
}

// phasePattern matches "Phase <n>: <name> (<duration>): <description>" with the
// duration and description optional.
var phasePattern = regexp.MustCompile(`(?i)^(?:[-•]\s*)?phase\s*(\d+)\s*[:.)\-–]?\s*([^(:]*?)\s*(?:\(([^)]*)\))?\s*(?:(?::|\s[-–]\s)\s*(.*))?$`)

// Parse converts a completion response into a fully populated roadmap and reports
// which tier produced it. It never fails: a panic inside the parser is recovered
// and the default roadmap is returned.
func Parse(text, career string) (roadmap types.Roadmap, source types.Source) {
	career = careerTitle(career)
	defer func() {
		if r := recover(); r != nil {
			roadmap, source = DefaultRoadmap(career), types.SourceDefault
		}
	}()

	if strings.TrimSpace(text) == "" {
		return DefaultRoadmap(career), types.SourceDefault
	}

	if parsed, ok := parseJSON(text); ok {
		parsed.Career = career
		fillDefaults(&parsed, career)
		return parsed, types.SourceParsed
	}

	parsed, recognized := parseSections(text)
	if !recognized {
		return DefaultRoadmap(career), types.SourceDefault
	}
	parsed.Career = career
	fillDefaults(&parsed, career)
	return parsed, types.SourceHeuristic
}

type jsonRoadmap struct {
	SkillGapAnalysis extract.TextList `json:"skill_gap_analysis"`
	LearningPhases   []jsonPhase      `json:"learning_phases"`
	Resources        []jsonResource   `json:"resources"`
	Timeline         extract.TextList `json:"timeline"`
	Projects         extract.TextList `json:"projects"`
	Networking       extract.TextList `json:"networking"`
}

type jsonPhase struct {
	Name        string           `json:"name"`
	Description extract.TextList `json:"description"`
	Duration    string           `json:"duration"`
}

// jsonResource accepts either a resource object or a bare name.
type jsonResource struct {
	types.Resource
}

func (r *jsonResource) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		r.Resource = newResource(name)
		return nil
	}
	return json.Unmarshal(data, &r.Resource)
}

func parseJSON(text string) (types.Roadmap, bool) {
	cleaned, ok := llm.ExtractJSON(text)
	if !ok || !strings.HasPrefix(cleaned, "{") {
		return types.Roadmap{}, false
	}

	var raw jsonRoadmap
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return types.Roadmap{}, false
	}

	roadmap := types.Roadmap{
		SkillGapAnalysis: raw.SkillGapAnalysis.Text(),
		Timeline:         raw.Timeline.Text(),
		Networking:       raw.Networking.Text(),
	}
	for _, phase := range raw.LearningPhases {
		roadmap.LearningPhases = append(roadmap.LearningPhases, types.LearningPhase{
			Name:        strings.TrimSpace(phase.Name),
			Description: phase.Description.Text(),
			Duration:    strings.TrimSpace(phase.Duration),
		})
	}
	for _, res := range raw.Resources {
		if strings.TrimSpace(res.Name) == "" {
			continue
		}
		if res.Type == "" || res.Category == "" {
			inferred := newResource(res.Name)
			if res.Type == "" {
				res.Type = inferred.Type
			}
			if res.Category == "" {
				res.Category = inferred.Category
			}
		}
		roadmap.Resources = append(roadmap.Resources, res.Resource)
	}
	for _, project := range raw.Projects {
		if project = extract.StripMarker(project); project != "" {
			roadmap.Projects = append(roadmap.Projects, project)
		}
	}

	empty := roadmap.SkillGapAnalysis == "" && roadmap.Timeline == "" && roadmap.Networking == "" &&
		len(roadmap.LearningPhases) == 0 && len(roadmap.Resources) == 0 && len(roadmap.Projects) == 0
	return roadmap, !empty
}

// parseSections is the heuristic tier. Text is split into blank-line delimited
// blocks (and further at upper-case heading lines); each block is classified by
// its first line. An unmatched block continues the open section only when it is a
// list (or, under learning phases, starts with a phase line); any other unmatched
// block is discarded, and bare headings of unknown sections close the open one.
func parseSections(text string) (types.Roadmap, bool) {
	collected := map[section][]string{}
	current := sectionNone
	recognized := false

	for _, block := range segments(text) {
		lines := strings.Split(block, "\n")
		if sec, rest, ok := classify(lines[0]); ok {
			current = sec
			recognized = true
			if rest != "" {
				collected[current] = append(collected[current], rest)
			}
			collected[current] = append(collected[current], lines[1:]...)
			continue
		}
		if isSectionBreak(lines[0]) {
			current = sectionNone
			continue
		}
		if continuesSection(current, lines[0]) {
			collected[current] = append(collected[current], lines...)
		}
	}

	var roadmap types.Roadmap
	roadmap.SkillGapAnalysis = extract.CleanBlock(strings.Join(collected[sectionSkillGap], "\n"))
	roadmap.LearningPhases = parsePhases(collected[sectionPhases])
	roadmap.Resources = parseResources(collected[sectionResources])
	roadmap.Timeline = extract.CleanBlock(strings.Join(collected[sectionTimeline], "\n"))
	roadmap.Projects = parseProjects(collected[sectionProjects])
	roadmap.Networking = extract.CleanBlock(strings.Join(collected[sectionNetworking], "\n"))
	return roadmap, recognized
}

// segments splits text into blocks, starting a new block at every section break
// line even when no blank line precedes it.
func segments(text string) []string {
	var out []string
	for _, block := range extract.SplitBlocks(text) {
		var current []string
		for _, line := range strings.Split(block, "\n") {
			if len(current) > 0 && isSectionBreak(line) {
				out = append(out, strings.Join(current, "\n"))
				current = nil
			}
			current = append(current, line)
		}
		if len(current) > 0 {
			out = append(out, strings.Join(current, "\n"))
		}
	}
	return out
}

func continuesSection(current section, line string) bool {
	switch {
	case current == sectionNone:
		return false
	case extract.IsListLine(line):
		return true
	default:
		return current == sectionPhases && phasePattern.MatchString(extract.CleanText(line))
	}
}

// classify matches a block's first line against the dispatch table, case
// insensitively. Bullets, phase lines, sentences and lines of more than five
// words are never headings. Text after the first colon is returned as inline
// section content.
func classify(line string) (section, string, bool) {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "•") {
		return sectionNone, "", false
	}

	cleaned := extract.CleanText(trimmed)
	if phasePattern.MatchString(cleaned) {
		return sectionNone, "", false
	}
	heading, rest, _ := strings.Cut(cleaned, ":")
	heading = strings.Trim(stripOrdinal(strings.Trim(heading, " #")), " #")
	if heading == "" || len(strings.Fields(heading)) > 5 || strings.HasSuffix(heading, ".") {
		return sectionNone, "", false
	}

	lower := strings.ToLower(heading)
	for _, entry := range dispatch {
		if strings.Contains(lower, entry.keyword) {
			return entry.section, strings.TrimSpace(rest), true
		}
	}
	return sectionNone, "", false
}

// stripOrdinal removes a leading "3." or "3)" from a numbered heading.
func stripOrdinal(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(s) || (s[i] != '.' && s[i] != ')') {
		return s
	}
	return s[i+1:]
}

func isSectionBreak(line string) bool {
	return extract.IsHeadingLine(line) && !phasePattern.MatchString(extract.CleanText(line))
}

func parsePhases(lines []string) []types.LearningPhase {
	var phases []types.LearningPhase
	for _, line := range lines {
		cleaned := extract.CleanText(line)
		if cleaned == "" {
			continue
		}
		if m := phasePattern.FindStringSubmatch(cleaned); m != nil {
			phase := types.LearningPhase{
				Name:        strings.TrimSpace(m[2]),
				Duration:    strings.TrimSpace(m[3]),
				Description: strings.TrimSpace(m[4]),
			}
			if phase.Name == "" {
				phase.Name = "Phase " + m[1]
			}
			if phase.Duration == "" {
				phase.Duration = defaultDuration
			}
			phases = append(phases, phase)
			continue
		}
		if len(phases) == 0 {
			continue
		}
		open := &phases[len(phases)-1]
		detail := extract.StripMarker(line)
		if detail == "" {
			continue
		}
		if open.Description == "" {
			open.Description = detail
		} else {
			open.Description += "\n" + detail
		}
	}
	return phases
}

func parseResources(lines []string) []types.Resource {
	var resources []types.Resource
	for _, item := range extract.ListItems(strings.Join(lines, "\n")) {
		resources = append(resources, newResource(item))
		if len(resources) == maxResources {
			break
		}
	}
	return resources
}

func parseProjects(lines []string) []string {
	items := extract.ListItems(strings.Join(lines, "\n"))
	if len(items) > maxProjects {
		items = items[:maxProjects]
	}
	return items
}

func newResource(name string) types.Resource {
	name = extract.StripMarker(name)
	return types.Resource{
		Type:     resourceType(name),
		Name:     name,
		Category: resourceCategory(name),
	}
}

var resourceTypes = []struct {
	keywords []string
	label    string
}{
	{[]string{"certification", "certificate"}, "Certification"},
	{[]string{"course", "udemy", "coursera"}, "Course"},
	{[]string{"book"}, "Book"},
	{[]string{"documentation", "docs"}, "Documentation"},
	{[]string{"tutorial"}, "Tutorial"},
}

func resourceType(name string) string {
	lower := strings.ToLower(name)
	for _, rt := range resourceTypes {
		for _, keyword := range rt.keywords {
			if strings.Contains(lower, keyword) {
				return rt.label
			}
		}
	}
	return "Resource"
}

func resourceCategory(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "course"), strings.Contains(lower, "udemy"), strings.Contains(lower, "coursera"):
		return "Online Course"
	case strings.Contains(lower, "book"):
		return "Book"
	case strings.Contains(lower, "documentation"):
		return "Documentation"
	default:
		return "Resource"
	}
}
