package matching

import (
	"context"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/career-compass/internal/types"
)

const (
	maxMentorResults = 6
	mentorThreshold  = 20
	interestPoints   = 20
	skillPoints      = 10
)

// MentorSource supplies the mentor corpus.
type MentorSource interface {
	Mentors(ctx context.Context) ([]types.MentorRecord, error)
}

// mentorCandidate is one mentor seen through a selected career and profile.
type mentorCandidate struct {
	careerTitle string
	interests   string
	industry    string
	title       string
	expertise   []string
}

func (c mentorCandidate) hasExpertise(name string) bool {
	return slices.Contains(c.expertise, name)
}

func (c mentorCandidate) expertiseContains(fragment string) bool {
	return slices.ContainsFunc(c.expertise, func(e string) bool { return strings.Contains(e, fragment) })
}

func industryScore(industry string, pts int) func(mentorCandidate) int {
	return func(c mentorCandidate) int {
		if c.industry == industry {
			return pts
		}
		return 0
	}
}

func expertiseScore(check func(mentorCandidate) bool, pts int) func(mentorCandidate) int {
	return func(c mentorCandidate) int {
		if check(c) {
			return pts
		}
		return 0
	}
}

func careerTitleHas(keywords ...string) func(mentorCandidate) bool {
	return func(c mentorCandidate) bool { return containsAny(c.careerTitle, keywords...) }
}

// fieldRules pick one branch from the career title; the branch then scores the
// mentor, possibly zero.
var fieldRules = []rule[mentorCandidate]{
	{label: "technology", when: careerTitleHas("software", "engineer", "developer", "tech"), score: industryScore(types.IndustryTechnology, 40)},
	{label: "data", when: careerTitleHas("data", "analyst", "scientist"), score: expertiseScore(func(c mentorCandidate) bool { return c.hasExpertise("data science") }, 50)},
	{label: "design", when: careerTitleHas("design", "ux", "ui"), score: expertiseScore(func(c mentorCandidate) bool { return c.expertiseContains("design") }, 50)},
	{label: "marketing", when: careerTitleHas("marketing", "digital"), score: expertiseScore(func(c mentorCandidate) bool { return c.expertiseContains("marketing") }, 50)},
	{label: "finance", when: careerTitleHas("finance", "financial"), score: industryScore(types.IndustryFinance, 40)},
	{label: "healthcare", when: careerTitleHas("health", "medical", "nurse"), score: industryScore(types.IndustryHealthcare, 40)},
	{label: "education", when: careerTitleHas("education", "teacher"), score: industryScore(types.IndustryEducation, 40)},
}

func interestRule(label string, mentorMatches func(mentorCandidate) bool) rule[mentorCandidate] {
	return rule[mentorCandidate]{
		label: label,
		when: func(c mentorCandidate) bool {
			return strings.Contains(c.interests, label) && mentorMatches(c)
		},
		score: func(mentorCandidate) int { return interestPoints },
	}
}

// userInterestRules require both the interest and the mentor condition, so a
// failed mentor condition falls through to the next rule.
var userInterestRules = []rule[mentorCandidate]{
	interestRule("technology", func(c mentorCandidate) bool { return c.industry == types.IndustryTechnology }),
	interestRule("business", func(c mentorCandidate) bool { return containsAny(c.title, "manager", "director", "vp", "lead") }),
	interestRule("creative", func(c mentorCandidate) bool { return c.expertiseContains("design") }),
	interestRule("healthcare", func(c mentorCandidate) bool { return c.industry == types.IndustryHealthcare }),
	interestRule("education", func(c mentorCandidate) bool { return c.industry == types.IndustryEducation }),
	interestRule("science", func(c mentorCandidate) bool { return containsAny(c.title, "scientist", "researcher", "analyst") }),
}

// ScoreMentor returns the raw score of one mentor. Skill overlap is not capped.
func ScoreMentor(career types.CareerRecord, profile types.UserProfile, mentor types.MentorRecord) int {
	c := mentorCandidate{
		careerTitle: strings.ToLower(career.Title),
		interests:   strings.ToLower(profile.Interests),
		industry:    strings.ToLower(strings.TrimSpace(mentor.Industry)),
		title:       strings.ToLower(mentor.Title),
		expertise:   lowerAll(mentor.Expertise),
	}

	score := chainScore(fieldRules, c)

	for _, skill := range lowerAll(career.KeySkills) {
		if skill != "" && c.expertiseContains(skill) {
			score += skillPoints
		}
	}

	score += chainScore(userInterestRules, c)
	return score
}

// ScoreMentors scores mentors for a career and profile and returns at most six
// with a score above 20, in descending score order. An empty mentor list is
// replaced by the default mentors.
func ScoreMentors(career types.CareerRecord, profile types.UserProfile, mentors []types.MentorRecord) (matches []types.MentorMatch) {
	if len(mentors) == 0 {
		mentors = DefaultMentors()
	}
	defer func() {
		if r := recover(); r != nil {
			matches = unscoredMentors(mentors)
		}
	}()

	for _, mentor := range mentors {
		score := ScoreMentor(career, profile, mentor)
		if score <= mentorThreshold {
			continue
		}
		matches = append(matches, types.MentorMatch{MentorRecord: mentor.Clone(), MatchScore: score})
	}

	slices.SortStableFunc(matches, func(a, b types.MentorMatch) int {
		return b.MatchScore - a.MatchScore
	})
	if len(matches) > maxMentorResults {
		matches = matches[:maxMentorResults]
	}
	return matches
}

func unscoredMentors(mentors []types.MentorRecord) []types.MentorMatch {
	n := min(len(mentors), 3)
	out := make([]types.MentorMatch, 0, n)
	for _, mentor := range mentors[:n] {
		out = append(out, types.MentorMatch{MentorRecord: mentor.Clone()})
	}
	return out
}

// MentorMatcher matches mentors from a source, falling back to the default
// mentors when the source fails or is empty.
type MentorMatcher struct {
	Source MentorSource
	Logger *zap.Logger
}

// NewMentorMatcher creates a MentorMatcher.
func NewMentorMatcher(source MentorSource, logger *zap.Logger) *MentorMatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MentorMatcher{Source: source, Logger: logger}
}

// Match loads the mentor corpus and scores it for the career and profile.
func (m *MentorMatcher) Match(ctx context.Context, career types.CareerRecord, profile types.UserProfile) []types.MentorMatch {
	logger := m.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var mentors []types.MentorRecord
	if m.Source != nil {
		loaded, err := m.Source.Mentors(ctx)
		if err != nil {
			logger.Warn("mentor corpus unavailable, using defaults", zap.Error(err))
		} else {
			mentors = loaded
		}
	}
	if len(mentors) == 0 {
		logger.Debug("mentor corpus empty, using defaults")
	}

	matches := ScoreMentors(career, profile, mentors)
	logger.Debug("mentors matched", zap.String("career", career.Title), zap.Int("matches", len(matches)))
	return matches
}
