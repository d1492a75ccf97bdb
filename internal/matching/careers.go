package matching

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

const (
	maxCareerResults = 8
	minCareerResults = 3
	careerThreshold  = 15

	interestMax   = 30
	goalsMax      = 25
	subjectsMax   = 20
	strengthsMax  = 15
	activitiesMax = 10
)

// Title keyword sets used by the interest and goal chains.
var (
	fitnessTitles    = []string{"fitness", "sport", "trainer", "coach", "athletic", "physical"}
	healthcareTitles = []string{"health", "medical", "nurse", "therapist", "physician", "clinical"}
	techTitles       = []string{"software", "developer", "engineer", "data", "scientist", "cyber", "programmer", "web", "cloud", "technology"}
	creativeTitles   = []string{"design", "creative", "artist", "teacher", "education", "writer", "animator"}
	mediaTitles      = []string{"marketing", "media", "content", "communications", "brand"}
	businessTitles   = []string{"manager", "analyst", "consultant", "marketing", "business", "entrepreneur"}
	educationTitles  = []string{"teacher", "education", "tutor", "instructor", "professor", "counselor"}
)

var (
	sportsInterests   = []string{"sports", "physical"}
	scienceInterest   = []string{"science", "technology"}
	artsInterests     = []string{"arts", "creativity", "culture", "creative"}
	businessInterests = []string{"business"}
)

// careerCandidate is one career seen through one profile.
type careerCandidate struct {
	interests   string
	goals       string
	subjects    []string
	strengths   []string
	activities  []string
	title       string
	description string
}

func newCandidate(profile types.UserProfile, career types.CareerRecord) careerCandidate {
	return careerCandidate{
		interests:   strings.ToLower(profile.Interests),
		goals:       strings.ToLower(profile.FutureGoals),
		subjects:    profile.FavoriteSubjects.Tokens(),
		strengths:   profile.Strengths.Tokens(),
		activities:  profile.Activities.Tokens(),
		title:       strings.ToLower(career.Title),
		description: strings.ToLower(career.Description),
	}
}

func titleScore(keywords []string, pts int) func(careerCandidate) int {
	return func(c careerCandidate) int {
		if containsAny(c.title, keywords...) {
			return pts
		}
		return 0
	}
}

// interestRules select one bucket from the profile's interests, then score the
// career title within it.
var interestRules = []rule[careerCandidate]{
	{
		label: "sports",
		when:  func(c careerCandidate) bool { return containsAny(c.interests, sportsInterests...) },
		score: func(c careerCandidate) int {
			switch {
			case containsAny(c.title, fitnessTitles...):
				return 30
			case containsAny(c.title, healthcareTitles...):
				return 25
			}
			return 0
		},
	},
	{
		label: "science",
		when:  func(c careerCandidate) bool { return containsAny(c.interests, scienceInterest...) },
		score: titleScore(techTitles, 30),
	},
	{
		label: "arts",
		when:  func(c careerCandidate) bool { return containsAny(c.interests, artsInterests...) },
		score: func(c careerCandidate) int {
			switch {
			case containsAny(c.title, creativeTitles...):
				return 30
			case containsAny(c.title, mediaTitles...):
				return 25
			}
			return 0
		},
	},
	{
		label: "business",
		when:  func(c careerCandidate) bool { return containsAny(c.interests, businessInterests...) },
		score: titleScore(businessTitles, 30),
	},
}

func goalScore(keywords []string) func(careerCandidate) int {
	return func(c careerCandidate) int {
		switch {
		case containsAny(c.title, keywords...):
			return 25
		case containsAny(c.description, keywords...):
			return 15
		}
		return 0
	}
}

var goalRules = []rule[careerCandidate]{
	{
		label: "healthcare",
		when:  func(c careerCandidate) bool { return containsAny(c.goals, "health", "wellness", "medic") },
		score: goalScore(healthcareTitles),
	},
	{
		label: "technology",
		when:  func(c careerCandidate) bool { return containsAny(c.goals, "technolog", "tech", "software", "coding") },
		score: goalScore(techTitles),
	},
	{
		label: "business",
		when:  func(c careerCandidate) bool { return containsAny(c.goals, "business", "entrepreneur", "startup", "finance") },
		score: goalScore(businessTitles),
	},
	{
		label: "education",
		when:  func(c careerCandidate) bool { return containsAny(c.goals, "education", "teach", "equality") },
		score: goalScore(educationTitles),
	},
}

// keywordGroup awards points when a declared answer names one of its keys and
// the career matches one of its titles.
type keywordGroup struct {
	keys   []string
	titles []string
	points int
}

var subjectGroups = []keywordGroup{
	{keys: []string{"math"}, titles: []string{"analyst", "data", "engineer", "scientist", "actuar", "financ"}, points: 10},
	{keys: []string{"computer", "programming", "coding", "it"}, titles: []string{"software", "developer", "data", "cyber", "web", "programmer"}, points: 10},
	{keys: []string{"science", "biology", "chemistry", "physics"}, titles: []string{"scientist", "medical", "nurse", "health", "research", "lab"}, points: 10},
	{keys: []string{"art", "design"}, titles: []string{"design", "artist", "creative", "animator"}, points: 10},
	{keys: []string{"english", "literature", "writing"}, titles: []string{"writer", "content", "editor", "journalist", "communications"}, points: 8},
	{keys: []string{"business", "economics"}, titles: []string{"business", "manager", "analyst", "consultant", "marketing"}, points: 8},
	{keys: []string{"physical education", "pe", "sport"}, titles: []string{"fitness", "sport", "coach", "trainer", "physical"}, points: 8},
	{keys: []string{"history", "social"}, titles: []string{"teacher", "education", "policy", "counsel"}, points: 8},
}

var strengthGroups = []keywordGroup{
	{keys: []string{"leader"}, titles: []string{"manager", "director", "lead", "executive", "coordinator", "consultant"}, points: 8},
	{keys: []string{"communicat"}, titles: []string{"marketing", "teacher", "communications", "nurse", "sales", "counselor", "writer"}, points: 8},
	{keys: []string{"problem"}, titles: []string{"engineer", "developer", "analyst", "scientist", "consultant", "technician"}, points: 8},
	{keys: []string{"creativ"}, titles: []string{"design", "artist", "creative", "writer", "content", "animator"}, points: 8},
}

var activityGroups = []keywordGroup{
	{keys: []string{"sports", "outdoor"}, titles: []string{"fitness", "sport", "coach", "trainer", "outdoor", "physical"}, points: 10},
	{keys: []string{"coding", "programming", "games", "gaming"}, titles: []string{"software", "developer", "programmer", "game", "web", "data"}, points: 10},
	{keys: []string{"writing", "reading"}, titles: []string{"writer", "content", "editor", "journalist", "teacher", "librar"}, points: 10},
	{keys: []string{"art", "drawing", "painting"}, titles: []string{"design", "artist", "animator", "illustrat", "creative"}, points: 10},
}

// matchesKey reports whether a declared answer names key. Short keys must match
// a whole word so that "it" does not match "writing".
func matchesKey(answer, key string) bool {
	if len(key) <= 2 {
		return slices.Contains(strings.Fields(answer), key)
	}
	return strings.Contains(answer, key)
}

func groupFor(groups []keywordGroup, answer string) (keywordGroup, bool) {
	for _, g := range groups {
		for _, key := range g.keys {
			if matchesKey(answer, key) {
				return g, true
			}
		}
	}
	return keywordGroup{}, false
}

// groupScore sums the points of every answer whose group matches text, clamped to limit.
func groupScore(groups []keywordGroup, answers []string, limit int, texts ...string) int {
	total := 0
	for _, answer := range answers {
		g, ok := groupFor(groups, answer)
		if !ok {
			continue
		}
		for _, text := range texts {
			if containsAny(text, g.titles...) {
				total += g.points
				break
			}
		}
	}
	return clamp(total, 0, limit)
}

// ScoreCareer returns the clamped 0-100 score of one career for a profile.
func ScoreCareer(profile types.UserProfile, career types.CareerRecord) int {
	c := newCandidate(profile, career)

	score := clamp(chainScore(interestRules, c), 0, interestMax)
	score += clamp(chainScore(goalRules, c), 0, goalsMax)
	score += groupScore(subjectGroups, c.subjects, subjectsMax, c.title)
	score += groupScore(strengthGroups, c.strengths, strengthsMax, c.title)
	score += groupScore(activityGroups, c.activities, activitiesMax, c.title, c.description)

	return clamp(score, 0, 100)
}

// Explanation returns the human-readable reason attached to a career match.
func Explanation(profile types.UserProfile) string {
	interests := strings.TrimSpace(profile.Interests)
	if interests == "" {
		interests = "your"
	}
	return fmt.Sprintf("Matched based on %s interests and relevant background", interests)
}

// RecommendCareers scores every career in corpus against the profile and returns
// at most eight matches in descending score order. Careers scoring 15 or less are
// dropped; when fewer than three remain, curated careers are added. An empty
// corpus is replaced by the default careers. The corpus is never modified.
func RecommendCareers(profile types.UserProfile, corpus []types.CareerRecord) (matches []types.CareerMatch) {
	defer func() {
		if r := recover(); r != nil {
			matches = unscoredDefaults()
		}
	}()

	if len(corpus) == 0 {
		corpus = DefaultCareers()
	}

	explanation := Explanation(profile)
	for _, career := range corpus {
		score := ScoreCareer(profile, career)
		if score <= careerThreshold {
			continue
		}
		matches = append(matches, types.CareerMatch{
			CareerRecord: career.Clone(),
			MatchScore:   score,
			Explanation:  explanation,
		})
	}

	if len(matches) < minCareerResults {
		matches = appendCurated(matches, curatedFor(profile))
	}

	sortCareerMatches(matches)
	if len(matches) > maxCareerResults {
		matches = matches[:maxCareerResults]
	}
	return matches
}

// curatedFor picks the arts set when the profile falls in the arts interest
// bucket and the sports and health set otherwise.
func curatedFor(profile types.UserProfile) []types.CareerMatch {
	c := newCandidate(profile, types.CareerRecord{})
	if r, ok := firstMatch(interestRules, c); ok && r.label == "arts" {
		return curatedArtsCareers()
	}
	return curatedSportsCareers()
}

func appendCurated(matches, curated []types.CareerMatch) []types.CareerMatch {
	for _, candidate := range curated {
		if containsCareer(matches, candidate.CareerRecord) {
			continue
		}
		matches = append(matches, candidate)
	}
	return matches
}

func containsCareer(matches []types.CareerMatch, career types.CareerRecord) bool {
	return slices.ContainsFunc(matches, func(m types.CareerMatch) bool {
		return m.CareerID == career.CareerID || strings.EqualFold(m.Title, career.Title)
	})
}

func sortCareerMatches(matches []types.CareerMatch) {
	slices.SortStableFunc(matches, func(a, b types.CareerMatch) int {
		return b.MatchScore - a.MatchScore
	})
}

func unscoredDefaults() []types.CareerMatch {
	defaults := DefaultCareers()
	if len(defaults) > 5 {
		defaults = defaults[:5]
	}
	out := make([]types.CareerMatch, 0, len(defaults))
	for _, career := range defaults {
		out = append(out, types.CareerMatch{CareerRecord: career})
	}
	return out
}
