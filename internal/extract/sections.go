// Package extract splits free-form LLM text into named sections and bullet lists.
// Every function here is total: malformed or empty input yields an empty or
// placeholder result, never an error.
package extract

import "strings"

// Placeholder is returned by ExtractBulletPoints when a block holds no usable line.
const Placeholder = "Information being updated..."

// Bullet is the normalized prefix of every extracted list line.
const Bullet = "• "

// TrendCategories are the seven fixed section headings of an industry-trends brief.
var TrendCategories = []string{
	"EMERGING TECHNOLOGIES",
	"MARKET TRENDS",
	"SKILL DEMANDS",
	"INDUSTRY NEWS",
	"FUTURE OUTLOOK",
	"SALARY TRENDS",
	"KEY COMPANIES",
}

// headingMarkers end a section started by ExtractSection.
var headingMarkers = []string{"#", "##", "section", "**"}

// ExtractSection returns the lines following the first line that contains
// sectionName (case-insensitive) up to the next heading marker line. Lines that
// repeat the section name are treated as part of the heading. Returns "" when the
// name never appears.
func ExtractSection(text, sectionName string) string {
	name := strings.ToLower(sectionName)
	if name == "" {
		return ""
	}

	var lines []string
	inSection := false
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, name):
			inSection = true
		case inSection && hasHeadingMarker(lower):
			return strings.TrimSpace(strings.Join(lines, "\n"))
		case inSection:
			lines = append(lines, line)
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func hasHeadingMarker(lower string) bool {
	for _, marker := range headingMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// ExtractBulletPoints normalizes an isolated section (heading line plus body) into
// "• "-prefixed lines joined with newlines. The first line is dropped as the
// heading, lines restating a trend category are skipped, and lines of five
// characters or fewer after marker stripping are discarded.
func ExtractBulletPoints(section string) string {
	lines := strings.Split(strings.TrimSpace(section), "\n")
	if len(lines) <= 1 {
		return Placeholder
	}

	var points []string
	for _, line := range lines[1:] {
		item := StripMarker(line)
		if item == "" || IsCategoryHeading(item) {
			continue
		}
		if len([]rune(item)) <= 5 {
			continue
		}
		points = append(points, Bullet+item)
	}

	if len(points) == 0 {
		return Placeholder
	}
	return strings.Join(points, "\n")
}

// IsCategoryHeading reports whether line restates one of the trend categories,
// ignoring case, emphasis and trailing punctuation.
func IsCategoryHeading(line string) bool {
	normalized := strings.ToUpper(strings.Trim(CleanText(line), " :.#"))
	if normalized == "" {
		return false
	}
	for _, category := range TrendCategories {
		if normalized == category {
			return true
		}
		// Numbered headings such as "1. EMERGING TECHNOLOGIES"
		if strings.HasSuffix(normalized, " "+category) && isOrdinal(strings.TrimSuffix(normalized, " "+category)) {
			return true
		}
	}
	return false
}

func isOrdinal(s string) bool {
	s = strings.TrimRight(s, ".)")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
