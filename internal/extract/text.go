package extract

import (
	"strings"
	"unicode"
)

var emphasisReplacer = strings.NewReplacer("**", "", "*", "", "__", "", "_", "", "`", "")

// CleanText strips markdown emphasis characters and surrounding whitespace.
func CleanText(s string) string {
	return strings.TrimSpace(emphasisReplacer.Replace(s))
}

// CleanBlock applies CleanText to every line of a block and drops blank lines.
func CleanBlock(s string) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if cleaned := CleanText(line); cleaned != "" {
			lines = append(lines, cleaned)
		}
	}
	return strings.Join(lines, "\n")
}

// SplitBlocks splits text into blank-line delimited blocks. Blocks are trimmed
// and empty blocks are dropped. Windows line endings are normalized.
func SplitBlocks(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var blocks []string
	var current []string
	flush := func() {
		if block := strings.TrimSpace(strings.Join(current, "\n")); block != "" {
			blocks = append(blocks, block)
		}
		current = current[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return blocks
}

// StripMarker removes a leading list marker (-, •, *), emphasis characters and
// surrounding whitespace from a line.
func StripMarker(line string) string {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimLeft(trimmed, "-•* \t")
	return CleanText(trimmed)
}

// IsListLine reports whether a line starts with a digit, "-" or "•".
func IsListLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	first := []rune(trimmed)[0]
	return unicode.IsDigit(first) || first == '-' || first == '•'
}

// ListItems returns the list lines of a block with their marker (bullet or
// ordinal such as "1." or "2)") and emphasis removed. Items of five characters or
// fewer are dropped.
func ListItems(block string) []string {
	var items []string
	for _, line := range strings.Split(block, "\n") {
		if !IsListLine(line) {
			continue
		}
		item := stripOrdinal(StripMarker(line))
		if len([]rune(item)) <= 5 {
			continue
		}
		items = append(items, item)
	}
	return items
}

func stripOrdinal(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i == len(s) {
		return s
	}
	if s[i] == '.' || s[i] == ')' {
		return strings.TrimSpace(s[i+1:])
	}
	return s
}

// IsHeadingLine reports whether a line looks like a bare upper-case section
// heading such as "NEXT STEPS" or "## TIMELINE". Bulleted lines never are.
func IsHeadingLine(line string) bool {
	cleaned := strings.Trim(CleanText(line), " :#")
	if cleaned == "" || len(cleaned) > 60 || strings.HasPrefix(cleaned, "-") || strings.HasPrefix(cleaned, "•") {
		return false
	}
	hasLetter := false
	for _, r := range cleaned {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}
