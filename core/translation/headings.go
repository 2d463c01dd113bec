package translation

import (
	"regexp"
	"strings"
)

// versePattern matches inline verse markers like [1].
var versePattern = regexp.MustCompile(`\[(\d+)\]`)

// spacePattern collapses runs of whitespace in verse text.
var spacePattern = regexp.MustCompile(`\s+`)

// headingMaxLen is the longest line the heading heuristic will accept.
const headingMaxLen = 80

// verseEndings are the sentence-final characters that disqualify a line
// from being a heading.
const verseEndings = `.,:;!?"'`

// IsLikelyHeading reports whether a line looks like a section heading
// rather than verse content. Headings are short phrases that do not end
// in sentence-final punctuation. This heuristic is deliberately crude; a
// short punctuation-free verse fragment can be misclassified.
func IsLikelyHeading(text string) bool {
	runes := []rune(text)
	if len(runes) == 0 || len(runes) > headingMaxLen {
		return false
	}
	return !strings.ContainsRune(verseEndings, runes[len(runes)-1])
}

// ParseVerses splits raw translation text into verses, pulling out
// free-standing section headings.
//
// Sources that include headings format them on their own line, set off
// by blank lines, without sentence punctuation. Within the span after a
// verse marker, lines before any blank line are always verse text; a
// line after a blank line is either a heading for the *next* verse
// (heading-shaped) or a verse-text continuation (punctuation-terminated,
// which also resets the blank-line state). Verses whose text collapses
// to nothing are omitted.
func ParseVerses(passageText string) []Verse {
	var verses []Verse
	text := strings.TrimSpace(passageText)

	matches := versePattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return verses
	}

	// A heading found at the end of one span carries forward to the
	// verse that follows it.
	var currentHeading string

	// Text before the first marker: the trailing non-blank line may be a
	// heading for the first verse.
	before := strings.TrimSpace(text[:matches[0][0]])
	if before != "" {
		lines := strings.Split(before, "\n")
		for i := len(lines) - 1; i >= 0; i-- {
			stripped := strings.TrimSpace(lines[i])
			if stripped != "" {
				if IsLikelyHeading(stripped) {
					currentHeading = stripped
				}
				break
			}
		}
	}

	for i, m := range matches {
		verseNum := parseInt(text[m[2]:m[3]])
		start := m[1]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		segment := text[start:end]
		lines := strings.Split(segment, "\n")

		var verseLines []string
		trailingHeading := ""
		blankSeen := false

		for _, line := range lines {
			stripped := strings.TrimSpace(line)
			switch {
			case stripped == "":
				blankSeen = true
			case blankSeen:
				if IsLikelyHeading(stripped) {
					trailingHeading = stripped
				} else {
					verseLines = append(verseLines, stripped)
					blankSeen = false
				}
			default:
				verseLines = append(verseLines, stripped)
			}
		}

		verseText := strings.TrimSpace(spacePattern.ReplaceAllString(strings.Join(verseLines, " "), " "))

		if verseText != "" {
			verses = append(verses, Verse{
				Number:  verseNum,
				Text:    verseText,
				Heading: currentHeading,
			})
		}

		currentHeading = trailingHeading
	}

	return verses
}

func parseInt(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
