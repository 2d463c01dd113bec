package corpus

import (
	"regexp"
	"strconv"
	"strings"
)

// Word is one decoded Greek word. Strongs is empty when the row carried
// no usable identifier.
type Word struct {
	Surface string `json:"greek"`
	Gloss   string `json:"gloss"`
	Strongs string `json:"strongs,omitempty"`
}

// strongsPattern matches a Strong's identifier token embedded among
// morphology codes, e.g. the G0976 in 〔BIMNRSTWH=Βίβλος=G0976=N-NSF;〕.
var strongsPattern = regexp.MustCompile(`G\d+`)

// DecodeWord decodes one corpus row's encoded word field and gloss field.
// Malformed or partial fields yield empty strings; callers filter empty
// words out during aggregation.
func DecodeWord(encoded, gloss string) Word {
	return Word{
		Surface: extractSurface(encoded),
		Gloss:   extractGloss(gloss),
		Strongs: extractStrongs(encoded),
	}
}

// extractSurface pulls the Greek surface form out of the encoded field.
// The field is =-delimited; the surface is the second part.
func extractSurface(encoded string) string {
	content := strings.Trim(strings.TrimSpace(encoded), bracketCutset)
	parts := strings.Split(content, "=")
	if len(parts) >= 2 {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// extractStrongs locates the identifier token and normalizes it.
func extractStrongs(encoded string) string {
	content := strings.Trim(strings.TrimSpace(encoded), bracketCutset)
	if m := strongsPattern.FindString(content); m != "" {
		return NormalizeID(m)
	}
	return ""
}

// extractGloss selects a gloss from the bar-delimited candidate list.
// The third candidate wins when non-empty, otherwise the first. The
// candidates are in source priority order; the third column is the most
// consistently populated one.
func extractGloss(gloss string) string {
	content := strings.Trim(strings.TrimSpace(gloss), bracketCutset)
	if content == "" {
		return ""
	}
	parts := strings.Split(content, fieldBar)
	if len(parts) >= 3 {
		if g := strings.TrimSpace(parts[2]); g != "" {
			return g
		}
	}
	return strings.TrimSpace(parts[0])
}

// NormalizeID normalizes a lexical identifier by stripping leading zeros
// from its numeric component: "G0976" -> "G976". Normalization is
// idempotent; identifiers that cannot be parsed normalize to "".
func NormalizeID(id string) string {
	if len(id) < 2 {
		return ""
	}
	prefix := id[0]
	if (prefix < 'A' || prefix > 'Z') && (prefix < 'a' || prefix > 'z') {
		return ""
	}
	n, err := strconv.Atoi(id[1:])
	if err != nil {
		return ""
	}
	return string(prefix) + strconv.Itoa(n)
}

// IDNumber returns the numeric component of a lexical identifier, or 0
// if the identifier is malformed. Used for numeric ordering of appendix
// entries.
func IDNumber(id string) int {
	if len(id) < 2 {
		return 0
	}
	n, err := strconv.Atoi(id[1:])
	if err != nil {
		return 0
	}
	return n
}
