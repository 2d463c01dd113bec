// Package latex renders merged interlinear documents to LaTeX and
// compiles them with LuaLaTeX. Two layouts are supported: a portrait
// page with the primary translation beside the Greek, and a landscape
// page with a column per translation, both sized for the Remarkable
// Paper Pro.
package latex

import (
	"regexp"
	"strings"
)

// escaper rewrites LaTeX special characters in a single pass, so
// replacement text is never itself re-escaped.
var escaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// Escape escapes LaTeX special characters in text. Greek surface forms
// are emitted unescaped; only English-side text goes through here.
func Escape(text string) string {
	if text == "" {
		return ""
	}
	return escaper.Replace(text)
}

var unsafeFilename = regexp.MustCompile(`[^\w\-]`)

// SanitizeFilename converts a passage reference into a safe file stem,
// e.g. "John 1:1-18" becomes "John_1_1-18".
func SanitizeFilename(passageRef string) string {
	name := strings.ReplaceAll(passageRef, " ", "_")
	name = strings.ReplaceAll(name, ":", "_")
	return unsafeFilename.ReplaceAllString(name, "")
}
