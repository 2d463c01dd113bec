// Package ref parses human passage references into canonical form.
//
// A reference names a scope of the Greek New Testament at one of three
// granularities: a whole book ("Ephesians"), a single chapter
// ("Ephesians 1"), or a verse range within a chapter ("John 1:1-18").
// A single verse ("John 1:1") collapses to a one-verse range.
package ref

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/interlinear/core/errors"
)

// Kind discriminates the three passage shapes.
type Kind int

const (
	// KindBook selects a whole book.
	KindBook Kind = iota
	// KindChapter selects a single chapter.
	KindChapter
	// KindVerseRange selects a contiguous verse range within one chapter.
	KindVerseRange
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBook:
		return "book"
	case KindChapter:
		return "chapter"
	case KindVerseRange:
		return "verse_range"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// PassageReference is a parsed, canonical passage reference.
// Chapter is set for KindChapter and KindVerseRange; StartVerse and
// EndVerse are set only for KindVerseRange, with StartVerse <= EndVerse.
type PassageReference struct {
	BookID     int  `json:"book_id"`
	Kind       Kind `json:"kind"`
	Chapter    int  `json:"chapter,omitempty"`
	StartVerse int  `json:"start_verse,omitempty"`
	EndVerse   int  `json:"end_verse,omitempty"`
}

// passageGrammar is the participle grammar for passage references.
// The optional groups are nested so that numeric parts are consumed
// most-specific-first: "Book C:V1-V2", then "Book C:V", then "Book C",
// then bare "Book".
//
//nolint:govet // participle grammar tags are not standard struct tags
type passageGrammar struct {
	Book    string `parser:"@Book"`
	Chapter *int   `parser:"( @Number"`
	Start   *int   `parser:"  ( ':' @Number"`
	End     *int   `parser:"    ( '-' @Number )? )? )?"`
}

// passageLexer tokenizes passage references.
var passageLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Book names: optional leading digit, then words.
	// Examples: John, 1 John, 1John, 2 Thessalonians
	{Name: "Book", Pattern: `(?:\d\s*)?[A-Za-z]+(?:\s+[A-Za-z]+)*`},
	{Name: "Number", Pattern: `\d+`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Dash", Pattern: `-`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// passageParser parses passage references.
var passageParser = participle.MustBuild[passageGrammar](
	participle.Lexer(passageLexer),
	participle.Elide("Whitespace"),
)

// Parse parses a passage reference string.
// Supported formats:
//   - "Ephesians" (whole book)
//   - "Ephesians 1" (single chapter)
//   - "John 1:1" (single verse, collapses to a one-verse range)
//   - "John 1:1-18" (verse range)
//
// Book matching is case-insensitive and whitespace-insensitive.
func Parse(input string) (*PassageReference, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, errors.NewReference(input, "empty reference")
	}

	parsed, err := passageParser.ParseString("", trimmed)
	if err != nil {
		return nil, &errors.ReferenceError{Input: input, Reason: "unrecognized form", Err: err}
	}

	bookID, ok := BookID(parsed.Book)
	if !ok {
		return nil, errors.NewReference(input, fmt.Sprintf("unknown book %q", strings.TrimSpace(parsed.Book)))
	}

	pr := &PassageReference{BookID: bookID, Kind: KindBook}

	if parsed.Chapter != nil {
		pr.Kind = KindChapter
		pr.Chapter = *parsed.Chapter
	}

	if parsed.Start != nil {
		pr.Kind = KindVerseRange
		pr.StartVerse = *parsed.Start
		pr.EndVerse = *parsed.Start
		if parsed.End != nil {
			pr.EndVerse = *parsed.End
		}
		if pr.StartVerse > pr.EndVerse {
			return nil, errors.NewReference(input, fmt.Sprintf("verse range %d-%d is inverted", pr.StartVerse, pr.EndVerse))
		}
	}

	return pr, nil
}

// BookName returns the display name of the referenced book.
func (r *PassageReference) BookName() string {
	return BookName(r.BookID)
}

// String returns the canonical form of the reference, e.g. "John 1:1-18".
func (r *PassageReference) String() string {
	var sb strings.Builder
	sb.WriteString(BookName(r.BookID))

	switch r.Kind {
	case KindChapter:
		fmt.Fprintf(&sb, " %d", r.Chapter)
	case KindVerseRange:
		fmt.Fprintf(&sb, " %d:%d", r.Chapter, r.StartVerse)
		if r.EndVerse != r.StartVerse {
			fmt.Fprintf(&sb, "-%d", r.EndVerse)
		}
	}

	return sb.String()
}

// Contains reports whether a (chapter, verse) position falls inside the
// referenced scope.
func (r *PassageReference) Contains(chapter, verse int) bool {
	switch r.Kind {
	case KindBook:
		return true
	case KindChapter:
		return chapter == r.Chapter
	case KindVerseRange:
		return chapter == r.Chapter && verse >= r.StartVerse && verse <= r.EndVerse
	}
	return false
}
