// Package translation models fetched Bible translation text and splits
// raw passage text into per-verse records with section headings.
package translation

import "github.com/FocuswithJustin/interlinear/core/ref"

// Verse is one translation verse. Heading, when set, is a section title
// that textually preceded this verse in the source.
type Verse struct {
	Number  int    `json:"verse"`
	Text    string `json:"text"`
	Heading string `json:"heading,omitempty"`
}

// Chapter is one chapter's verses.
type Chapter struct {
	Number int     `json:"chapter"`
	Verses []Verse `json:"verses"`
}

// Passage is a translation's text for one reference scope. It carries
// the same dual shape as the Greek passage: Chapters for book and
// chapter kinds, flat Verses for verse ranges. Name tags the
// translation (e.g. "esv", "net", "kjv").
type Passage struct {
	Name     string    `json:"translation"`
	Kind     ref.Kind  `json:"kind"`
	Chapters []Chapter `json:"chapters,omitempty"`
	Verses   []Verse   `json:"verses,omitempty"`
}

// NewBookPassage builds a chaptered passage for a whole-book scope.
func NewBookPassage(name string, chapters []Chapter) *Passage {
	return &Passage{Name: name, Kind: ref.KindBook, Chapters: chapters}
}

// NewChapterPassage wraps one chapter's verses in the chaptered shape.
func NewChapterPassage(name string, chapter int, verses []Verse) *Passage {
	return &Passage{
		Name:     name,
		Kind:     ref.KindChapter,
		Chapters: []Chapter{{Number: chapter, Verses: verses}},
	}
}

// NewVersePassage builds a flat passage for a verse-range scope.
func NewVersePassage(name string, verses []Verse) *Passage {
	return &Passage{Name: name, Kind: ref.KindVerseRange, Verses: verses}
}

// VerseCount returns the total number of verses in the passage.
func (p *Passage) VerseCount() int {
	if p.Kind == ref.KindVerseRange {
		return len(p.Verses)
	}
	n := 0
	for _, ch := range p.Chapters {
		n += len(ch.Verses)
	}
	return n
}
