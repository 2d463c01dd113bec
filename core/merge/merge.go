// Package merge aligns an aggregated Greek passage with one or more
// translation passages into denormalized per-verse records.
//
// The Greek tree is authoritative: the output has exactly one merged
// verse for every Greek verse, and a translation that does not cover a
// verse contributes empty text rather than an error. Section headings
// come from the first (primary) translation only.
package merge

import (
	"github.com/FocuswithJustin/interlinear/core/corpus"
	"github.com/FocuswithJustin/interlinear/core/ref"
	"github.com/FocuswithJustin/interlinear/core/translation"
)

// Verse is one merged per-verse record. Text maps translation name to
// that translation's verse text; every supplied translation has an
// entry, possibly empty.
type Verse struct {
	Number  int               `json:"number"`
	Words   []corpus.Word     `json:"greek_words"`
	Heading string            `json:"heading,omitempty"`
	Text    map[string]string `json:"text"`
}

// Chapter is one merged chapter.
type Chapter struct {
	Number int     `json:"number"`
	Verses []Verse `json:"verses"`
}

// Document is the merged output for one passage. It mirrors the Greek
// passage's dual shape: Chapters for book and chapter kinds, flat Verses
// for verse ranges. Translations lists the translation names in the
// order supplied; the first is the primary (heading) source.
type Document struct {
	Book         string    `json:"book"`
	Kind         ref.Kind  `json:"kind"`
	Translations []string  `json:"translations"`
	Chapters     []Chapter `json:"chapters,omitempty"`
	Verses       []Verse   `json:"verses,omitempty"`

	// Misses counts translation verse lookups that found nothing, per
	// translation. Partial coverage is the expected steady state; the
	// counts exist for an aggregate log line, not per-verse reporting.
	Misses map[string]int `json:"-"`
}

// verseLookup keys translation verses by (chapter, verse).
type verseLookup map[int]map[int]translation.Verse

// buildLookup reduces a translation passage to a (chapter, verse) keyed
// lookup regardless of its own shape. Flat verse-range passages key
// under chapter 1, matching how a flat Greek side addresses them.
func buildLookup(p *translation.Passage) verseLookup {
	lookup := make(verseLookup)
	if p.Kind == ref.KindVerseRange {
		byVerse := make(map[int]translation.Verse, len(p.Verses))
		for _, v := range p.Verses {
			byVerse[v.Number] = v
		}
		lookup[1] = byVerse
		return lookup
	}
	for _, ch := range p.Chapters {
		byVerse := make(map[int]translation.Verse, len(ch.Verses))
		for _, v := range ch.Verses {
			byVerse[v.Number] = v
		}
		lookup[ch.Number] = byVerse
	}
	return lookup
}

// Merge aligns the Greek passage with the supplied translations. The
// first translation is the primary one; its headings are carried onto
// the merged verses.
func Merge(greek *corpus.Passage, sources ...*translation.Passage) *Document {
	doc := &Document{
		Book:   greek.Book,
		Kind:   greek.Kind,
		Misses: make(map[string]int),
	}

	lookups := make([]verseLookup, len(sources))
	for i, src := range sources {
		doc.Translations = append(doc.Translations, src.Name)
		lookups[i] = buildLookup(src)
	}

	mergeVerse := func(chapter int, gv corpus.Verse) Verse {
		mv := Verse{
			Number: gv.Number,
			Words:  gv.Words,
			Text:   make(map[string]string, len(sources)),
		}
		for i, src := range sources {
			tv, ok := lookups[i][chapter][gv.Number]
			if !ok {
				doc.Misses[src.Name]++
			}
			mv.Text[src.Name] = tv.Text
			if i == 0 {
				mv.Heading = tv.Heading
			}
		}
		return mv
	}

	if greek.Kind == ref.KindVerseRange {
		// A flat Greek shape addresses flat translations as chapter 1.
		for _, gv := range greek.Verses {
			doc.Verses = append(doc.Verses, mergeVerse(1, gv))
		}
		return doc
	}

	for _, gch := range greek.Chapters {
		mch := Chapter{Number: gch.Number}
		for _, gv := range gch.Verses {
			mch.Verses = append(mch.Verses, mergeVerse(gch.Number, gv))
		}
		doc.Chapters = append(doc.Chapters, mch)
	}
	return doc
}
