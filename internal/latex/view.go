package latex

import (
	"strings"

	"github.com/FocuswithJustin/interlinear/core/lexicon"
	"github.com/FocuswithJustin/interlinear/core/merge"
	"github.com/FocuswithJustin/interlinear/core/ref"
)

// wordView is one Greek word cell. Greek is raw; Gloss is escaped.
type wordView struct {
	Greek   string
	Gloss   string
	Strongs string
}

// translationText is one translation's text for one verse, in document
// column order.
type translationText struct {
	Name string
	Text string
}

// verseView is one rendered verse.
type verseView struct {
	Number  int
	Heading string
	Words   []wordView
	Texts   []translationText
}

// chapterView groups verses under a chapter number. Number 0 means the
// document has a flat verse-range shape and no chapter headings.
type chapterView struct {
	Number int
	Verses []verseView
}

// entryView is one appendix lexicon entry, fields escaped.
type entryView struct {
	ID         string
	Lemma      string
	Translit   string
	Definition string
	KJVDef     string
	Derivation string
	Extended   string
}

// docView is the full template input.
type docView struct {
	Title        string
	Translations []string
	Chapters     []chapterView
	Entries      []entryView
}

// buildView flattens a merged document and its lexicon entries into
// escaped template input; all English-side text, the title included, is
// escaped here.
func buildView(doc *merge.Document, entries []lexicon.Entry, title string) *docView {
	v := &docView{
		Title:        Escape(title),
		Translations: make([]string, len(doc.Translations)),
	}
	for i, name := range doc.Translations {
		v.Translations[i] = strings.ToUpper(name)
	}

	buildVerses := func(verses []merge.Verse) []verseView {
		out := make([]verseView, 0, len(verses))
		for _, mv := range verses {
			vv := verseView{
				Number:  mv.Number,
				Heading: Escape(mv.Heading),
			}
			for _, w := range mv.Words {
				vv.Words = append(vv.Words, wordView{
					Greek:   w.Surface,
					Gloss:   Escape(w.Gloss),
					Strongs: w.Strongs,
				})
			}
			for _, name := range doc.Translations {
				vv.Texts = append(vv.Texts, translationText{
					Name: strings.ToUpper(name),
					Text: Escape(mv.Text[name]),
				})
			}
			out = append(out, vv)
		}
		return out
	}

	// The dual shape is discriminated by Kind, never by probing which
	// slice happens to be populated.
	if doc.Kind == ref.KindVerseRange {
		v.Chapters = []chapterView{{Number: 0, Verses: buildVerses(doc.Verses)}}
	} else {
		for _, ch := range doc.Chapters {
			v.Chapters = append(v.Chapters, chapterView{
				Number: ch.Number,
				Verses: buildVerses(ch.Verses),
			})
		}
	}

	for _, e := range entries {
		v.Entries = append(v.Entries, entryView{
			ID:         e.ID,
			Lemma:      Escape(e.Lemma),
			Translit:   Escape(e.Transliteration),
			Definition: Escape(e.ShortDefinition),
			KJVDef:     Escape(e.KJVDefinition),
			Derivation: Escape(e.Derivation),
			Extended:   Escape(e.ExtendedDefinition),
		})
	}

	return v
}
