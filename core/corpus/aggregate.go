package corpus

import (
	"sort"

	"github.com/FocuswithJustin/interlinear/core/ref"
)

// Verse is one verse's decoded words in source reading order.
type Verse struct {
	Number int    `json:"verse"`
	Words  []Word `json:"words"`
}

// Chapter is one chapter's verses in ascending verse order.
type Chapter struct {
	Number int     `json:"chapter"`
	Verses []Verse `json:"verses"`
}

// Passage is the aggregated Greek tree for one reference scope. The
// shape mirrors the reference kind: Book and Chapter kinds populate
// Chapters, VerseRange populates the flat Verses slice. Consumers must
// switch on Kind rather than probe which slice is non-nil.
type Passage struct {
	BookID   int       `json:"book_id"`
	Book     string    `json:"book"`
	Kind     ref.Kind  `json:"kind"`
	Chapters []Chapter `json:"chapters,omitempty"`
	Verses   []Verse   `json:"verses,omitempty"`

	// Range metadata, populated for KindChapter and KindVerseRange.
	Chapter    int `json:"chapter,omitempty"`
	StartVerse int `json:"start_verse,omitempty"`
	EndVerse   int `json:"end_verse,omitempty"`
}

// Extract aggregates the corpus rows inside the referenced scope into a
// Passage. Row scoping compares parsed integer key components, so book 4
// never matches book 40. Words with empty surface or gloss are dropped;
// verses and chapters left empty after filtering are omitted.
func Extract(c *Corpus, r *ref.PassageReference) *Passage {
	p := &Passage{
		BookID:     r.BookID,
		Book:       r.BookName(),
		Kind:       r.Kind,
		Chapter:    r.Chapter,
		StartVerse: r.StartVerse,
		EndVerse:   r.EndVerse,
	}

	// chapter -> verse -> words, accumulated in source row order.
	tree := make(map[int]map[int][]Word)
	for _, row := range c.Rows {
		if row.Key.Book != r.BookID || !r.Contains(row.Key.Chapter, row.Key.Verse) {
			continue
		}
		w := DecodeWord(row.Word, row.Gloss)
		if w.Surface == "" || w.Gloss == "" {
			continue
		}
		verses, ok := tree[row.Key.Chapter]
		if !ok {
			verses = make(map[int][]Word)
			tree[row.Key.Chapter] = verses
		}
		verses[row.Key.Verse] = append(verses[row.Key.Verse], w)
	}

	if r.Kind == ref.KindVerseRange {
		if verses, ok := tree[r.Chapter]; ok {
			p.Verses = sortVerses(verses)
		}
		return p
	}

	chapterNums := make([]int, 0, len(tree))
	for ch := range tree {
		chapterNums = append(chapterNums, ch)
	}
	sort.Ints(chapterNums)

	for _, ch := range chapterNums {
		verses := sortVerses(tree[ch])
		if len(verses) == 0 {
			continue
		}
		p.Chapters = append(p.Chapters, Chapter{Number: ch, Verses: verses})
	}

	return p
}

// sortVerses flattens a verse map into ascending verse order, dropping
// verses with no surviving words.
func sortVerses(verses map[int][]Word) []Verse {
	nums := make([]int, 0, len(verses))
	for v := range verses {
		nums = append(nums, v)
	}
	sort.Ints(nums)

	out := make([]Verse, 0, len(nums))
	for _, v := range nums {
		if len(verses[v]) == 0 {
			continue
		}
		out = append(out, Verse{Number: v, Words: verses[v]})
	}
	return out
}

// StrongsIDs collects the distinct lexical identifiers appearing in the
// passage, in first-seen order. Words with no identifier are ignored.
func (p *Passage) StrongsIDs() []string {
	seen := make(map[string]bool)
	var ids []string
	collect := func(verses []Verse) {
		for _, v := range verses {
			for _, w := range v.Words {
				if w.Strongs == "" || seen[w.Strongs] {
					continue
				}
				seen[w.Strongs] = true
				ids = append(ids, w.Strongs)
			}
		}
	}
	if p.Kind == ref.KindVerseRange {
		collect(p.Verses)
	} else {
		for _, ch := range p.Chapters {
			collect(ch.Verses)
		}
	}
	return ids
}

// Counts returns the number of chapters, verses, and words in the passage.
func (p *Passage) Counts() (chapters, verses, words int) {
	if p.Kind == ref.KindVerseRange {
		verses = len(p.Verses)
		for _, v := range p.Verses {
			words += len(v.Words)
		}
		return 0, verses, words
	}
	chapters = len(p.Chapters)
	for _, ch := range p.Chapters {
		verses += len(ch.Verses)
		for _, v := range ch.Verses {
			words += len(v.Words)
		}
	}
	return chapters, verses, words
}
