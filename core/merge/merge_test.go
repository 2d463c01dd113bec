package merge

import (
	"strings"
	"testing"

	"github.com/FocuswithJustin/interlinear/core/corpus"
	"github.com/FocuswithJustin/interlinear/core/ref"
	"github.com/FocuswithJustin/interlinear/core/translation"
)

func flatGreek(verses ...corpus.Verse) *corpus.Passage {
	return &corpus.Passage{
		BookID: 49, Book: "Ephesians", Kind: ref.KindVerseRange,
		Chapter: 1, Verses: verses,
	}
}

func TestMergeFlat(t *testing.T) {
	greek := flatGreek(
		corpus.Verse{Number: 1, Words: []corpus.Word{
			{Surface: "Παῦλος", Gloss: "Paul", Strongs: "G3972"},
			{Surface: "ἀπόστολος", Gloss: "apostle", Strongs: "G652"},
		}},
	)
	esv := translation.NewVersePassage("esv", []translation.Verse{
		{Number: 1, Text: "Paul, an apostle of Christ Jesus..."},
	})

	doc := Merge(greek, esv)
	if len(doc.Verses) != 1 {
		t.Fatalf("got %d merged verses, want 1", len(doc.Verses))
	}
	mv := doc.Verses[0]
	if mv.Number != 1 {
		t.Errorf("Number = %d", mv.Number)
	}
	if len(mv.Words) != 2 || mv.Words[0].Surface != "Παῦλος" || mv.Words[1].Surface != "ἀπόστολος" {
		t.Errorf("Greek words not in source order: %+v", mv.Words)
	}
	if mv.Text["esv"] != "Paul, an apostle of Christ Jesus..." {
		t.Errorf("esv text = %q", mv.Text["esv"])
	}
}

// TestMergeGreekAuthoritative verifies one merged verse per Greek verse,
// with misses degrading to empty text.
func TestMergeGreekAuthoritative(t *testing.T) {
	greek := flatGreek(
		corpus.Verse{Number: 1, Words: []corpus.Word{{Surface: "α", Gloss: "a"}}},
		corpus.Verse{Number: 2, Words: []corpus.Word{{Surface: "β", Gloss: "b"}}},
		corpus.Verse{Number: 3, Words: []corpus.Word{{Surface: "γ", Gloss: "c"}}},
	)
	esv := translation.NewVersePassage("esv", []translation.Verse{
		{Number: 2, Text: "only verse two"},
	})

	doc := Merge(greek, esv)
	if len(doc.Verses) != 3 {
		t.Fatalf("got %d merged verses, want 3 (Greek tree is authoritative)", len(doc.Verses))
	}
	if doc.Verses[0].Text["esv"] != "" || doc.Verses[2].Text["esv"] != "" {
		t.Error("missing translation verses should degrade to empty text")
	}
	if doc.Verses[1].Text["esv"] != "only verse two" {
		t.Errorf("verse 2 text = %q", doc.Verses[1].Text["esv"])
	}
	if doc.Misses["esv"] != 2 {
		t.Errorf("Misses = %d, want 2", doc.Misses["esv"])
	}
}

func TestMergeNoTranslations(t *testing.T) {
	greek := flatGreek(corpus.Verse{Number: 1, Words: []corpus.Word{{Surface: "α", Gloss: "a"}}})
	doc := Merge(greek)
	if len(doc.Verses) != 1 {
		t.Fatalf("got %d verses, want 1 even with zero translations", len(doc.Verses))
	}
}

func TestMergeMultiTranslation(t *testing.T) {
	greek := &corpus.Passage{
		BookID: 49, Book: "Ephesians", Kind: ref.KindBook,
		Chapters: []corpus.Chapter{
			{Number: 1, Verses: []corpus.Verse{
				{Number: 1, Words: []corpus.Word{{Surface: "Παῦλος", Gloss: "Paul"}}},
			}},
			{Number: 2, Verses: []corpus.Verse{
				{Number: 1, Words: []corpus.Word{{Surface: "καί", Gloss: "and"}}},
			}},
		},
	}
	esv := translation.NewBookPassage("esv", []translation.Chapter{
		{Number: 1, Verses: []translation.Verse{{Number: 1, Text: "Paul, an apostle", Heading: "Greeting"}}},
		{Number: 2, Verses: []translation.Verse{{Number: 1, Text: "And you were dead"}}},
	})
	kjv := translation.NewBookPassage("kjv", []translation.Chapter{
		{Number: 1, Verses: []translation.Verse{{Number: 1, Text: "Paul, an apostle of Jesus Christ", Heading: "KJV Heading"}}},
	})

	doc := Merge(greek, esv, kjv)
	if len(doc.Chapters) != 2 {
		t.Fatalf("got %d chapters", len(doc.Chapters))
	}
	v11 := doc.Chapters[0].Verses[0]
	if v11.Text["esv"] != "Paul, an apostle" || v11.Text["kjv"] != "Paul, an apostle of Jesus Christ" {
		t.Errorf("texts = %+v", v11.Text)
	}
	// Heading comes from the primary (first) translation only.
	if v11.Heading != "Greeting" {
		t.Errorf("Heading = %q, want primary translation's heading", v11.Heading)
	}
	v21 := doc.Chapters[1].Verses[0]
	if v21.Text["kjv"] != "" {
		t.Error("kjv does not cover chapter 2; text should be empty")
	}
	if doc.Misses["kjv"] != 1 || doc.Misses["esv"] != 0 {
		t.Errorf("Misses = %+v", doc.Misses)
	}
	if len(doc.Translations) != 2 || doc.Translations[0] != "esv" {
		t.Errorf("Translations = %v", doc.Translations)
	}
}

// TestMergeFlatTranslationChapterOne verifies that a flat translation is
// addressed as chapter 1 when the Greek side is flat.
func TestMergeFlatTranslationChapterOne(t *testing.T) {
	greek := flatGreek(corpus.Verse{Number: 5, Words: []corpus.Word{{Surface: "α", Gloss: "a"}}})
	net := translation.NewVersePassage("net", []translation.Verse{{Number: 5, Text: "verse five"}})

	doc := Merge(greek, net)
	if doc.Verses[0].Text["net"] != "verse five" {
		t.Errorf("text = %q", doc.Verses[0].Text["net"])
	}
}

// TestMergeEndToEnd is the full pipeline scenario: decode, aggregate,
// disambiguate, merge.
func TestMergeEndToEnd(t *testing.T) {
	rows := "〔book｜chapter｜verse〕\t〔TANTT〕\t〔MounceGloss｜TyndaleHouseGloss｜OpenGNTGloss〕\n" +
		"〔49｜1｜1〕\t〔P=Παῦλος=G3972=N-NSM;〕\t〔Paul｜Paul｜Paul〕\n" +
		"〔49｜1｜1〕\t〔A=ἀπόστολος=G0652=N-NSM;〕\t〔apostle｜apostle｜apostle〕\n"
	c, err := corpus.Load(strings.NewReader(rows))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	r, err := ref.Parse("Ephesians 1:1")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	greek := corpus.Extract(c, r)
	esv := translation.NewVersePassage("esv",
		translation.ParseVerses("[1] Paul, an apostle of Christ Jesus..."))

	doc := Merge(greek, esv)
	if len(doc.Verses) != 1 {
		t.Fatalf("got %d verses", len(doc.Verses))
	}
	mv := doc.Verses[0]
	if mv.Number != 1 || len(mv.Words) != 2 {
		t.Fatalf("merged verse = %+v", mv)
	}
	if mv.Words[0].Strongs != "G3972" || mv.Words[1].Strongs != "G652" {
		t.Errorf("identifiers = %q, %q", mv.Words[0].Strongs, mv.Words[1].Strongs)
	}
	if mv.Text["esv"] != "Paul, an apostle of Christ Jesus..." {
		t.Errorf("esv text = %q", mv.Text["esv"])
	}
}
