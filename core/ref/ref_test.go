package ref

import (
	"errors"
	"testing"

	ierr "github.com/FocuswithJustin/interlinear/core/errors"
)

func TestParseVerseRange(t *testing.T) {
	pr, err := Parse("John 1:1-18")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if pr.BookID != 43 {
		t.Errorf("BookID = %d, want 43", pr.BookID)
	}
	if pr.Kind != KindVerseRange {
		t.Errorf("Kind = %v, want verse_range", pr.Kind)
	}
	if pr.Chapter != 1 || pr.StartVerse != 1 || pr.EndVerse != 18 {
		t.Errorf("got %d:%d-%d, want 1:1-18", pr.Chapter, pr.StartVerse, pr.EndVerse)
	}
}

func TestParseSingleVerse(t *testing.T) {
	pr, err := Parse("John 1:1")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if pr.Kind != KindVerseRange {
		t.Errorf("Kind = %v, want verse_range", pr.Kind)
	}
	if pr.StartVerse != 1 || pr.EndVerse != 1 {
		t.Errorf("single verse should collapse to range 1-1, got %d-%d", pr.StartVerse, pr.EndVerse)
	}
}

func TestParseChapter(t *testing.T) {
	pr, err := Parse("Romans 8")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if pr.BookID != 45 || pr.Kind != KindChapter || pr.Chapter != 8 {
		t.Errorf("got book %d kind %v chapter %d", pr.BookID, pr.Kind, pr.Chapter)
	}
	if pr.StartVerse != 0 || pr.EndVerse != 0 {
		t.Error("chapter reference should carry no verse bounds")
	}
}

func TestParseBook(t *testing.T) {
	pr, err := Parse("Ephesians")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if pr.BookID != 49 || pr.Kind != KindBook {
		t.Errorf("got book %d kind %v", pr.BookID, pr.Kind)
	}
	if pr.Chapter != 0 {
		t.Error("book reference should carry no chapter")
	}
}

// TestParseSpecificityOrder verifies that numeric forms win over a bare
// book match when both could apply.
func TestParseSpecificityOrder(t *testing.T) {
	pr, err := Parse("Jude 1")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if pr.Kind != KindChapter {
		t.Errorf("Kind = %v, want chapter (numeric form must win)", pr.Kind)
	}
}

func TestParseBookNameVariants(t *testing.T) {
	tests := []struct {
		input string
		book  int
	}{
		{"1 Corinthians 13", 46},
		{"1corinthians 13", 46},
		{"1Corinthians 13", 46},
		{"1COR 13", 46},
		{"ephesians", 49},
		{"  Philemon  ", 57},
		{"2 thess 2", 53},
	}
	for _, tt := range tests {
		pr, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.input, err)
			continue
		}
		if pr.BookID != tt.book {
			t.Errorf("Parse(%q) book = %d, want %d", tt.input, pr.BookID, tt.book)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"Laodiceans 1:1",
		"Genesis 1",     // Old Testament, not in the corpus
		"John 1:5-2",    // inverted range
		"John 1:1:1",    // malformed
		"12345",         // no book at all
		"John chapter1", // trailing junk after book words is not a form
	}
	for _, input := range tests {
		_, err := Parse(input)
		if err == nil {
			t.Errorf("Parse(%q) should fail", input)
			continue
		}
		var refErr *ierr.ReferenceError
		if !errors.As(err, &refErr) {
			t.Errorf("Parse(%q) error type = %T, want *ReferenceError", input, err)
		}
	}
}

func TestParseErrorIdentifiesInput(t *testing.T) {
	_, err := Parse("Laodiceans 1:1")
	if err == nil {
		t.Fatal("expected error")
	}
	var refErr *ierr.ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("error type = %T", err)
	}
	if refErr.Input != "Laodiceans 1:1" {
		t.Errorf("Input = %q, want the offending string", refErr.Input)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"john 1:1-18", "John 1:1-18"},
		{"john 1:1", "John 1:1"},
		{"romans 8", "Romans 8"},
		{"1cor", "1 Corinthians"},
	}
	for _, tt := range tests {
		pr, err := Parse(tt.input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tt.input, err)
		}
		if got := pr.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestContains(t *testing.T) {
	book, _ := Parse("Ephesians")
	chapter, _ := Parse("Ephesians 2")
	verses, _ := Parse("Ephesians 2:8-9")

	if !book.Contains(6, 24) {
		t.Error("book scope should contain any chapter/verse")
	}
	if !chapter.Contains(2, 1) || chapter.Contains(3, 1) {
		t.Error("chapter scope should contain only its own chapter")
	}
	if !verses.Contains(2, 8) || !verses.Contains(2, 9) {
		t.Error("range scope should contain its bounds")
	}
	if verses.Contains(2, 10) || verses.Contains(1, 8) {
		t.Error("range scope should exclude outside positions")
	}
}

func TestBookTables(t *testing.T) {
	if name := BookName(49); name != "Ephesians" {
		t.Errorf("BookName(49) = %q", name)
	}
	if n := ChapterCount(66); n != 22 {
		t.Errorf("ChapterCount(66) = %d, want 22", n)
	}
	if _, ok := BookID("gibberish"); ok {
		t.Error("BookID should reject unknown names")
	}
}
