package translation

import (
	"strings"
	"testing"
)

func TestParseVersesBasic(t *testing.T) {
	verses := ParseVerses("[1] Paul, an apostle of Christ Jesus. [2] Grace to you and peace.")
	if len(verses) != 2 {
		t.Fatalf("got %d verses, want 2", len(verses))
	}
	if verses[0].Number != 1 || verses[0].Text != "Paul, an apostle of Christ Jesus." {
		t.Errorf("verse 1 = %+v", verses[0])
	}
	if verses[1].Number != 2 || verses[1].Text != "Grace to you and peace." {
		t.Errorf("verse 2 = %+v", verses[1])
	}
}

func TestParseVersesLeadingHeading(t *testing.T) {
	verses := ParseVerses("Greeting\n\n[1] Grace to you...")
	if len(verses) != 1 {
		t.Fatalf("got %d verses, want 1", len(verses))
	}
	if verses[0].Heading != "Greeting" {
		t.Errorf("Heading = %q, want %q", verses[0].Heading, "Greeting")
	}
	if verses[0].Text != "Grace to you..." {
		t.Errorf("Text = %q", verses[0].Text)
	}
}

// TestParseVersesTrailingHeading verifies that a heading after a blank
// line inside a verse span attaches to the following verse, never the
// one it textually follows.
func TestParseVersesTrailingHeading(t *testing.T) {
	text := "[1] In the beginning was the Word.\n\nThe Witness of John\n\n[2] There was a man sent from God."
	verses := ParseVerses(text)
	if len(verses) != 2 {
		t.Fatalf("got %d verses, want 2", len(verses))
	}
	if verses[0].Heading != "" {
		t.Errorf("verse 1 heading = %q, want none", verses[0].Heading)
	}
	if verses[0].Text != "In the beginning was the Word." {
		t.Errorf("verse 1 text = %q (heading leaked into text?)", verses[0].Text)
	}
	if verses[1].Heading != "The Witness of John" {
		t.Errorf("verse 2 heading = %q", verses[1].Heading)
	}
}

// TestParseVersesContinuationAfterBlank verifies that a
// punctuation-terminated line after a blank line is verse text, and that
// it resets the blank-line state.
func TestParseVersesContinuationAfterBlank(t *testing.T) {
	text := "[1] The heavens declare;\n\nthe skies proclaim his craft.\nDay to day pours out speech.\n[2] Their voice goes out."
	verses := ParseVerses(text)
	if len(verses) != 2 {
		t.Fatalf("got %d verses, want 2", len(verses))
	}
	want := "The heavens declare; the skies proclaim his craft. Day to day pours out speech."
	if verses[0].Text != want {
		t.Errorf("verse 1 text = %q, want %q", verses[0].Text, want)
	}
}

func TestParseVersesWhitespaceCollapsed(t *testing.T) {
	verses := ParseVerses("[1] Grace   to\tyou\n  and peace.")
	if len(verses) != 1 {
		t.Fatalf("got %d verses", len(verses))
	}
	if verses[0].Text != "Grace to you and peace." {
		t.Errorf("Text = %q", verses[0].Text)
	}
}

func TestParseVersesEmptyVerseOmitted(t *testing.T) {
	verses := ParseVerses("[1]   \n[2] Something here.")
	if len(verses) != 1 {
		t.Fatalf("got %d verses, want 1 (empty verse 1 omitted)", len(verses))
	}
	if verses[0].Number != 2 {
		t.Errorf("Number = %d, want 2", verses[0].Number)
	}
}

func TestParseVersesNoMarkers(t *testing.T) {
	verses := ParseVerses("Just prose with no verse markers at all.")
	if len(verses) != 0 {
		t.Errorf("got %d verses, want 0", len(verses))
	}
}

func TestParseVersesPunctuatedPreamble(t *testing.T) {
	// A punctuation-terminated line before the first marker is not a
	// heading.
	verses := ParseVerses("This line ends with a period.\n\n[1] First verse text.")
	if len(verses) != 1 {
		t.Fatalf("got %d verses", len(verses))
	}
	if verses[0].Heading != "" {
		t.Errorf("Heading = %q, want none", verses[0].Heading)
	}
}

func TestIsLikelyHeading(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Greeting", true},
		{"The Witness of John", true},
		{"", false},
		{"Ends with period.", false},
		{"Ends with comma,", false},
		{"Ends with colon:", false},
		{"Ends with semicolon;", false},
		{"Ends with bang!", false},
		{"Ends with question?", false},
		{`Ends with quote"`, false},
		{"Ends with apostrophe'", false},
		{strings.Repeat("x", 81), false},
		{strings.Repeat("x", 80), true},
	}
	for _, tt := range tests {
		if got := IsLikelyHeading(tt.text); got != tt.want {
			t.Errorf("IsLikelyHeading(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestPassageShapes(t *testing.T) {
	flat := NewVersePassage("esv", []Verse{{Number: 1, Text: "a"}})
	if flat.VerseCount() != 1 || flat.Chapters != nil {
		t.Error("flat passage shape incorrect")
	}

	ch := NewChapterPassage("net", 3, []Verse{{Number: 1, Text: "a"}, {Number: 2, Text: "b"}})
	if len(ch.Chapters) != 1 || ch.Chapters[0].Number != 3 {
		t.Errorf("chapter passage = %+v", ch.Chapters)
	}
	if ch.VerseCount() != 2 {
		t.Errorf("VerseCount = %d", ch.VerseCount())
	}

	book := NewBookPassage("kjv", []Chapter{
		{Number: 1, Verses: []Verse{{Number: 1, Text: "a"}}},
		{Number: 2, Verses: []Verse{{Number: 1, Text: "b"}}},
	})
	if book.VerseCount() != 2 {
		t.Errorf("VerseCount = %d", book.VerseCount())
	}
}
