package main

import (
	"testing"

	"github.com/alecthomas/kong"
)

func newParser(t *testing.T) *kong.Kong {
	t.Helper()
	parser, err := kong.New(&CLI)
	if err != nil {
		t.Fatalf("kong.New: %v", err)
	}
	return parser
}

func TestParseGenerate(t *testing.T) {
	ctx, err := newParser(t).Parse([]string{"generate", "John 1:1-18", "--latex-only"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := ctx.Command(); got != "generate <passage>" {
		t.Errorf("Command() = %q", got)
	}
	if CLI.Generate.Passage != "John 1:1-18" {
		t.Errorf("Passage = %q", CLI.Generate.Passage)
	}
	if CLI.Generate.Layout != "esv-portrait" {
		t.Errorf("default Layout = %q", CLI.Generate.Layout)
	}
	if !CLI.Generate.LatexOnly {
		t.Error("LatexOnly not set")
	}
}

func TestGenerateIsDefaultCommand(t *testing.T) {
	ctx, err := newParser(t).Parse([]string{"Ephesians", "--layout", "multi-landscape"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := ctx.Command(); got != "generate <passage>" {
		t.Errorf("Command() = %q", got)
	}
	if CLI.Generate.Layout != "multi-landscape" {
		t.Errorf("Layout = %q", CLI.Generate.Layout)
	}
}

func TestParseRejectsUnknownLayout(t *testing.T) {
	if _, err := newParser(t).Parse([]string{"generate", "John 1:1", "--layout", "poster"}); err == nil {
		t.Fatal("expected enum violation for unknown layout")
	}
}

func TestAuxiliaryCommands(t *testing.T) {
	if err := (&LayoutsCmd{}).Run(); err != nil {
		t.Errorf("layouts: %v", err)
	}
	if err := (&BooksCmd{}).Run(); err != nil {
		t.Errorf("books: %v", err)
	}
	if err := (&VersionCmd{}).Run(); err != nil {
		t.Errorf("version: %v", err)
	}
}
