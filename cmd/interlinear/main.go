// Command interlinear generates typeset interlinear Greek New Testament
// documents: Greek text with per-word English glosses above one or more
// English translations, rendered to LaTeX and compiled with LuaLaTeX.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/FocuswithJustin/interlinear/core/corpus"
	"github.com/FocuswithJustin/interlinear/core/lexicon"
	"github.com/FocuswithJustin/interlinear/core/merge"
	"github.com/FocuswithJustin/interlinear/core/ref"
	"github.com/FocuswithJustin/interlinear/core/translation"
	"github.com/FocuswithJustin/interlinear/internal/dataset"
	"github.com/FocuswithJustin/interlinear/internal/esword"
	"github.com/FocuswithJustin/interlinear/internal/fetch"
	"github.com/FocuswithJustin/interlinear/internal/latex"
	"github.com/FocuswithJustin/interlinear/internal/logging"
)

const version = "0.2.0"

// CLI defines the command-line interface for interlinear.
var CLI struct {
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error)" default:"info"`
	LogFormat string `name:"log-format" help:"Log format (text, json)" default:"text"`

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Generate an interlinear document for a passage"`
	Layouts  LayoutsCmd  `cmd:"" help:"List available layouts"`
	Books    BooksCmd    `cmd:"" help:"List New Testament books"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// GenerateCmd runs the full pipeline: load Greek corpus, fetch
// translations, merge, render LaTeX, compile PDF.
type GenerateCmd struct {
	Passage string `arg:"" help:"Passage reference, e.g. 'John 1:1-18', 'Romans 8' or 'Ephesians'"`

	Layout    string `help:"Layout: esv-portrait (Greek + ESV) or multi-landscape (Greek + ESV + NET + KJV)" default:"esv-portrait" enum:"esv-portrait,multi-landscape"`
	LatexOnly bool   `name:"latex-only" help:"Generate LaTeX only, don't compile to PDF"`
	KeepAux   bool   `name:"keep-aux" help:"Keep LaTeX auxiliary files"`

	APIKey    string `name:"api-key" env:"ESV_API_KEY" help:"ESV API key (from api.esv.org)"`
	CorpusURL string `name:"corpus-url" help:"Override the corpus archive URL"`
	Corpus    string `help:"Use a local corpus file (.csv, .csv.zip or .csv.xz) instead of downloading"`
	Module    string `help:"e-Sword .bblx module to use instead of the bible-api translation" type:"existingfile" optional:""`

	DataDir   string `name:"data-dir" help:"Directory for downloaded data" default:"data" type:"path"`
	CacheDir  string `name:"cache-dir" help:"HTTP response cache directory" default:"data/cache" type:"path"`
	OutputDir string `name:"output-dir" help:"Directory for generated documents" default:"output" type:"path"`

	Dict    string `help:"Strong's Greek dictionary (.json table or .xml distribution)" default:"data/strongs-greek.json" type:"path"`
	Lexicon string `help:"Extended lemma-keyed lexicon JSON" default:"data/lsj-greek.json" type:"path"`
}

func (c *GenerateCmd) Run() error {
	ctx := logging.WithRunID(context.Background(), uuid.NewString())
	started := time.Now()

	pr, err := ref.Parse(c.Passage)
	if err != nil {
		return err
	}
	logging.InfoContext(ctx, "generating interlinear",
		"passage", pr.String(), "layout", c.Layout)

	cache, err := fetch.NewCache(c.CacheDir)
	if err != nil {
		return err
	}
	client := fetch.NewClient(cache)

	greek, err := c.loadGreek(ctx, client, pr)
	if err != nil {
		return err
	}
	chapters, verses, words := greek.Counts()
	if verses == 0 {
		return fmt.Errorf("no Greek verses found for %q; the passage may be outside the New Testament", pr.String())
	}
	logging.InfoContext(ctx, "greek text loaded",
		"chapters", chapters, "verses", verses, "words", words)

	sources, err := c.fetchTranslations(ctx, client, pr)
	if err != nil {
		return err
	}

	doc := merge.Merge(greek, sources...)
	for name, misses := range doc.Misses {
		if misses > 0 {
			logging.WarnContext(ctx, "translation has uncovered verses",
				"translation", name, "misses", misses)
		}
	}

	resolver := lexicon.NewResolver(c.Dict, c.Lexicon)
	entries, stats, err := resolver.Resolve(greek)
	if err != nil {
		logging.WarnContext(ctx, "lexicon unavailable, skipping appendix", "error", err)
		entries = nil
	} else {
		logging.InfoContext(ctx, "lexicon resolved",
			"identifiers", stats.Identifiers,
			"dict_hits", stats.DictHits,
			"extended_hits", stats.ExtendedHits)
	}

	texPath, err := latex.RenderFile(c.OutputDir, c.Layout, doc, entries, pr.String())
	if err != nil {
		return err
	}
	logging.InfoContext(ctx, "latex generated", "path", texPath)

	if c.LatexOnly {
		fmt.Printf("LaTeX generated: %s\n", texPath)
		return nil
	}

	if !latex.CheckLuaLaTeX() {
		logging.WarnContext(ctx, "lualatex not found, skipping PDF compile")
		fmt.Printf("LaTeX generated (compile manually with lualatex): %s\n", texPath)
		return nil
	}

	pdfPath, err := latex.BuildPDF(ctx, texPath, c.KeepAux)
	if err != nil {
		return err
	}
	logging.InfoContext(ctx, "pdf generated",
		"path", pdfPath, "duration", time.Since(started).Round(time.Millisecond))
	fmt.Printf("PDF generated: %s\n", pdfPath)
	return nil
}

// loadGreek obtains the corpus file and extracts the referenced scope.
func (c *GenerateCmd) loadGreek(ctx context.Context, client *fetch.Client, pr *ref.PassageReference) (*corpus.Passage, error) {
	path := c.Corpus
	if path == "" {
		var err error
		path, err = dataset.Ensure(ctx, client, c.DataDir, c.CorpusURL)
		if err != nil {
			return nil, err
		}
	}

	rc, err := dataset.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	corp, err := corpus.Load(rc)
	if err != nil {
		return nil, err
	}
	return corpus.Extract(corp, pr), nil
}

// fetchTranslations fetches the translation set the layout needs. The
// first source is the primary translation and supplies headings.
func (c *GenerateCmd) fetchTranslations(ctx context.Context, client *fetch.Client, pr *ref.PassageReference) ([]*translation.Passage, error) {
	esv, err := c.fetchOne(ctx, "esv", pr, func() (*translation.Passage, error) {
		return fetch.NewESVClient(client, c.APIKey).FetchPassage(ctx, pr)
	})
	if err != nil {
		return nil, err
	}

	if c.Layout != latex.LayoutMultiLandscape {
		return []*translation.Passage{esv}, nil
	}

	net, err := c.fetchOne(ctx, "net", pr, func() (*translation.Passage, error) {
		return fetch.NewNETClient(client).FetchPassage(ctx, pr)
	})
	if err != nil {
		return nil, err
	}

	third, err := c.fetchThird(ctx, client, pr)
	if err != nil {
		return nil, err
	}

	return []*translation.Passage{esv, net, third}, nil
}

// fetchThird supplies the third landscape column: a local e-Sword
// module when given, the KJV from bible-api.com otherwise.
func (c *GenerateCmd) fetchThird(ctx context.Context, client *fetch.Client, pr *ref.PassageReference) (*translation.Passage, error) {
	if c.Module != "" {
		r, err := esword.Open(c.Module)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return c.fetchOne(ctx, r.Name(), pr, func() (*translation.Passage, error) {
			return r.FetchPassage(ctx, pr)
		})
	}

	api, err := fetch.NewBibleAPIClient(client, "kjv")
	if err != nil {
		return nil, err
	}
	return c.fetchOne(ctx, "kjv", pr, func() (*translation.Passage, error) {
		return api.FetchPassage(ctx, pr)
	})
}

func (c *GenerateCmd) fetchOne(ctx context.Context, name string, pr *ref.PassageReference, f func() (*translation.Passage, error)) (*translation.Passage, error) {
	started := time.Now()
	p, err := f()
	if err != nil {
		return nil, err
	}
	logging.Fetch(name, pr.String(), p.VerseCount(), false, time.Since(started))
	return p, nil
}

// LayoutsCmd lists the supported layouts.
type LayoutsCmd struct{}

func (c *LayoutsCmd) Run() error {
	descriptions := map[string]string{
		latex.LayoutESVPortrait:    "Greek + ESV (portrait)",
		latex.LayoutMultiLandscape: "Greek + ESV + NET + KJV (landscape)",
	}
	for _, l := range latex.Layouts {
		fmt.Printf("%-18s %s\n", l, descriptions[l])
	}
	return nil
}

// BooksCmd lists the books the corpus covers.
type BooksCmd struct{}

func (c *BooksCmd) Run() error {
	for id := 40; id <= 66; id++ {
		fmt.Printf("%-18s %d chapters\n", ref.BookName(id), ref.ChapterCount(id))
	}
	return nil
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("interlinear %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("interlinear"),
		kong.Description("Interlinear Greek New Testament document generator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	logging.InitLogger(logging.ParseLevel(CLI.LogLevel), logging.ParseFormat(CLI.LogFormat))
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
