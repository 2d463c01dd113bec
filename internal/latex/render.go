package latex

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/FocuswithJustin/interlinear/core/errors"
	"github.com/FocuswithJustin/interlinear/core/lexicon"
	"github.com/FocuswithJustin/interlinear/core/merge"
)

// Supported layout names.
const (
	LayoutESVPortrait    = "esv-portrait"
	LayoutMultiLandscape = "multi-landscape"
)

// Layouts lists the supported layouts in display order.
var Layouts = []string{LayoutESVPortrait, LayoutMultiLandscape}

var templates = template.Must(template.New("latex").Parse(
	portraitTemplate + landscapeTemplate + appendixTemplate,
))

// ValidLayout reports whether name is a supported layout.
func ValidLayout(name string) bool {
	for _, l := range Layouts {
		if l == name {
			return true
		}
	}
	return false
}

// Render writes the LaTeX source for a merged document to w. Title is
// the passage reference used for the document heading. Entries, when
// non-empty, are rendered as a lexicon appendix.
func Render(w io.Writer, layout string, doc *merge.Document, entries []lexicon.Entry, title string) error {
	if !ValidLayout(layout) {
		return errors.NewUnsupported("layout "+layout, "supported layouts are esv-portrait and multi-landscape")
	}
	view := buildView(doc, entries, title)
	if err := templates.ExecuteTemplate(w, layout, view); err != nil {
		return errors.Wrap(err, "render LaTeX")
	}
	return nil
}

// RenderFile renders the document into outputDir. The file stem comes
// from the sanitized passage reference; the landscape layout gets a
// _multi suffix so both layouts of one passage can coexist.
func RenderFile(outputDir, layout string, doc *merge.Document, entries []lexicon.Entry, title string) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, layout, doc, entries, title); err != nil {
		return "", err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", errors.NewIO("create directory", outputDir, err)
	}

	stem := SanitizeFilename(title)
	if layout == LayoutMultiLandscape {
		stem += "_multi"
	}
	path := filepath.Join(outputDir, stem+".tex")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", errors.NewIO("write", path, err)
	}
	return path, nil
}
