// Package lexicon resolves lexical identifiers to dictionary and
// extended lexicon entries for the passage appendix.
//
// Two tables are involved: the Strong's dictionary, keyed by normalized
// identifier ("G976"), and an extended lexicon keyed by raw lemma
// spelling. The two sources use different orthographic conventions, so
// extended definitions resolve through a fallback chain: exact lemma
// match, then case-insensitive, then diacritic-stripped. A lemma absent
// under all three is a normal outcome, not an error.
package lexicon

import (
	"encoding/json"
	"os"
	"sort"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/FocuswithJustin/interlinear/core/corpus"
	"github.com/FocuswithJustin/interlinear/core/errors"
)

// DictEntry is one Strong's dictionary record.
type DictEntry struct {
	Lemma      string `json:"lemma"`
	Translit   string `json:"translit"`
	StrongsDef string `json:"strongs_def"`
	KJVDef     string `json:"kjv_def"`
	Derivation string `json:"derivation"`
}

// Entry is one resolved appendix entry.
type Entry struct {
	ID                 string `json:"strongs"`
	Lemma              string `json:"lemma"`
	Transliteration    string `json:"translit"`
	ShortDefinition    string `json:"definition"`
	KJVDefinition      string `json:"kjv_def"`
	ExtendedDefinition string `json:"extended_definition"`
	Derivation         string `json:"derivation"`
}

// Stats summarizes one resolution pass. Misses are counted, never
// itemized; partial lexicon coverage is the expected steady state.
type Stats struct {
	Identifiers  int // distinct identifiers in the passage
	DictHits     int // identifiers found in the Strong's dictionary
	ExtendedHits int // lemmas resolved to an extended definition
}

// Resolver owns the two lexicon tables. Each table is loaded at most
// once, on first use; construct with explicit tables to test in
// isolation.
type Resolver struct {
	dictPath    string
	lexiconPath string

	dictOnce sync.Once
	dictErr  error
	dict     map[string]DictEntry

	lexOnce  sync.Once
	lexErr   error
	extended map[string]string
	foldIdx  map[string]string // lowercased lemma -> extended definition
	bareIdx  map[string]string // diacritic-stripped lowercased lemma -> extended definition
}

// NewResolver creates a resolver that lazily loads its tables from the
// given JSON files. Either path may be empty, in which case that table
// is treated as absent and all its lookups miss.
func NewResolver(dictPath, lexiconPath string) *Resolver {
	return &Resolver{dictPath: dictPath, lexiconPath: lexiconPath}
}

// NewResolverFromTables creates a resolver over in-memory tables.
func NewResolverFromTables(dict map[string]DictEntry, extended map[string]string) *Resolver {
	r := &Resolver{}
	r.dictOnce.Do(func() { r.dict = dict })
	r.lexOnce.Do(func() { r.setExtended(extended) })
	return r
}

// setExtended installs the extended lexicon and builds the fallback
// indexes. First writer wins within each index so that duplicate keys
// under folding behave deterministically.
func (r *Resolver) setExtended(extended map[string]string) {
	r.extended = extended
	r.foldIdx = make(map[string]string, len(extended))
	r.bareIdx = make(map[string]string, len(extended))

	lemmas := make([]string, 0, len(extended))
	for lemma := range extended {
		lemmas = append(lemmas, lemma)
	}
	sort.Strings(lemmas)

	for _, lemma := range lemmas {
		def := extended[lemma]
		folded := foldCase(lemma)
		if _, ok := r.foldIdx[folded]; !ok {
			r.foldIdx[folded] = def
		}
		bare := foldCase(StripDiacritics(lemma))
		if _, ok := r.bareIdx[bare]; !ok {
			r.bareIdx[bare] = def
		}
	}
}

// loadDict reads the Strong's dictionary on first use. Both published
// forms of the dictionary are accepted: the identifier-keyed JSON table,
// and the XML distribution for paths ending in .xml.
func (r *Resolver) loadDict() error {
	r.dictOnce.Do(func() {
		r.dict = make(map[string]DictEntry)
		if r.dictPath == "" {
			return
		}
		if strings.HasSuffix(strings.ToLower(r.dictPath), ".xml") {
			dict, err := LoadStrongsXML(r.dictPath)
			if err != nil {
				r.dictErr = err
				return
			}
			r.dict = dict
			return
		}
		data, err := os.ReadFile(r.dictPath)
		if err != nil {
			r.dictErr = errors.NewIO("read", r.dictPath, err)
			return
		}
		if err := json.Unmarshal(data, &r.dict); err != nil {
			r.dictErr = errors.NewParse("JSON", r.dictPath, err.Error())
		}
	})
	return r.dictErr
}

func (r *Resolver) loadExtended() error {
	r.lexOnce.Do(func() {
		r.setExtended(map[string]string{})
		if r.lexiconPath == "" {
			return
		}
		data, err := os.ReadFile(r.lexiconPath)
		if err != nil {
			r.lexErr = errors.NewIO("read", r.lexiconPath, err)
			return
		}
		table := make(map[string]string)
		if err := json.Unmarshal(data, &table); err != nil {
			r.lexErr = errors.NewParse("JSON", r.lexiconPath, err.Error())
			return
		}
		r.setExtended(table)
	})
	return r.lexErr
}

// Lookup returns the Strong's dictionary entry for a normalized
// identifier. A miss returns a zero entry and false.
func (r *Resolver) Lookup(id string) (DictEntry, bool, error) {
	if err := r.loadDict(); err != nil {
		return DictEntry{}, false, err
	}
	e, ok := r.dict[id]
	return e, ok, nil
}

// ExtendedDefinition resolves a lemma against the extended lexicon via
// the fallback chain: exact, case-insensitive, diacritic-stripped. All
// three failing yields "", which is a valid outcome.
func (r *Resolver) ExtendedDefinition(lemma string) (string, error) {
	if err := r.loadExtended(); err != nil {
		return "", err
	}
	if lemma == "" {
		return "", nil
	}
	if def, ok := r.extended[lemma]; ok {
		return def, nil
	}
	if def, ok := r.foldIdx[foldCase(lemma)]; ok {
		return def, nil
	}
	if def, ok := r.bareIdx[foldCase(StripDiacritics(lemma))]; ok {
		return def, nil
	}
	return "", nil
}

// Resolve collects the distinct lexical identifiers in the passage and
// resolves each to an appendix entry, ordered by the identifier's
// numeric component. Identifiers missing from the dictionary still
// produce an entry, with only the ID populated.
func (r *Resolver) Resolve(p *corpus.Passage) ([]Entry, Stats, error) {
	ids := p.StrongsIDs()
	sort.Slice(ids, func(i, j int) bool {
		return corpus.IDNumber(ids[i]) < corpus.IDNumber(ids[j])
	})

	stats := Stats{Identifiers: len(ids)}
	entries := make([]Entry, 0, len(ids))

	for _, id := range ids {
		entry := Entry{ID: id}
		de, ok, err := r.Lookup(id)
		if err != nil {
			return nil, stats, err
		}
		if ok {
			stats.DictHits++
			entry.Lemma = de.Lemma
			entry.Transliteration = de.Translit
			entry.ShortDefinition = strings.TrimSpace(de.StrongsDef)
			entry.KJVDefinition = de.KJVDef
			entry.Derivation = de.Derivation
		}
		ext, err := r.ExtendedDefinition(entry.Lemma)
		if err != nil {
			return nil, stats, err
		}
		if ext != "" {
			stats.ExtendedHits++
		}
		entry.ExtendedDefinition = ext
		entries = append(entries, entry)
	}

	return entries, stats, nil
}

// foldCase applies full Unicode case folding. ASCII lowercasing is not
// enough for Greek: both capital sigma and final sigma must fold to the
// medial form, or uppercase and lowercase spellings of a sigma-final
// lemma never meet. A Caser is stateful, so build one per call.
func foldCase(s string) string {
	return cases.Fold().String(s)
}

// diacriticStripper decomposes text and removes combining marks.
var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripDiacritics removes accent and breathing marks from Greek text:
// "Παῦλος" -> "Παυλος".
func StripDiacritics(s string) string {
	out, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		return s
	}
	return out
}
