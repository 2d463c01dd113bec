// Package esword reads e-Sword Bible modules (.bblx files) as an
// offline translation source. A .bblx is a SQLite database with a
// Bible table (Book, Chapter, Verse, Scripture) and an optional
// Details table holding the module title and abbreviation. Book
// numbering matches the 66-book Protestant canon used by core/ref.
package esword

import (
	"context"
	"database/sql"
	"path/filepath"
	"regexp"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/FocuswithJustin/interlinear/core/errors"
	"github.com/FocuswithJustin/interlinear/core/ref"
	"github.com/FocuswithJustin/interlinear/core/translation"
)

// tagPattern strips inline rich-text tags some modules embed in the
// Scripture column.
var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Reader reads verses from one e-Sword module.
type Reader struct {
	db   *sql.DB
	name string
}

// Open opens a .bblx module read-only. The translation name is the
// module's abbreviation from the Details table, falling back to the
// file name.
func Open(path string) (*Reader, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.NewIO("open", path, err)
	}

	r := &Reader{db: db, name: moduleName(db, path)}
	return r, nil
}

// Close releases the underlying database.
func (r *Reader) Close() error {
	return r.db.Close()
}

// Name returns the translation name this module is merged under.
func (r *Reader) Name() string {
	return r.name
}

// moduleName prefers the Details abbreviation, then the Details title,
// then the file base name. Some modules ship without a Details table.
func moduleName(db *sql.DB, path string) string {
	var title, abbrev sql.NullString
	err := db.QueryRow("SELECT Title, Abbreviation FROM Details LIMIT 1").Scan(&title, &abbrev)
	if err == nil {
		if abbrev.Valid && strings.TrimSpace(abbrev.String) != "" {
			return strings.ToLower(strings.TrimSpace(abbrev.String))
		}
		if title.Valid && strings.TrimSpace(title.String) != "" {
			return strings.ToLower(strings.TrimSpace(title.String))
		}
	}
	base := filepath.Base(path)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}

// FetchPassage reads the referenced scope from the module.
func (r *Reader) FetchPassage(ctx context.Context, pr *ref.PassageReference) (*translation.Passage, error) {
	switch pr.Kind {
	case ref.KindBook:
		return r.fetchBook(ctx, pr)

	case ref.KindChapter:
		verses, err := r.queryVerses(ctx,
			"SELECT Verse, Scripture FROM Bible WHERE Book = ? AND Chapter = ? ORDER BY Verse",
			pr.BookID, pr.Chapter)
		if err != nil {
			return nil, err
		}
		return translation.NewChapterPassage(r.name, pr.Chapter, verses), nil

	default:
		verses, err := r.queryVerses(ctx,
			"SELECT Verse, Scripture FROM Bible WHERE Book = ? AND Chapter = ? AND Verse BETWEEN ? AND ? ORDER BY Verse",
			pr.BookID, pr.Chapter, pr.StartVerse, pr.EndVerse)
		if err != nil {
			return nil, err
		}
		return translation.NewVersePassage(r.name, verses), nil
	}
}

func (r *Reader) fetchBook(ctx context.Context, pr *ref.PassageReference) (*translation.Passage, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT Chapter, Verse, Scripture FROM Bible WHERE Book = ? ORDER BY Chapter, Verse",
		pr.BookID)
	if err != nil {
		return nil, errors.NewIO("query", r.name, err)
	}
	defer rows.Close()

	var chapters []translation.Chapter
	for rows.Next() {
		var chapter, verse int
		var scripture string
		if err := rows.Scan(&chapter, &verse, &scripture); err != nil {
			return nil, errors.NewIO("scan", r.name, err)
		}
		text := cleanScripture(scripture)
		if text == "" {
			continue
		}
		if len(chapters) == 0 || chapters[len(chapters)-1].Number != chapter {
			chapters = append(chapters, translation.Chapter{Number: chapter})
		}
		last := &chapters[len(chapters)-1]
		last.Verses = append(last.Verses, translation.Verse{Number: verse, Text: text})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewIO("query", r.name, err)
	}
	return translation.NewBookPassage(r.name, chapters), nil
}

func (r *Reader) queryVerses(ctx context.Context, query string, args ...any) ([]translation.Verse, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.NewIO("query", r.name, err)
	}
	defer rows.Close()

	var verses []translation.Verse
	for rows.Next() {
		var verse int
		var scripture string
		if err := rows.Scan(&verse, &scripture); err != nil {
			return nil, errors.NewIO("scan", r.name, err)
		}
		text := cleanScripture(scripture)
		if text == "" {
			continue
		}
		verses = append(verses, translation.Verse{Number: verse, Text: text})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewIO("query", r.name, err)
	}
	return verses, nil
}

// cleanScripture strips embedded markup and collapses whitespace.
func cleanScripture(s string) string {
	s = tagPattern.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}
