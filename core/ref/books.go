package ref

import "strings"

// Book numbering follows the traditional 66-book scheme where Matthew = 40.
// Only the New Testament is covered; the corpus has no Old Testament rows.

// bookIDs maps normalized book names and abbreviations to book numbers.
// Keys are lowercase with all whitespace removed, so "1 Corinthians",
// "1Corinthians" and "1corinthians" all resolve through the same entry.
var bookIDs = map[string]int{
	"matthew": 40, "matt": 40, "mt": 40,
	"mark": 41, "mk": 41,
	"luke": 42, "lk": 42,
	"john": 43, "jn": 43,
	"acts": 44,
	"romans": 45, "rom": 45,
	"1corinthians": 46, "1cor": 46,
	"2corinthians": 47, "2cor": 47,
	"galatians": 48, "gal": 48,
	"ephesians": 49, "eph": 49,
	"philippians": 50, "phil": 50,
	"colossians": 51, "col": 51,
	"1thessalonians": 52, "1thess": 52,
	"2thessalonians": 53, "2thess": 53,
	"1timothy": 54, "1tim": 54,
	"2timothy": 55, "2tim": 55,
	"titus":    56,
	"philemon": 57, "phlm": 57,
	"hebrews": 58, "heb": 58,
	"james": 59, "jas": 59,
	"1peter": 60, "1pet": 60,
	"2peter": 61, "2pet": 61,
	"1john": 62, "1jn": 62,
	"2john": 63, "2jn": 63,
	"3john": 64, "3jn": 64,
	"jude":       65,
	"revelation": 66, "rev": 66,
}

// bookNames maps book numbers to display names.
var bookNames = map[int]string{
	40: "Matthew", 41: "Mark", 42: "Luke", 43: "John", 44: "Acts",
	45: "Romans", 46: "1 Corinthians", 47: "2 Corinthians", 48: "Galatians",
	49: "Ephesians", 50: "Philippians", 51: "Colossians",
	52: "1 Thessalonians", 53: "2 Thessalonians", 54: "1 Timothy",
	55: "2 Timothy", 56: "Titus", 57: "Philemon", 58: "Hebrews",
	59: "James", 60: "1 Peter", 61: "2 Peter", 62: "1 John",
	63: "2 John", 64: "3 John", 65: "Jude", 66: "Revelation",
}

// bookChapters maps book numbers to chapter counts, used when a whole book
// has to be assembled chapter by chapter.
var bookChapters = map[int]int{
	40: 28, 41: 16, 42: 24, 43: 21, 44: 28,
	45: 16, 46: 16, 47: 13, 48: 6,
	49: 6, 50: 4, 51: 4,
	52: 5, 53: 3, 54: 6,
	55: 4, 56: 3, 57: 1, 58: 13,
	59: 5, 60: 5, 61: 3, 62: 5,
	63: 1, 64: 1, 65: 1, 66: 22,
}

// BookID resolves a book name or abbreviation to its book number.
// Matching is case-insensitive and ignores whitespace.
func BookID(name string) (int, bool) {
	key := strings.ToLower(name)
	key = strings.Join(strings.Fields(key), "")
	id, ok := bookIDs[key]
	return id, ok
}

// BookName returns the display name for a book number, or "" if unknown.
func BookName(id int) string {
	return bookNames[id]
}

// ChapterCount returns the number of chapters in a book, or 0 if unknown.
func ChapterCount(id int) int {
	return bookChapters[id]
}
