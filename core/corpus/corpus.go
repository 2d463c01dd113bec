// Package corpus decodes the tagged Greek New Testament corpus and
// aggregates it into a book/chapter/verse/word tree.
//
// The corpus is a tab-separated table. Each row describes one Greek word
// and carries three fields this package cares about: a structured
// book/chapter/verse key, an encoded morphology field containing the
// surface form and Strong's identifier, and a multi-gloss field. Fields
// use CJK-style brackets with fullwidth bar delimiters, e.g.
// 〔49｜1｜1〕 and 〔BIMNRSTWH=Βίβλος=G0976=N-NSF;〕.
package corpus

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/interlinear/core/errors"
)

// Column names in the corpus header.
const (
	refColumn   = "〔book｜chapter｜verse〕"
	wordColumn  = "〔TANTT〕"
	glossColumn = "〔MounceGloss｜TyndaleHouseGloss｜OpenGNTGloss〕"
)

// bracketCutset holds the record bracket runes.
const bracketCutset = "〔〕"

// fieldBar is the fullwidth delimiter used inside bracketed fields.
const fieldBar = "｜"

// RowKey is the structured position of one corpus row.
type RowKey struct {
	Book    int
	Chapter int
	Verse   int
}

// Row is one corpus row, holding the raw encoded fields alongside the
// parsed key. Decoding of the word happens lazily in the aggregator.
type Row struct {
	Key   RowKey
	Word  string // encoded morphology field
	Gloss string // multi-gloss field
}

// Corpus is the full row set in source order.
type Corpus struct {
	Rows []Row
}

// ParseRowKey parses a structured reference field like 〔49｜1｜1〕.
func ParseRowKey(field string) (RowKey, bool) {
	content := strings.Trim(strings.TrimSpace(field), bracketCutset)
	parts := strings.Split(content, fieldBar)
	if len(parts) != 3 {
		return RowKey{}, false
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return RowKey{}, false
		}
		nums[i] = n
	}
	return RowKey{Book: nums[0], Chapter: nums[1], Verse: nums[2]}, true
}

// Load reads the tab-separated corpus from r. The first line is the
// header; the three required columns are located by name. Rows whose key
// field cannot be parsed are skipped, not fatal.
func Load(r io.Reader) (*Corpus, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.NewIO("read", "corpus", err)
		}
		return nil, errors.NewParse("corpus", "", "empty input")
	}

	header := strings.Split(scanner.Text(), "\t")
	refIdx, wordIdx, glossIdx := -1, -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case refColumn:
			refIdx = i
		case wordColumn:
			wordIdx = i
		case glossColumn:
			glossIdx = i
		}
	}
	if refIdx < 0 || wordIdx < 0 || glossIdx < 0 {
		return nil, errors.NewParse("corpus", "", "missing required columns in header")
	}

	c := &Corpus{}
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) <= refIdx || len(fields) <= wordIdx || len(fields) <= glossIdx {
			continue
		}
		key, ok := ParseRowKey(fields[refIdx])
		if !ok {
			continue
		}
		c.Rows = append(c.Rows, Row{
			Key:   key,
			Word:  fields[wordIdx],
			Gloss: fields[glossIdx],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewIO("read", "corpus", err)
	}

	return c, nil
}
