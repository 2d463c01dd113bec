package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/FocuswithJustin/interlinear/core/errors"
	"github.com/FocuswithJustin/interlinear/core/ref"
	"github.com/FocuswithJustin/interlinear/core/translation"
)

// DefaultBibleAPIBaseURL is the bible-api.com endpoint.
const DefaultBibleAPIBaseURL = "https://bible-api.com/"

// bibleAPITranslations are the translations bible-api.com serves that
// this engine accepts.
var bibleAPITranslations = map[string]bool{
	"kjv": true,
	"asv": true,
	"web": true,
}

// BibleAPIClient fetches public-domain translations (KJV, ASV, WEB)
// from bible-api.com.
type BibleAPIClient struct {
	*Client
	Translation string
	BaseURL     string
}

// NewBibleAPIClient creates a bible-api.com client for one translation.
func NewBibleAPIClient(c *Client, name string) (*BibleAPIClient, error) {
	name = strings.ToLower(name)
	if !bibleAPITranslations[name] {
		return nil, errors.NewUnsupported("translation "+name, "bible-api.com serves kjv, asv and web")
	}
	return &BibleAPIClient{Client: c, Translation: name, BaseURL: DefaultBibleAPIBaseURL}, nil
}

type bibleAPIVerse struct {
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
	Text    string `json:"text"`
}

type bibleAPIResponse struct {
	Reference string          `json:"reference"`
	Verses    []bibleAPIVerse `json:"verses"`
}

// FetchPassage fetches the referenced scope in the client's translation.
func (b *BibleAPIClient) FetchPassage(ctx context.Context, pr *ref.PassageReference) (*translation.Passage, error) {
	switch pr.Kind {
	case ref.KindBook:
		chapters := make([]translation.Chapter, 0, ref.ChapterCount(pr.BookID))
		for ch := 1; ch <= ref.ChapterCount(pr.BookID); ch++ {
			verses, err := b.fetchVerses(ctx, fmt.Sprintf("%s %d", pr.BookName(), ch))
			if err != nil {
				return nil, err
			}
			chapters = append(chapters, translation.Chapter{Number: ch, Verses: verses})
		}
		return translation.NewBookPassage(b.Translation, chapters), nil

	case ref.KindChapter:
		verses, err := b.fetchVerses(ctx, pr.String())
		if err != nil {
			return nil, err
		}
		return translation.NewChapterPassage(b.Translation, pr.Chapter, verses), nil

	default:
		verses, err := b.fetchVerses(ctx, pr.String())
		if err != nil {
			return nil, err
		}
		return translation.NewVersePassage(b.Translation, verses), nil
	}
}

func (b *BibleAPIClient) fetchVerses(ctx context.Context, query string) ([]translation.Verse, error) {
	// bible-api.com takes the reference in the path, e.g. /John+1:1-18.
	u := b.BaseURL + url.PathEscape(query) + "?translation=" + b.Translation

	body, err := b.get(ctx, u, nil)
	if err != nil {
		return nil, err
	}

	var resp bibleAPIResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.NewParse("JSON", b.BaseURL, err.Error())
	}

	verses := make([]translation.Verse, 0, len(resp.Verses))
	for _, v := range resp.Verses {
		text := strings.Join(strings.Fields(v.Text), " ")
		if text == "" {
			continue
		}
		verses = append(verses, translation.Verse{Number: v.Verse, Text: text})
	}
	return verses, nil
}
