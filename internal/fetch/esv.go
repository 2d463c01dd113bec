package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/FocuswithJustin/interlinear/core/errors"
	"github.com/FocuswithJustin/interlinear/core/ref"
	"github.com/FocuswithJustin/interlinear/core/translation"
)

// DefaultESVBaseURL is the ESV API passage text endpoint.
const DefaultESVBaseURL = "https://api.esv.org/v3/passage/text/"

// ESVClient fetches passages from the ESV API. The API returns plain
// text with [N] verse markers and free-standing section headings, which
// the translation package disambiguates.
type ESVClient struct {
	*Client
	APIKey  string
	BaseURL string
}

// NewESVClient creates an ESV client.
func NewESVClient(c *Client, apiKey string) *ESVClient {
	return &ESVClient{Client: c, APIKey: apiKey, BaseURL: DefaultESVBaseURL}
}

// esvResponse is the subset of the API response we use.
type esvResponse struct {
	Canonical string   `json:"canonical"`
	Passages  []string `json:"passages"`
}

// FetchPassage fetches the referenced scope as the "esv" translation.
// Whole books are assembled chapter by chapter.
func (e *ESVClient) FetchPassage(ctx context.Context, pr *ref.PassageReference) (*translation.Passage, error) {
	if e.APIKey == "" {
		return nil, errors.NewUnsupported("ESV request", "API key not configured")
	}

	switch pr.Kind {
	case ref.KindBook:
		chapters := make([]translation.Chapter, 0, ref.ChapterCount(pr.BookID))
		for ch := 1; ch <= ref.ChapterCount(pr.BookID); ch++ {
			verses, err := e.fetchVerses(ctx, fmt.Sprintf("%s %d", pr.BookName(), ch))
			if err != nil {
				return nil, err
			}
			chapters = append(chapters, translation.Chapter{Number: ch, Verses: verses})
		}
		return translation.NewBookPassage("esv", chapters), nil

	case ref.KindChapter:
		verses, err := e.fetchVerses(ctx, pr.String())
		if err != nil {
			return nil, err
		}
		return translation.NewChapterPassage("esv", pr.Chapter, verses), nil

	default:
		verses, err := e.fetchVerses(ctx, pr.String())
		if err != nil {
			return nil, err
		}
		return translation.NewVersePassage("esv", verses), nil
	}
}

// fetchVerses fetches one query's text and splits it into verses.
// A query with no passages yields zero verses, not an error.
func (e *ESVClient) fetchVerses(ctx context.Context, query string) ([]translation.Verse, error) {
	params := url.Values{
		"q":                           {query},
		"include-verse-numbers":       {"true"},
		"include-first-verse-numbers": {"true"},
		"include-footnotes":           {"false"},
		"include-footnote-body":       {"false"},
		"include-headings":            {"true"},
		"include-short-copyright":     {"false"},
		"include-passage-references":  {"false"},
		"include-selahs":              {"true"},
		"indent-paragraphs":           {"0"},
		"indent-poetry":               {"false"},
		"indent-declares":             {"0"},
		"indent-psalm-doxology":       {"0"},
		"line-length":                 {"0"},
	}

	header := http.Header{"Authorization": {"Token " + e.APIKey}}
	body, err := e.get(ctx, e.BaseURL+"?"+params.Encode(), header)
	if err != nil {
		return nil, err
	}

	var resp esvResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.NewParse("JSON", e.BaseURL, err.Error())
	}
	if len(resp.Passages) == 0 {
		return nil, nil
	}
	return translation.ParseVerses(resp.Passages[0]), nil
}
