package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/interlinear/core/errors"
	"github.com/FocuswithJustin/interlinear/core/ref"
	"github.com/FocuswithJustin/interlinear/core/translation"
)

// DefaultNETBaseURL is the NET Bible web service endpoint.
const DefaultNETBaseURL = "https://labs.bible.org/api/"

// NETClient fetches passages from the NET Bible web service. The
// service needs no API key and returns verses as a JSON array with
// string-typed chapter and verse fields.
type NETClient struct {
	*Client
	BaseURL string
}

// NewNETClient creates a NET Bible client.
func NewNETClient(c *Client) *NETClient {
	return &NETClient{Client: c, BaseURL: DefaultNETBaseURL}
}

type netVerse struct {
	BookName string `json:"bookname"`
	Chapter  string `json:"chapter"`
	Verse    string `json:"verse"`
	Text     string `json:"text"`
}

// FetchPassage fetches the referenced scope as the "net" translation.
func (n *NETClient) FetchPassage(ctx context.Context, pr *ref.PassageReference) (*translation.Passage, error) {
	switch pr.Kind {
	case ref.KindBook:
		chapters := make([]translation.Chapter, 0, ref.ChapterCount(pr.BookID))
		for ch := 1; ch <= ref.ChapterCount(pr.BookID); ch++ {
			verses, err := n.fetchVerses(ctx, fmt.Sprintf("%s %d", pr.BookName(), ch))
			if err != nil {
				return nil, err
			}
			chapters = append(chapters, translation.Chapter{Number: ch, Verses: verses})
		}
		return translation.NewBookPassage("net", chapters), nil

	case ref.KindChapter:
		verses, err := n.fetchVerses(ctx, pr.String())
		if err != nil {
			return nil, err
		}
		return translation.NewChapterPassage("net", pr.Chapter, verses), nil

	default:
		verses, err := n.fetchVerses(ctx, pr.String())
		if err != nil {
			return nil, err
		}
		return translation.NewVersePassage("net", verses), nil
	}
}

func (n *NETClient) fetchVerses(ctx context.Context, query string) ([]translation.Verse, error) {
	params := url.Values{
		"passage": {query},
		"type":    {"json"},
	}

	body, err := n.get(ctx, n.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var raw []netVerse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, errors.NewParse("JSON", n.BaseURL, err.Error())
	}

	verses := make([]translation.Verse, 0, len(raw))
	for _, v := range raw {
		num, err := strconv.Atoi(v.Verse)
		if err != nil {
			continue
		}
		text := strings.Join(strings.Fields(v.Text), " ")
		if text == "" {
			continue
		}
		verses = append(verses, translation.Verse{Number: num, Text: text})
	}
	return verses, nil
}
