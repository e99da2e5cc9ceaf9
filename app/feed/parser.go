package feed

import (
	"bytes"
	"cmp"
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/lysyi3m/techwire/app/content"
)

type Parser struct {
	gofeedParser *gofeed.Parser
	now          func() time.Time
}

func NewParser() *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
		now:          time.Now,
	}
}

func (p *Parser) Run(data []byte) ([]Candidate, error) {
	feed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	candidates := make([]Candidate, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		candidates = append(candidates, p.normalizeItem(item))
	}

	return candidates, nil
}

func (p *Parser) normalizeItem(item *gofeed.Item) Candidate {
	candidate := Candidate{
		Title:   strings.TrimSpace(item.Title),
		Summary: cmp.Or(content.PlainText(item.Description), content.PlainText(item.Content)),
		Link:    strings.TrimSpace(item.Link),
	}

	// Missing or unparsable timestamps fall back to the time of the fetch.
	switch {
	case item.PublishedParsed != nil:
		candidate.Date = item.PublishedParsed.UTC()
	case item.UpdatedParsed != nil:
		candidate.Date = item.UpdatedParsed.UTC()
	default:
		candidate.Date = p.now().UTC()
	}

	return candidate
}
