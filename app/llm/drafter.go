package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

var ErrMalformedArticle = errors.New("malformed article response")

type Article struct {
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	HTML    string `json:"html"`
}

// Drafter turns a selected candidate into a full article.
type Drafter struct {
	client *openai.Client
	model  string
}

func NewDrafter(client *openai.Client, model string) *Drafter {
	return &Drafter{
		client: client,
		model:  model,
	}
}

func (d *Drafter) Run(ctx context.Context, title, summary, link string) (*Article, error) {
	out, err := complete(ctx, d.client, completionRequest{
		model:  d.model,
		prompt: draftPrompt(title, summary, link),
		json:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to draft article: %w", err)
	}

	return ParseArticle(out)
}

// ParseArticle requires a JSON object with non-empty string title, excerpt and html.
func ParseArticle(data string) (*Article, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(data), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedArticle, err)
	}

	var article Article
	targets := []struct {
		key string
		dst *string
	}{
		{"title", &article.Title},
		{"excerpt", &article.Excerpt},
		{"html", &article.HTML},
	}

	for _, target := range targets {
		raw, ok := fields[target.key]
		if !ok {
			return nil, fmt.Errorf("%w: missing %q", ErrMalformedArticle, target.key)
		}
		if err := json.Unmarshal(raw, target.dst); err != nil {
			return nil, fmt.Errorf("%w: %q is not a string", ErrMalformedArticle, target.key)
		}
		if strings.TrimSpace(*target.dst) == "" {
			return nil, fmt.Errorf("%w: %q is empty", ErrMalformedArticle, target.key)
		}
	}

	return &article, nil
}
