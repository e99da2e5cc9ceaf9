package tasks

import (
	"context"

	"github.com/lysyi3m/techwire/app/content"
	"github.com/lysyi3m/techwire/app/feed"
	"github.com/lysyi3m/techwire/app/llm"
	"github.com/lysyi3m/techwire/app/store"
)

// DocumentStore loads and persists the feed document.
type DocumentStore interface {
	Load() *store.Document
	Save(doc *store.Document) error
}

// CandidateSource returns candidates from all sources, newest first.
type CandidateSource interface {
	Run(ctx context.Context, sources []feed.Source) []feed.Candidate
}

type TopicClassifier interface {
	Run(ctx context.Context, title, summary string) bool
}

type ArticleDrafter interface {
	Run(ctx context.Context, title, summary, link string) (*llm.Article, error)
}

type ContentExtractor interface {
	Run(ctx context.Context, link string) (string, error)
}

type HTMLSanitizer interface {
	Run(fragment string) (string, error)
}

var (
	_ DocumentStore    = (*store.FileStore)(nil)
	_ CandidateSource  = (*feed.Aggregator)(nil)
	_ TopicClassifier  = (*llm.Classifier)(nil)
	_ ArticleDrafter   = (*llm.Drafter)(nil)
	_ ContentExtractor = (*content.Extractor)(nil)
	_ HTMLSanitizer    = (*content.Sanitizer)(nil)
)
