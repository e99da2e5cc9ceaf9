package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lysyi3m/techwire/app/content"
	"github.com/lysyi3m/techwire/app/feed"
	"github.com/lysyi3m/techwire/app/llm"
	"github.com/lysyi3m/techwire/app/store"
)

type Outcome string

const (
	OutcomePublished       Outcome = "published"
	OutcomeNoCandidates    Outcome = "no_candidates"
	OutcomeNoTechCandidate Outcome = "no_tech_candidate"
	OutcomeDraftFailed     Outcome = "draft_failed"
	OutcomeDuplicateSlug   Outcome = "duplicate_slug"
	OutcomeSaveFailed      Outcome = "save_failed"
)

// PublishPostTask selects the newest unseen technology candidate, drafts an
// article from it and prepends it to the feed document. It publishes at most
// one post per execution and never retries a failed step.
type PublishPostTask struct {
	Task
	Sources []feed.Source

	store      DocumentStore
	source     CandidateSource
	classifier TopicClassifier
	drafter    ArticleDrafter
	sanitizer  HTMLSanitizer
	extractor  ContentExtractor

	now   func() time.Time
	newID func() string

	Outcome Outcome
	Post    *store.Post
}

func NewPublishPostTask(sources []feed.Source, docStore DocumentStore, source CandidateSource, classifier TopicClassifier, drafter ArticleDrafter, sanitizer HTMLSanitizer) *PublishPostTask {
	return &PublishPostTask{
		Task:       NewTask(TaskTypePublishPost),
		Sources:    sources,
		store:      docStore,
		source:     source,
		classifier: classifier,
		drafter:    drafter,
		sanitizer:  sanitizer,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// WithExtractor enables replacing the RSS summary with the article's readable text.
func (t *PublishPostTask) WithExtractor(extractor ContentExtractor) *PublishPostTask {
	t.extractor = extractor
	return t
}

// Execute returns an error only when ctx is already done. Every other
// failure ends the run with a soft Outcome.
func (t *PublishPostTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	doc := t.store.Load()
	existingTitles := doc.Titles()

	candidates := t.source.Run(ctx, t.Sources)
	if len(candidates) == 0 {
		slog.Info("No candidates fetched")
		return t.finish(OutcomeNoCandidates)
	}

	picked := t.selectCandidate(ctx, candidates, existingTitles)
	if picked == nil {
		slog.Info("No new tech candidate found", "candidates", len(candidates))
		return t.finish(OutcomeNoTechCandidate)
	}

	summary := t.enrichSummary(ctx, picked)

	article, err := t.drafter.Run(ctx, picked.Title, summary, picked.Link)
	if err != nil {
		slog.Error("Failed to draft article", "title", picked.Title, "link", picked.Link, "error", err)
		return t.finish(OutcomeDraftFailed)
	}

	post, err := t.buildPost(article)
	if err != nil {
		slog.Error("Failed to prepare drafted article", "title", article.Title, "error", err)
		return t.finish(OutcomeDraftFailed)
	}

	if post.Slug == "" || doc.HasSlug(post.Slug) {
		slog.Info("Duplicate slug, skipping", "slug", post.Slug, "title", post.Title)
		return t.finish(OutcomeDuplicateSlug)
	}

	doc.Prepend(post)
	if err := t.store.Save(doc); err != nil {
		slog.Error("Failed to save feed document", "error", err)
		return t.finish(OutcomeSaveFailed)
	}

	t.Post = &post
	slog.Info("Wrote post", "title", post.Title, "slug", post.Slug, "id", post.ID)
	return t.finish(OutcomePublished)
}

// selectCandidate classifies candidates in order and stops at the first TECH.
func (t *PublishPostTask) selectCandidate(ctx context.Context, candidates []feed.Candidate, existingTitles map[string]struct{}) *feed.Candidate {
	skipped := 0
	classified := 0

	for i := range candidates {
		c := &candidates[i]
		if c.Title == "" {
			skipped++
			continue
		}
		if _, ok := existingTitles[c.Title]; ok {
			skipped++
			continue
		}

		classified++
		if t.classifier.Run(ctx, c.Title, c.Summary) {
			slog.Debug("Candidate selected", "title", c.Title, "skipped", skipped, "classified", classified)
			return c
		}
		slog.Debug("Candidate rejected by classifier", "title", c.Title)
	}

	slog.Debug("Candidate scan finished", "skipped", skipped, "classified", classified)
	return nil
}

func (t *PublishPostTask) enrichSummary(ctx context.Context, c *feed.Candidate) string {
	if t.extractor == nil || c.Link == "" {
		return c.Summary
	}

	text, err := t.extractor.Run(ctx, c.Link)
	if err != nil {
		slog.Warn("Failed to extract article content, using feed summary", "url", c.Link, "error", err)
		return c.Summary
	}

	if len(text) <= len(c.Summary) {
		return c.Summary
	}
	return text
}

func (t *PublishPostTask) buildPost(article *llm.Article) (store.Post, error) {
	html, err := t.sanitizer.Run(article.HTML)
	if err != nil {
		return store.Post{}, fmt.Errorf("failed to sanitize HTML: %w", err)
	}

	title := strings.TrimSpace(content.ToASCII(article.Title))

	return store.Post{
		ID:      t.newID(),
		Slug:    content.Slugify(title),
		Title:   title,
		Date:    t.now().UTC().Format(store.DateLayout),
		Excerpt: strings.TrimSpace(content.ToASCII(article.Excerpt)),
		HTML:    content.ToASCII(html),
	}, nil
}

func (t *PublishPostTask) finish(outcome Outcome) error {
	t.Outcome = outcome

	slog.Info("Task completed",
		"type", t.GetType(),
		"duration", t.GetDuration(),
		"outcome", outcome)

	return nil
}
