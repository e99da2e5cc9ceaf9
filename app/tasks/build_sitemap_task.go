package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/lysyi3m/techwire/app/feed"
)

type BuildSitemapTask struct {
	Task
	SiteURL    string
	OutputPath string

	store     DocumentStore
	generator *feed.SitemapGenerator

	URLCount int
}

func NewBuildSitemapTask(siteURL, outputPath string, docStore DocumentStore, generator *feed.SitemapGenerator) *BuildSitemapTask {
	return &BuildSitemapTask{
		Task:       NewTask(TaskTypeBuildSitemap),
		SiteURL:    siteURL,
		OutputPath: outputPath,
		store:      docStore,
		generator:  generator,
	}
}

func (t *BuildSitemapTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	doc := t.store.Load()

	data, err := t.generator.Run(doc, t.SiteURL)
	if err != nil {
		return fmt.Errorf("failed to generate sitemap: %w", err)
	}

	if err := os.WriteFile(t.OutputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write sitemap: %w", err)
	}

	t.URLCount = 1
	for _, p := range doc.Posts {
		if p.Slug != "" {
			t.URLCount++
		}
	}

	slog.Info("Task completed",
		"type", t.GetType(),
		"duration", t.GetDuration(),
		"path", t.OutputPath,
		"urls", t.URLCount)

	return nil
}
