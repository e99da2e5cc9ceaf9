package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/lysyi3m/techwire/app/feed"
)

type BuildRSSTask struct {
	Task
	SiteURL    string
	OutputPath string
	Limit      int

	store     DocumentStore
	generator *feed.Generator

	ItemCount int
}

func NewBuildRSSTask(siteURL, outputPath string, limit int, docStore DocumentStore, generator *feed.Generator) *BuildRSSTask {
	return &BuildRSSTask{
		Task:       NewTask(TaskTypeBuildRSS),
		SiteURL:    siteURL,
		OutputPath: outputPath,
		Limit:      limit,
		store:      docStore,
		generator:  generator,
	}
}

func (t *BuildRSSTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	doc := t.store.Load()

	rss, err := t.generator.Run(doc, t.SiteURL, t.Limit)
	if err != nil {
		return fmt.Errorf("failed to generate RSS: %w", err)
	}

	if err := os.WriteFile(t.OutputPath, []byte(rss), 0644); err != nil {
		return fmt.Errorf("failed to write RSS: %w", err)
	}

	t.ItemCount = strings.Count(rss, "<item>")

	slog.Info("Task completed",
		"type", t.GetType(),
		"duration", t.GetDuration(),
		"path", t.OutputPath,
		"items", t.ItemCount)

	return nil
}
