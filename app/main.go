package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/lysyi3m/techwire/app/cfg"
	"github.com/lysyi3m/techwire/app/content"
	"github.com/lysyi3m/techwire/app/feed"
	"github.com/lysyi3m/techwire/app/llm"
	"github.com/lysyi3m/techwire/app/store"
	"github.com/lysyi3m/techwire/app/tasks"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code. Only configuration problems, including
// a missing API key, are non-zero; every pipeline outcome exits 0.
func run(args []string) int {
	c, err := cfg.Parse(args)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}
	if c == nil {
		return 0
	}

	setupLogger(c.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	docStore := store.NewFileStore(c.FeedFile, c.MaxPosts, c.SiteTitle)

	if c.SitemapOnly {
		if err := buildSiteFiles(ctx, c, docStore); err != nil {
			slog.Error("Failed to build site files", "error", err)
			return 1
		}
		return 0
	}

	if err := c.RequireAPIKey(); err != nil {
		slog.Error("Missing credential", "error", err)
		return 1
	}

	slog.Info("Starting techwire run", "version", c.Version, "feed_file", c.FeedFile)

	sources, err := feed.LoadSources(c.SourcesFile)
	if err != nil {
		slog.Error("Failed to load sources", "path", c.SourcesFile, "error", err)
		return 1
	}

	httpClient := &http.Client{Timeout: c.FetchTimeoutDuration()}
	aiClient := llm.NewOpenAIClient(c.APIKey, c.APIBaseURL, c.LLMTimeoutDuration())

	task := tasks.NewPublishPostTask(
		sources,
		docStore,
		feed.NewAggregator(httpClient, feed.NewParser(), c.UserAgent),
		llm.NewClassifier(aiClient, c.ClassifierModel, !c.ClassifierFailClosed),
		llm.NewDrafter(aiClient, c.DrafterModel),
		content.NewSanitizer(),
	)
	if c.ExtractContent {
		task.WithExtractor(content.NewExtractor(httpClient, c.UserAgent, c.ExtractMaxChars))
	}

	if err := tasks.Run(ctx, task); err != nil {
		slog.Error("Publish run aborted", "error", err)
		return 0
	}

	if task.Outcome == tasks.OutcomePublished {
		if err := buildSiteFiles(ctx, c, docStore); err != nil {
			slog.Error("Failed to build site files", "error", err)
		}
	}

	return 0
}

// buildSiteFiles regenerates the sitemap and RSS outputs that are enabled.
func buildSiteFiles(ctx context.Context, c *cfg.Cfg, docStore *store.FileStore) error {
	var siteTasks []tasks.TaskInterface

	if c.SitemapFile != "" {
		siteTasks = append(siteTasks, tasks.NewBuildSitemapTask(c.SiteURL, c.SitemapFile, docStore, feed.NewSitemapGenerator()))
	}
	if c.RSSFile != "" {
		siteTasks = append(siteTasks, tasks.NewBuildRSSTask(c.SiteURL, c.RSSFile, c.RSSItems, docStore, feed.NewGenerator(c.Version)))
	}

	for _, task := range siteTasks {
		if err := tasks.Run(ctx, task); err != nil {
			return err
		}
	}

	return nil
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
