package feed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"time"
)

const maxFeedBytes = 10 << 20

// Aggregator fetches every enabled source in turn and merges their entries.
type Aggregator struct {
	httpClient *http.Client
	parser     *Parser
	userAgent  string
}

func NewAggregator(httpClient *http.Client, parser *Parser, userAgent string) *Aggregator {
	return &Aggregator{
		httpClient: httpClient,
		parser:     parser,
		userAgent:  userAgent,
	}
}

// Run never fails as a whole: a source that cannot be fetched or parsed is
// logged and contributes nothing. The result is sorted newest first, keeping
// source order for equal timestamps.
func (a *Aggregator) Run(ctx context.Context, sources []Source) []Candidate {
	start := time.Now()
	var candidates []Candidate
	errorCount := 0

	for _, source := range sources {
		if !source.IsEnabled() {
			slog.Debug("Source disabled, skipping", "source", source.Name)
			continue
		}

		items, err := a.fetchSource(ctx, source)
		if err != nil {
			slog.Warn("Failed to fetch source", "source", source.Name, "url", source.URL, "error", err)
			errorCount++
			continue
		}

		slog.Debug("Source fetched", "source", source.Name, "items", len(items))
		candidates = append(candidates, items...)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Date.After(candidates[j].Date)
	})

	slog.Info("Sources aggregated",
		"sources", len(sources),
		"errors", errorCount,
		"candidates", len(candidates),
		"duration", time.Since(start))

	return candidates
}

func (a *Aggregator) fetchSource(ctx context.Context, source Source) ([]Candidate, error) {
	data, err := a.fetchFeed(ctx, source.URL)
	if err != nil {
		return nil, err
	}

	items, err := a.parser.Run(data)
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (a *Aggregator) fetchFeed(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", a.userAgent)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}
