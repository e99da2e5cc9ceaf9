package tasks

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lysyi3m/techwire/app/feed"
	"github.com/lysyi3m/techwire/app/store"
)

func TestBuildRSSTask_Execute(t *testing.T) {
	docStore := &memoryStore{doc: &store.Document{
		Site: store.Site{Title: "Obsidian News"},
		Posts: []store.Post{
			{ID: "1", Slug: "first", Title: "First", Date: "2024-06-01T12:00:00.000Z", HTML: "<p>One</p>"},
			{ID: "2", Slug: "second", Title: "Second", Date: "2024-05-01T12:00:00.000Z"},
			{ID: "3", Slug: "third", Title: "Third", Date: "2024-04-01T12:00:00.000Z"},
		},
	}}
	output := filepath.Join(t.TempDir(), "rss.xml")

	task := NewBuildRSSTask("https://obsidian-news.com", output, 2, docStore, feed.NewGenerator("test"))
	if err := Run(context.Background(), task); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if task.ItemCount != 2 {
		t.Errorf("Expected 2 items, got %d", task.ItemCount)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<link>https://obsidian-news.com/articles/first/</link>") {
		t.Errorf("Expected article link in RSS, got: %s", data)
	}
	if strings.Contains(string(data), "third") {
		t.Error("Expected items beyond the limit to be omitted")
	}
	if docStore.saves != 0 {
		t.Error("Building RSS must not write the feed document")
	}
}

func TestBuildRSSTask_Execute_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	output := filepath.Join(t.TempDir(), "rss.xml")
	task := NewBuildRSSTask("https://obsidian-news.com", output, 20, &memoryStore{doc: &store.Document{}}, feed.NewGenerator("test"))
	if err := Run(ctx, task); err == nil {
		t.Error("Expected error for cancelled context")
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("Expected no RSS file to be written")
	}
}
