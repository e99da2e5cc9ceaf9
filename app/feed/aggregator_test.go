package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func rssWithItems(items ...string) string {
	body := ""
	for _, item := range items {
		body += item
	}
	return `<?xml version="1.0"?><rss version="2.0"><channel><title>T</title>` + body + `</channel></rss>`
}

func rssItem(title, pubDate string) string {
	return fmt.Sprintf("<item><title>%s</title><link>https://example.com/%s</link><pubDate>%s</pubDate></item>", title, title, pubDate)
}

func TestAggregator_Run_MergesAndSortsNewestFirst(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/a", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rssWithItems(
			rssItem("a-old", "Mon, 03 Jul 2023 08:00:00 GMT"),
			rssItem("a-new", "Mon, 03 Jul 2023 12:00:00 GMT"),
		)))
	})
	mux.HandleFunc("/b", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rssWithItems(
			rssItem("b-mid", "Mon, 03 Jul 2023 10:00:00 GMT"),
		)))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	aggregator := NewAggregator(server.Client(), NewParser(), "Techwire/test")
	candidates := aggregator.Run(context.Background(), []Source{
		{Name: "a", URL: server.URL + "/a"},
		{Name: "b", URL: server.URL + "/b"},
	})

	expected := []string{"a-new", "b-mid", "a-old"}
	if len(candidates) != len(expected) {
		t.Fatalf("Expected %d candidates, got %d", len(expected), len(candidates))
	}
	for i, title := range expected {
		if candidates[i].Title != title {
			t.Errorf("Expected candidate %d to be %s, got %s", i, title, candidates[i].Title)
		}
	}
}

func TestAggregator_Run_StableForEqualDates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rssWithItems(
			rssItem("first", "Mon, 03 Jul 2023 10:00:00 GMT"),
			rssItem("second", "Mon, 03 Jul 2023 10:00:00 GMT"),
			rssItem("third", "Mon, 03 Jul 2023 10:00:00 GMT"),
		)))
	}))
	defer server.Close()

	candidates := NewAggregator(server.Client(), NewParser(), "Techwire/test").
		Run(context.Background(), []Source{{Name: "s", URL: server.URL}})

	for i, title := range []string{"first", "second", "third"} {
		if candidates[i].Title != title {
			t.Errorf("Expected candidate %d to be %s, got %s", i, title, candidates[i].Title)
		}
	}
}

func TestAggregator_Run_SourceFailuresAreSkipped(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rssWithItems(rssItem("ok", "Mon, 03 Jul 2023 10:00:00 GMT"))))
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not a feed</html>"))
	})
	mux.HandleFunc("/error", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	candidates := NewAggregator(server.Client(), NewParser(), "Techwire/test").Run(context.Background(), []Source{
		{Name: "error", URL: server.URL + "/error"},
		{Name: "broken", URL: server.URL + "/broken"},
		{Name: "unreachable", URL: "http://127.0.0.1:1/feed"},
		{Name: "ok", URL: server.URL + "/ok"},
	})

	if len(candidates) != 1 || candidates[0].Title != "ok" {
		t.Errorf("Expected only the healthy source's item, got %+v", candidates)
	}
}

func TestAggregator_Run_SkipsDisabledAndSendsUserAgent(t *testing.T) {
	requests := 0
	var userAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		userAgent = r.Header.Get("User-Agent")
		w.Write([]byte(rssWithItems(rssItem("x", "Mon, 03 Jul 2023 10:00:00 GMT"))))
	}))
	defer server.Close()

	disabled := false
	NewAggregator(server.Client(), NewParser(), "Techwire/test").Run(context.Background(), []Source{
		{Name: "off", URL: server.URL + "/off", Enabled: &disabled},
		{Name: "on", URL: server.URL + "/on"},
	})

	if requests != 1 {
		t.Errorf("Expected 1 request, got %d", requests)
	}
	if userAgent != "Techwire/test" {
		t.Errorf("Expected user agent 'Techwire/test', got '%s'", userAgent)
	}
}

func TestAggregator_Run_NoSources(t *testing.T) {
	candidates := NewAggregator(http.DefaultClient, NewParser(), "Techwire/test").Run(context.Background(), nil)
	if len(candidates) != 0 {
		t.Errorf("Expected no candidates, got %d", len(candidates))
	}
}
