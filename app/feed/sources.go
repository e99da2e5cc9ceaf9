package feed

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultSources is used when no sources file exists.
var DefaultSources = []Source{
	{Name: "hnrss-frontpage", URL: "https://hnrss.org/frontpage"},
	{Name: "techmeme", URL: "https://www.techmeme.com/feed.xml"},
	{Name: "nyt-technology", URL: "https://rss.nytimes.com/services/xml/rss/nyt/Technology.xml"},
}

func LoadSources(path string) ([]Source, error) {
	if path == "" {
		return DefaultSources, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("Sources file not found, using built-in sources", "path", path)
			return DefaultSources, nil
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var file sourcesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for i := range file.Sources {
		if err := validateSource(&file.Sources[i]); err != nil {
			return nil, fmt.Errorf("invalid source at index %d: %w", i, err)
		}
	}

	slog.Debug("Sources loaded", "path", path, "count", len(file.Sources))
	return file.Sources, nil
}

func validateSource(source *Source) error {
	if source.URL == "" {
		return fmt.Errorf("source URL is required")
	}

	u, err := url.Parse(source.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("source URL must be an absolute http(s) URL: %s", source.URL)
	}

	if source.Name == "" {
		source.Name = u.Host
	}

	return nil
}
