package feed

import (
	"time"
)

// Candidate is one syndication entry normalized for selection. It is never
// persisted directly.
type Candidate struct {
	Title   string
	Summary string
	Link    string
	Date    time.Time
}

type Source struct {
	Name    string `yaml:"name"`
	URL     string `yaml:"url"`
	Enabled *bool  `yaml:"enabled"`
}

func (s Source) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

type sourcesFile struct {
	Sources []Source `yaml:"sources"`
}
