package cfg

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set")

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Storage
	FeedFile    string `long:"feed-file" env:"FEED_FILE" default:"feed.json" description:"JSON feed document read and rewritten by each run"`
	SourcesFile string `long:"sources-file" env:"SOURCES_FILE" default:"sources.yml" description:"YAML file listing RSS sources (built-in list when missing)"`
	MaxPosts    int    `long:"max-posts" env:"MAX_POSTS" default:"500" description:"Maximum number of posts kept in the feed document"`

	// Site
	SiteTitle   string `long:"site-title" env:"SITE_TITLE" default:"Obsidian News" description:"Site title used when the feed document is missing"`
	SiteURL     string `long:"site-url" env:"SITE_URL" default:"https://obsidian-news.com" description:"Public site URL used for sitemap entries"`
	SitemapFile string `long:"sitemap-file" env:"SITEMAP_FILE" default:"sitemap.xml" description:"Sitemap output path (empty disables sitemap generation)"`
	SitemapOnly bool   `long:"sitemap-only" env:"SITEMAP_ONLY" description:"Only rebuild the sitemap and RSS files from the feed document"`
	RSSFile     string `long:"rss-file" env:"RSS_FILE" description:"RSS output path for published articles (empty disables)"`
	RSSItems    int    `long:"rss-items" env:"RSS_ITEMS" default:"20" description:"Maximum number of articles in the RSS output"`

	// Language model service
	APIKey               string `long:"openai-api-key" env:"OPENAI_API_KEY" description:"OpenAI API key (required for publishing)"`
	APIBaseURL           string `long:"openai-base-url" env:"OPENAI_BASE_URL" description:"Override for the OpenAI-compatible API base URL"`
	ClassifierModel      string `long:"classifier-model" env:"CLASSIFIER_MODEL" default:"gpt-4.1-mini" description:"Model used for the TECH/NOT_TECH gate"`
	DrafterModel         string `long:"drafter-model" env:"DRAFTER_MODEL" default:"gpt-4.1" description:"Model used to draft articles"`
	ClassifierFailClosed bool   `long:"classifier-fail-closed" env:"CLASSIFIER_FAIL_CLOSED" description:"Reject candidates when the classifier call fails"`
	LLMTimeout           int    `long:"llm-timeout" env:"LLM_TIMEOUT" default:"120" description:"Language model request timeout in seconds"`

	// Fetching
	ExtractContent  bool `long:"extract-content" env:"EXTRACT_CONTENT" description:"Fetch the selected article page and use its readable text for drafting"`
	ExtractMaxChars int  `long:"extract-max-chars" env:"EXTRACT_MAX_CHARS" default:"6000" description:"Maximum characters of extracted text passed to the drafter"`
	FetchTimeout    int  `long:"fetch-timeout" env:"FETCH_TIMEOUT" default:"30" description:"RSS and article fetch timeout in seconds"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"Techwire/1.0" description:"User agent string for HTTP requests"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

// Load parses the process arguments and environment.
// It returns nil, nil when help was requested.
func Load() (*Cfg, error) {
	return Parse(os.Args[1:])
}

func Parse(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		FeedFile:             raw.FeedFile,
		SourcesFile:          raw.SourcesFile,
		MaxPosts:             raw.MaxPosts,
		SiteTitle:            raw.SiteTitle,
		SiteURL:              raw.SiteURL,
		SitemapFile:          raw.SitemapFile,
		SitemapOnly:          raw.SitemapOnly,
		RSSFile:              raw.RSSFile,
		RSSItems:             raw.RSSItems,
		APIKey:               raw.APIKey,
		APIBaseURL:           raw.APIBaseURL,
		ClassifierModel:      raw.ClassifierModel,
		DrafterModel:         raw.DrafterModel,
		ClassifierFailClosed: raw.ClassifierFailClosed,
		LLMTimeout:           raw.LLMTimeout,
		ExtractContent:       raw.ExtractContent,
		ExtractMaxChars:      raw.ExtractMaxChars,
		FetchTimeout:         raw.FetchTimeout,
		UserAgent:            raw.UserAgent,
		Debug:                raw.Debug,
		Version:              GetVersion(),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// RequireAPIKey reports whether the language model credential is present.
func (c *Cfg) RequireAPIKey() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func (c *Cfg) FetchTimeoutDuration() time.Duration {
	if c.FetchTimeout <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.FetchTimeout) * time.Second
}

func (c *Cfg) LLMTimeoutDuration() time.Duration {
	if c.LLMTimeout <= 0 {
		return 0
	}
	return time.Duration(c.LLMTimeout) * time.Second
}

func (c *Cfg) validate() error {
	nonNegativeFields := map[string]int{
		"max posts":         c.MaxPosts,
		"extract max chars": c.ExtractMaxChars,
		"fetch timeout":     c.FetchTimeout,
		"llm timeout":       c.LLMTimeout,
		"rss items":         c.RSSItems,
	}

	for fieldName, fieldValue := range nonNegativeFields {
		if fieldValue < 0 {
			return fmt.Errorf("%s must be non-negative", fieldName)
		}
	}

	if c.MaxPosts == 0 {
		return fmt.Errorf("max posts must be greater than zero")
	}
	if c.FeedFile == "" {
		return fmt.Errorf("feed file is required")
	}

	return nil
}
