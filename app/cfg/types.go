package cfg

type Cfg struct {
	// Storage
	FeedFile    string
	SourcesFile string
	MaxPosts    int

	// Site
	SiteTitle   string
	SiteURL     string
	SitemapFile string
	SitemapOnly bool
	RSSFile     string
	RSSItems    int

	// Language model service
	APIKey               string
	APIBaseURL           string
	ClassifierModel      string
	DrafterModel         string
	ClassifierFailClosed bool
	LLMTimeout           int

	// Fetching
	ExtractContent  bool
	ExtractMaxChars int
	FetchTimeout    int

	// Application metadata
	UserAgent string
	Debug     bool
	Version   string
}
