package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/lysyi3m/techwire/app/store"
)

const (
	sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"
	lastModLayout    = "2006-01-02T15:04:05-07:00"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type SitemapGenerator struct {
	now func() time.Time
}

func NewSitemapGenerator() *SitemapGenerator {
	return &SitemapGenerator{now: time.Now}
}

// Run renders one entry for the site root plus one per post with a slug.
func (g *SitemapGenerator) Run(doc *store.Document, siteURL string) ([]byte, error) {
	if siteURL == "" {
		return nil, fmt.Errorf("site URL is required")
	}

	rootLastMod := g.now().UTC().Format(lastModLayout)
	if len(doc.Posts) > 0 {
		if lm := formatLastMod(doc.Posts[0].Date); lm != "" {
			rootLastMod = lm
		}
	}

	urls := []sitemapURL{
		{Loc: buildURL(siteURL), LastMod: rootLastMod},
	}
	for _, p := range doc.Posts {
		if p.Slug == "" {
			continue
		}
		urls = append(urls, sitemapURL{
			Loc:     buildURL(siteURL, "articles", p.Slug),
			LastMod: formatLastMod(p.Date),
		})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(&buf).Encode(sitemapURLSet{XMLNS: sitemapNamespace, URLs: urls}); err != nil {
		return nil, fmt.Errorf("failed to encode sitemap: %w", err)
	}

	return buf.Bytes(), nil
}

func formatLastMod(date string) string {
	if date == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return ""
	}
	return t.UTC().Format(lastModLayout)
}

// buildURL joins a base URL with path segments, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join("/", u.Path, path.Join(pathSegments...))
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}
