package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"html"
	"time"

	"github.com/lysyi3m/techwire/app/store"
)

// Generator renders the feed document as an RSS 2.0 channel of published articles.
type Generator struct {
	version string
	now     func() time.Time
}

func NewGenerator(version string) *Generator {
	return &Generator{
		version: version,
		now:     time.Now,
	}
}

func (g *Generator) Run(doc *store.Document, siteURL string, limit int) (string, error) {
	if siteURL == "" {
		return "", fmt.Errorf("site URL is required")
	}

	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/" xmlns:atom="http://www.w3.org/2005/Atom">`)
	buf.WriteString("\n  <channel>\n")

	g.writeElement(&buf, "title", doc.Site.Title, 4)
	g.writeElement(&buf, "link", buildURL(siteURL), 4)
	description := doc.Site.Description
	if description == "" {
		description = fmt.Sprintf("Latest articles from %s", doc.Site.Title)
	}
	g.writeElement(&buf, "description", description, 4)

	buf.WriteString(fmt.Sprintf("    <atom:link href=\"%s\" rel=\"self\" type=\"application/rss+xml\" />\n",
		html.EscapeString(buildURL(siteURL)+"rss.xml")))

	lastBuildDate := g.now()
	if len(doc.Posts) > 0 {
		if t, err := time.Parse(time.RFC3339, doc.Posts[0].Date); err == nil {
			lastBuildDate = t
		}
	}
	g.writeElement(&buf, "lastBuildDate", lastBuildDate.UTC().Format(time.RFC1123Z), 4)
	g.writeElement(&buf, "generator", fmt.Sprintf("Techwire/%s", g.version), 4)

	posts := doc.Posts
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	for _, post := range posts {
		if post.Slug == "" {
			continue
		}
		g.writeItem(&buf, post, siteURL)
	}

	buf.WriteString("  </channel>\n</rss>")

	return buf.String(), nil
}

func (g *Generator) writeItem(buf *bytes.Buffer, post store.Post, siteURL string) {
	link := buildURL(siteURL, "articles", post.Slug)

	buf.WriteString("    <item>\n")

	buf.WriteString("      <guid isPermaLink=\"false\">")
	xml.EscapeText(buf, []byte(post.ID))
	buf.WriteString("</guid>\n")

	g.writeElement(buf, "title", post.Title, 6)
	g.writeElement(buf, "link", link, 6)
	g.writeElement(buf, "description", post.Excerpt, 6)

	if post.HTML != "" {
		buf.WriteString("      <content:encoded><![CDATA[")
		buf.WriteString(post.HTML)
		buf.WriteString("]]></content:encoded>\n")
	}

	if t, err := time.Parse(time.RFC3339, post.Date); err == nil {
		g.writeElement(buf, "pubDate", t.UTC().Format(time.RFC1123Z), 6)
	}

	buf.WriteString("    </item>\n")
}

func (g *Generator) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}
