package content

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var allowedTags = map[string]bool{
	"p":          true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"ul":         true,
	"ol":         true,
	"li":         true,
	"strong":     true,
	"em":         true,
	"b":          true,
	"i":          true,
	"blockquote": true,
	"code":       true,
	"pre":        true,
	"br":         true,
}

// Elements removed together with everything inside them.
var droppedTags = []string{
	"script", "style", "iframe", "object", "embed", "img", "picture",
	"video", "audio", "source", "link", "meta", "form", "input",
	"button", "svg", "canvas", "noscript", "template", "head", "title",
}

// Sanitizer restricts drafted HTML to a small set of text markup.
type Sanitizer struct{}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{}
}

func (s *Sanitizer) Run(fragment string) (string, error) {
	if strings.TrimSpace(fragment) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<body>" + fragment + "</body>"))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	body := doc.Find("body")
	body.Find(strings.Join(droppedTags, ",")).Remove()

	body.Find("*").Each(func(_ int, sel *goquery.Selection) {
		node := sel.Get(0)
		node.Attr = nil

		if !allowedTags[goquery.NodeName(sel)] {
			sel.ReplaceWithSelection(sel.Contents())
		}
	})

	out, err := body.Html()
	if err != nil {
		return "", fmt.Errorf("failed to render HTML: %w", err)
	}

	return strings.TrimSpace(out), nil
}

// PlainText returns the text content of an HTML fragment with whitespace collapsed.
func PlainText(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}
	if !strings.Contains(fragment, "<") && !strings.Contains(fragment, "&") {
		return strings.Join(strings.Fields(fragment), " ")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.Join(strings.Fields(fragment), " ")
	}

	return strings.Join(strings.Fields(doc.Text()), " ")
}
