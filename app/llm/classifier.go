package llm

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Classifier labels a candidate as technology news or not.
type Classifier struct {
	client   *openai.Client
	model    string
	failOpen bool
}

// NewClassifier returns a classifier. With failOpen set, a failed service
// call accepts the candidate instead of rejecting it.
func NewClassifier(client *openai.Client, model string, failOpen bool) *Classifier {
	return &Classifier{
		client:   client,
		model:    model,
		failOpen: failOpen,
	}
}

func (c *Classifier) Run(ctx context.Context, title, summary string) bool {
	out, err := complete(ctx, c.client, completionRequest{
		model:  c.model,
		prompt: classifyPrompt(title, summary),
	})
	if err != nil {
		slog.Warn("Classifier call failed", "title", title, "fail_open", c.failOpen, "error", err)
		return c.failOpen
	}

	return IsTech(out)
}

// IsTech reports whether a classifier answer starts with the TECH token.
// NOT_TECH and anything unexpected are rejected.
func IsTech(answer string) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(answer)), "TECH")
}
