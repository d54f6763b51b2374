// Package generate produces one personalized outreach message per enriched
// candidate, via the generative provider or a deterministic template.
package generate

import (
	"context"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/leadgen-cli/internal/model"
	"github.com/sells-group/leadgen-cli/pkg/anthropic"
)

// Options configures the generative attempt path.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int64
}

// Generator turns enriched candidates into final results. A provider failure
// is absorbed: the candidate still gets a templated message, with the
// provenance flag recording which path ran.
type Generator struct {
	client anthropic.Client
	opts   Options
	now    func() time.Time
}

// NewGenerator creates a Generator backed by the given provider client.
func NewGenerator(client anthropic.Client, opts Options) *Generator {
	return &Generator{
		client: client,
		opts:   opts,
		now:    time.Now,
	}
}

// WithNow sets a fixed clock for testing.
func (g *Generator) WithNow(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Generate attempts the provider path and degrades to the template on any
// failure. The returned message is always non-empty and AIGenerated always
// reflects the path that produced it.
func (g *Generator) Generate(ctx context.Context, ec model.EnrichedCandidate) model.FinalResult {
	message, aiGenerated := g.messageFor(ctx, ec)

	return model.FinalResult{
		EnrichedCandidate:   ec,
		PersonalizedMessage: message,
		MessageGenerated:    g.now(),
		AIGenerated:         aiGenerated,
	}
}

func (g *Generator) messageFor(ctx context.Context, ec model.EnrichedCandidate) (string, bool) {
	message, err := g.generateAI(ctx, ec)
	if err != nil {
		zap.L().Info("generate: provider unavailable, using template",
			zap.String("company", ec.Name),
			zap.Error(err),
		)
		return fallbackMessage(ec), false
	}
	return message, true
}

func (g *Generator) generateAI(ctx context.Context, ec model.EnrichedCandidate) (string, error) {
	temp := g.opts.Temperature

	resp, err := g.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:       g.opts.Model,
		MaxTokens:   g.opts.MaxTokens,
		System:      systemPrompt,
		Temperature: &temp,
		Messages: []anthropic.Message{
			{Role: "user", Content: buildPrompt(ec)},
		},
	})
	if err != nil {
		return "", eris.Wrap(err, "generate: create message")
	}

	message := strings.TrimSpace(resp.Text)
	if message == "" {
		return "", eris.New("generate: empty completion")
	}
	return message, nil
}
