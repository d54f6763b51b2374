// Package pipeline composes the four stages of the lead generation run:
// source, enrich, generate, sink. Control flows strictly forward and every
// stage processes items one at a time.
package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/leadgen-cli/internal/enrich"
	"github.com/sells-group/leadgen-cli/internal/export"
	"github.com/sells-group/leadgen-cli/internal/generate"
	"github.com/sells-group/leadgen-cli/internal/model"
	"github.com/sells-group/leadgen-cli/internal/source"
)

// Options configures pipeline pacing and output locations.
type Options struct {
	EnrichDelay   time.Duration
	GenerateDelay time.Duration
	CSVPath       string
	JSONPath      string
	XLSXPath      string // empty disables the spreadsheet export
}

// Pipeline runs the full sequential workflow.
type Pipeline struct {
	src       *source.Adapter
	enricher  *enrich.Enricher
	generator *generate.Generator
	opts      Options
	report    io.Writer
}

// New creates a Pipeline from its stage implementations.
func New(src *source.Adapter, enricher *enrich.Enricher, generator *generate.Generator, opts Options, report io.Writer) *Pipeline {
	return &Pipeline{
		src:       src,
		enricher:  enricher,
		generator: generator,
		opts:      opts,
		report:    report,
	}
}

// Run executes one end-to-end lead generation pass. Source and persist
// failures are fatal; per-candidate enrichment and generation failures are
// absorbed inside their stages, so the result count always equals the usable
// candidate count.
func (p *Pipeline) Run(ctx context.Context, spec model.SearchSpec) ([]model.FinalResult, error) {
	runID := uuid.NewString()
	zap.L().Info("pipeline: run started",
		zap.String("run_id", runID),
		zap.String("industry", spec.Industry),
		zap.Int("min_employees", spec.MinEmployees),
		zap.Int("max_employees", spec.MaxEmployees),
	)

	candidates, err := p.src.FetchLeads(ctx, spec)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: fetch leads")
	}

	enriched, err := p.enrichAll(ctx, candidates)
	if err != nil {
		return nil, err
	}

	results, err := p.generateAll(ctx, enriched)
	if err != nil {
		return nil, err
	}

	if err := p.persist(results); err != nil {
		return nil, err
	}

	export.WriteReport(p.report, runID, results)

	zap.L().Info("pipeline: run complete",
		zap.String("run_id", runID),
		zap.Int("results", len(results)),
	)

	return results, nil
}

// enrichAll runs the enricher over each candidate in sequence, pausing
// between items to avoid overloading target websites.
func (p *Pipeline) enrichAll(ctx context.Context, candidates []model.Candidate) ([]model.EnrichedCandidate, error) {
	pacer := NewPacer(p.opts.EnrichDelay)

	enriched := make([]model.EnrichedCandidate, 0, len(candidates))
	for _, c := range candidates {
		enriched = append(enriched, p.enricher.Enrich(ctx, c))
		if err := pacer.Wait(ctx); err != nil {
			return nil, eris.Wrap(err, "pipeline: enrich pacing")
		}
	}
	return enriched, nil
}

// generateAll runs the generator over each enriched candidate in sequence.
func (p *Pipeline) generateAll(ctx context.Context, enriched []model.EnrichedCandidate) ([]model.FinalResult, error) {
	pacer := NewPacer(p.opts.GenerateDelay)

	results := make([]model.FinalResult, 0, len(enriched))
	for _, ec := range enriched {
		results = append(results, p.generator.Generate(ctx, ec))
		if err := pacer.Wait(ctx); err != nil {
			return nil, eris.Wrap(err, "pipeline: generate pacing")
		}
	}
	return results, nil
}

// persist writes every configured export. Any write failure aborts the run:
// a partial export set is not guaranteed consistent.
func (p *Pipeline) persist(results []model.FinalResult) error {
	if err := export.WriteCSV(results, p.opts.CSVPath); err != nil {
		return eris.Wrap(err, "pipeline: persist csv")
	}
	if err := export.WriteJSON(results, p.opts.JSONPath); err != nil {
		return eris.Wrap(err, "pipeline: persist json")
	}
	if p.opts.XLSXPath != "" {
		if err := export.WriteXLSX(results, p.opts.XLSXPath); err != nil {
			return eris.Wrap(err, "pipeline: persist xlsx")
		}
	}

	zap.L().Info("pipeline: results exported",
		zap.String("csv", p.opts.CSVPath),
		zap.String("json", p.opts.JSONPath),
	)
	return nil
}
