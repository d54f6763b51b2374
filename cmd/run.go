package main

import (
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/leadgen-cli/internal/enrich"
	"github.com/sells-group/leadgen-cli/internal/generate"
	"github.com/sells-group/leadgen-cli/internal/model"
	"github.com/sells-group/leadgen-cli/internal/pipeline"
	"github.com/sells-group/leadgen-cli/internal/source"
	anthropicpkg "github.com/sells-group/leadgen-cli/pkg/anthropic"
	"github.com/sells-group/leadgen-cli/pkg/apollo"
)

var (
	runIndustry     string
	runLocation     string
	runMinEmployees int
	runMaxEmployees int
	runPageSize     int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the lead generation pipeline once",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if runMinEmployees > runMaxEmployees {
			return eris.Errorf("min-employees (%d) must not exceed max-employees (%d)", runMinEmployees, runMaxEmployees)
		}

		pageSize := runPageSize
		if pageSize == 0 {
			pageSize = cfg.Apollo.PerPage
		}

		apolloClient := apollo.NewClient(cfg.Apollo.Key,
			apollo.WithBaseURL(cfg.Apollo.BaseURL),
			apollo.WithTimeout(time.Duration(cfg.Apollo.TimeoutSecs)*time.Second),
		)
		anthropicClient := anthropicpkg.NewClient(cfg.Anthropic.Key)

		heuristics := enrich.DefaultHeuristics()
		if cfg.Enrich.HeuristicsFile != "" {
			loaded, err := enrich.LoadHeuristics(cfg.Enrich.HeuristicsFile)
			if err != nil {
				return eris.Wrap(err, "load heuristics")
			}
			heuristics = loaded
		}

		fetcher := enrich.NewHTTPFetcher(time.Duration(cfg.Enrich.TimeoutSecs) * time.Second)
		enricher := enrich.NewEnricher(fetcher, heuristics)
		generator := generate.NewGenerator(anthropicClient, generate.Options{
			Model:       cfg.Anthropic.Model,
			Temperature: cfg.Anthropic.Temperature,
			MaxTokens:   cfg.Anthropic.MaxTokens,
		})

		p := pipeline.New(
			source.NewAdapter(apolloClient),
			enricher,
			generator,
			pipeline.Options{
				EnrichDelay:   time.Duration(cfg.Enrich.DelayMs) * time.Millisecond,
				GenerateDelay: time.Duration(cfg.Generate.DelayMs) * time.Millisecond,
				CSVPath:       cfg.Output.CSVPath,
				JSONPath:      cfg.Output.JSONPath,
				XLSXPath:      cfg.Output.XLSXPath,
			},
			os.Stdout,
		)

		spec := model.SearchSpec{
			MinEmployees: runMinEmployees,
			MaxEmployees: runMaxEmployees,
			Industry:     runIndustry,
			Location:     runLocation,
			PageSize:     pageSize,
		}

		results, err := p.Run(ctx, spec)
		if err != nil {
			return eris.Wrap(err, "pipeline run")
		}

		zap.L().Info("run complete", zap.Int("results", len(results)))
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runIndustry, "industry", "Software", "industry keyword to search for")
	runCmd.Flags().StringVar(&runLocation, "location", "", "location filter, e.g. \"Austin, Texas\"")
	runCmd.Flags().IntVar(&runMinEmployees, "min-employees", 10, "minimum employee count")
	runCmd.Flags().IntVar(&runMaxEmployees, "max-employees", 500, "maximum employee count")
	runCmd.Flags().IntVar(&runPageSize, "page-size", 0, "results per provider page (0 = config default)")
	rootCmd.AddCommand(runCmd)
}
