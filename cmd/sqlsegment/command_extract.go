package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shibukawa/sqlsegment"
	"github.com/shibukawa/sqlsegment/extractor"
	"github.com/shibukawa/sqlsegment/parser"
	"github.com/shibukawa/sqlsegment/segment"
	"golang.org/x/sync/errgroup"
)

// ExtractCmd represents the extract command
type ExtractCmd struct {
	Files    []string `arg:"" optional:"" help:"SQL files to extract from (default: stdin)" type:"path"`
	SQL      string   `help:"SQL statement to extract from instead of files"`
	Format   string   `short:"f" help:"Output format: yaml, json, text or csv (default: from config)"`
	Dialect  string   `short:"d" help:"SQL dialect: postgres, mysql, mariadb or sqlite (default: from config)"`
	Parallel int      `help:"Number of files processed at once (default: from config, 0 means CPU count)"`
}

// extraction is the outcome for one input
type extraction struct {
	Source string `json:"source" yaml:"source"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`

	segment.SelectView `yaml:",inline"`

	err error
}

// Run executes the extract command
func (cmd *ExtractCmd) Run(ctx *Context) error {
	config, err := ctx.loadConfig()
	if err != nil {
		return err
	}

	format := cmd.Format
	if format == "" {
		format = config.Output.Format
	}

	renderer, err := newRenderer(format)
	if err != nil {
		return err
	}

	dialect := resolveDialect(cmd.Dialect, config)
	if !dialect.IsValid() {
		return fmt.Errorf("%w: invalid dialect '%s'", sqlsegment.ErrConfigValidation, dialect)
	}

	parallel := cmd.Parallel
	if parallel <= 0 {
		parallel = config.Extract.Parallel
	}

	if parallel <= 0 {
		parallel = runtime.NumCPU()
	}

	ctx.info("Extracting segments (dialect: %s, parallel: %d)", dialect, parallel)

	results, err := cmd.extractAll(context.Background(), ctx, dialect, parallel)
	if err != nil {
		return err
	}

	if err := renderer(ctx.Stdout, results); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	failed := 0

	for _, result := range results {
		if result.err != nil {
			failed++

			for _, line := range errorLines(result.err) {
				ctx.failure("%s: %s", result.Source, line)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrExtractionFailed, failed, len(results))
	}

	ctx.success("Extracted %d statement(s)", len(results))

	return nil
}

// extractAll processes every input with at most parallel workers.
// Results keep the input order. Read failures abort the run while
// parse and extraction failures are kept in the result.
func (cmd *ExtractCmd) extractAll(ctx context.Context, appCtx *Context, dialect sqlsegment.Dialect, parallel int) ([]extraction, error) {
	if len(cmd.Files) == 0 {
		src, err := readSource(appCtx, "", cmd.SQL)
		if err != nil {
			return nil, err
		}

		return []extraction{extract(src, dialect)}, nil
	}

	if cmd.SQL != "" {
		return nil, ErrConflictingInput
	}

	results := make([]extraction, len(cmd.Files))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(parallel)

	for i, file := range cmd.Files {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			src, err := readFile(file)
			if err != nil {
				return err
			}

			appCtx.info("Processing %s", file)
			results[i] = extract(src, dialect)

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// extract parses one input and collects its segments
func extract(src source, dialect sqlsegment.Dialect) extraction {
	result := extraction{Source: src.Name}

	parsed, err := parser.Parse(src.SQL, dialect)
	if err != nil {
		result.err = err
		result.Error = err.Error()

		return result
	}

	stmt, err := extractor.SelectExtractor{}.Extract(parsed.Root, parsed.Placeholders)
	if err != nil {
		result.err = err
		result.Error = err.Error()

		return result
	}

	result.SelectView = stmt.Describe()

	return result
}
