// Package batch implements concurrent multi-video extraction with per-item failure isolation.
package batch

import (
	"context"
	"strings"
	"sync"

	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/tubescribe-cli/tubescribe/constant"
	"github.com/tubescribe-cli/tubescribe/extract"
	"github.com/tubescribe-cli/tubescribe/fault"
	"github.com/tubescribe-cli/tubescribe/filesystem"
	"github.com/tubescribe-cli/tubescribe/key"
	"github.com/tubescribe-cli/tubescribe/log"
	"github.com/tubescribe-cli/tubescribe/save"
	"github.com/tubescribe-cli/tubescribe/util"
	"github.com/tubescribe-cli/tubescribe/validate"
)

// Outcome is the per-item slot of a batch run, indexed by original input order.
type Outcome struct {
	// Input is the raw URL line the item originated from.
	Input string

	// Result is populated only on a fully successful retrieval.
	Result *extract.Result

	// File is the absolute path of the written output, empty on failure.
	File string

	// Err is the item's terminal failure, nil on success.
	Err error
}

// Parse reads a batch source file and returns the surviving URLs plus the
// count of discarded invalid lines.
//
// The source path itself is confined to the working directory. Blank lines
// are skipped; an empty batch and an all-invalid batch fail with EmptyBatch;
// more than 100 non-blank lines fail with BatchTooLarge. Invalid lines are
// discarded with a warning, never a fatal error.
func Parse(path string) ([]string, int, error) {
	source, err := util.SanitizePath(path)
	if err != nil {
		return nil, 0, err
	}

	data, err := filesystem.API().ReadFile(source)
	if err != nil {
		return nil, 0, err
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	if len(lines) == 0 {
		return nil, 0, fault.New(fault.EmptyBatch, "no URLs found in batch file %s", path).WithInput(path)
	}
	if len(lines) > constant.MaxBatchSize {
		return nil, 0, fault.New(fault.BatchTooLarge, "batch size %d exceeds limit of %d", len(lines), constant.MaxBatchSize).WithInput(path)
	}

	var (
		valid   []string
		skipped int
	)
	for _, line := range lines {
		if _, err := validate.VideoID(line); err != nil {
			log.Warnf("skipping invalid URL: %s", line)
			skipped++
			continue
		}
		valid = append(valid, line)
	}

	if len(valid) == 0 {
		return nil, skipped, fault.New(fault.EmptyBatch, "no valid URLs found in batch file %s", path).WithInput(path)
	}

	return valid, skipped, nil
}

// Run extracts every URL concurrently through a bounded worker pool and,
// once all items have completed, writes one output file per success.
//
// Failure isolation is strict: an item's terminal failure lands in its own
// outcome slot and never aborts or delays siblings. The returned slice
// preserves input order regardless of completion order.
func Run(ctx context.Context, ex *extract.Extractor, urls []string, lang mo.Option[string]) []*Outcome {
	workers := util.Max(1, viper.GetInt(key.BatchWorkers))
	sem := make(chan struct{}, workers)
	outcomes := make([]*Outcome, len(urls))

	var wg sync.WaitGroup
	for i, raw := range urls {
		wg.Add(1)
		go func(i int, raw string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			result, err := ex.Run(ctx, raw, lang)
			outcomes[i] = &Outcome{Input: raw, Result: result, Err: err}
		}(i, raw)
	}
	wg.Wait()

	// Output files are written only after every item has completed, so a
	// failed item can never leave a partial file behind.
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			log.Errorf("failed to process %s: %v", outcome.Input, outcome.Err)
			continue
		}

		path, err := save.Transcript(outcome.Result.Title, outcome.Result.Text)
		if err != nil {
			outcome.Err = err
			log.Errorf("failed to save transcript for %s: %v", outcome.Input, err)
			continue
		}

		outcome.File = path
		log.Infof("saved transcript for %s to %s", outcome.Input, path)
	}

	return outcomes
}
