// Package batch classifies many messages concurrently and offers the
// grouping and export helpers the CLI builds its reports from.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/jobmail/internal/classifier"
	"github.com/spigell/jobmail/internal/logger"
	"github.com/spigell/jobmail/internal/mailfile"
	"github.com/spigell/jobmail/internal/utils"
)

const subjectLogLimit = 80

// Source is one message waiting to be classified. From and Date come from the
// mail headers and are carried into the result untouched.
type Source struct {
	ID    string
	Path  string
	From  string
	Date  time.Time
	Input classifier.Input
}

// Runner classifies sources with a bounded number of workers.
type Runner struct {
	classifier *classifier.Classifier
	workers    int
	logger     *zap.Logger
}

// New creates a Runner. A nil classifier means the built-in rules and a
// non-positive worker count means one worker per CPU.
func New(c *classifier.Classifier, workers int, log *zap.Logger) *Runner {
	if c == nil {
		c = classifier.New(nil)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{classifier: c, workers: workers, logger: log}
}

// Classify labels every source. Results keep the order of sources.
func (r *Runner) Classify(ctx context.Context, sources []Source) (*Results, error) {
	items := make([]*Result, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, src := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			items[i] = r.classify(src)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("classify batch: %w", err)
	}

	return &Results{Items: items}, nil
}

// ClassifyFiles parses and labels the given mail files. Files that cannot be
// parsed are logged and skipped.
func (r *Runner) ClassifyFiles(ctx context.Context, paths []string) (*Results, error) {
	items := make([]*Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			src, err := sourceFromFile(path)
			if err != nil {
				r.logger.Warn("skipping unreadable message", zap.String(logger.FieldPath, path), zap.Error(err))
				return nil
			}

			items[i] = r.classify(src)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("classify files: %w", err)
	}

	results := &Results{Items: make([]*Result, 0, len(items))}
	for _, item := range items {
		if item != nil {
			results.Items = append(results.Items, item)
		}
	}

	if skipped := len(paths) - results.Len(); skipped > 0 {
		r.logger.Info("some messages were skipped", zap.Int("skipped", skipped), zap.Int("classified", results.Len()))
	}

	return results, nil
}

func (r *Runner) classify(src Source) *Result {
	id := src.ID
	if id == "" {
		id = uuid.NewString()
	}

	out := r.classifier.Classify(src.Input)

	logger.WithMessage(r.logger, id, src.Path, src.Input.Sender).Debug("message classified",
		append(logger.ClassificationFields(out.EventType.String(), out.Confidence),
			zap.String(logger.FieldSubject, utils.TruncateForLog(src.Input.Subject, subjectLogLimit)),
			zap.Bool("fields_extracted", !out.ExtractedData.IsEmpty()),
		)...,
	)

	result := &Result{
		ID:     id,
		Path:   src.Path,
		From:   src.From,
		Input:  src.Input,
		Output: out,
	}
	if !src.Date.IsZero() {
		date := src.Date
		result.Date = &date
	}
	return result
}

func sourceFromFile(path string) (Source, error) {
	msg, err := mailfile.ParseFile(path)
	if err != nil {
		return Source{}, err
	}

	body, err := msg.Body()
	if err != nil {
		return Source{}, fmt.Errorf("read body of %s: %w", path, err)
	}

	return Source{
		ID:   msg.ID,
		Path: path,
		From: msg.From,
		Date: msg.Date,
		Input: classifier.Input{
			Subject: msg.Subject,
			Body:    body,
			Sender:  msg.Sender,
		},
	}, nil
}
