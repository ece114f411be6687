package filtering

import (
	"context"

	"github.com/spigell/jobmail/internal/batch"
)

type newsletterFilter struct {
	toggle
}

// NewNewsletter creates a filter that removes messages detected as job-board digests.
func NewNewsletter() Filter {
	return &newsletterFilter{}
}

func (f *newsletterFilter) Name() string { return "newsletter" }

func (f *newsletterFilter) Validate() error { return nil }

func (f *newsletterFilter) Apply(_ context.Context, r *batch.Results) (*batch.Results, Step, error) {
	initial := r.Len()
	excluded := r.Exclude(func(item *batch.Result) bool {
		return item.Output.IsNewsletter()
	})

	return r, Step{Initial: initial, Dropped: len(excluded), Left: r.Len()}, nil
}

func (f *newsletterFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason}
}
