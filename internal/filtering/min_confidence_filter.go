package filtering

import (
	"context"
	"fmt"

	"github.com/spigell/jobmail/internal/batch"
)

// upper bound of any confidence the classifier reports
const maxConfidence = 0.95

type minConfidenceFilter struct {
	toggle
	threshold float64
}

// NewMinConfidence creates a filter that removes results below the given confidence.
func NewMinConfidence(threshold float64) Filter {
	return &minConfidenceFilter{threshold: threshold}
}

func (f *minConfidenceFilter) Name() string { return "min_confidence" }

func (f *minConfidenceFilter) Validate() error {
	if f.threshold < 0 || f.threshold > maxConfidence {
		return fmt.Errorf("minimum confidence %.2f is outside [0, %.2f]", f.threshold, maxConfidence)
	}
	return nil
}

func (f *minConfidenceFilter) Apply(_ context.Context, r *batch.Results) (*batch.Results, Step, error) {
	initial := r.Len()
	if f.threshold == 0 {
		return r, Step{Initial: initial, Dropped: 0, Left: r.Len()}, nil
	}

	excluded := r.Exclude(func(item *batch.Result) bool {
		return item.Output.Confidence < f.threshold
	})

	return r, Step{Initial: initial, Dropped: len(excluded), Left: r.Len()}, nil
}

func (f *minConfidenceFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  f.reason,
		Details: map[string]string{"min": fmt.Sprintf("%.2f", f.threshold)},
	}
}
