package filtering

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/jobmail/internal/batch"
)

type sendersFilter struct {
	toggle
	senders []string
	logger  *zap.Logger
}

// NewExcludedSenders creates a filter that removes results from the listed
// addresses or domains.
func NewExcludedSenders(senders []string, logger *zap.Logger) Filter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &sendersFilter{senders: senders, logger: logger}
}

func (f *sendersFilter) Name() string { return "excluded_senders" }

func (f *sendersFilter) Validate() error { return nil }

func (f *sendersFilter) Apply(_ context.Context, r *batch.Results) (*batch.Results, Step, error) {
	initial := r.Len()
	if len(f.senders) == 0 {
		return r, Step{Initial: initial, Dropped: 0, Left: r.Len()}, nil
	}

	excluded := r.ExcludeSenders(f.senders)
	if len(excluded) > 0 {
		f.logger.Info("excluding messages by senders",
			zap.Strings("excluded_senders", f.senders),
			zap.Strings("excluded_messages", excluded),
			zap.Int("messages_left", r.Len()),
		)
	}

	return r, Step{Initial: initial, Dropped: len(excluded), Left: r.Len()}, nil
}

func (f *sendersFilter) Status() Status {
	details := map[string]string{}
	if len(f.senders) > 0 {
		details["senders"] = strings.Join(f.senders, ",")
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
