package filtering

import (
	"context"
	"fmt"
	"strings"

	"github.com/spigell/jobmail/internal/batch"
	"github.com/spigell/jobmail/internal/event"
)

// EventTypesConfig lists the event types to keep. An empty list keeps everything.
type EventTypesConfig struct {
	Keep []string
}

type eventTypesFilter struct {
	toggle
	cfg  *EventTypesConfig
	keep map[event.Type]struct{}
}

// NewEventTypes creates a filter that keeps only the configured event types.
func NewEventTypes(cfg *EventTypesConfig) Filter {
	if cfg == nil {
		cfg = &EventTypesConfig{}
	}
	return &eventTypesFilter{cfg: cfg}
}

func (f *eventTypesFilter) Name() string { return "event_types" }

func (f *eventTypesFilter) Validate() error {
	f.keep = make(map[event.Type]struct{}, len(f.cfg.Keep))
	for _, name := range f.cfg.Keep {
		t, err := event.Parse(name)
		if err != nil {
			return fmt.Errorf("keep list: %w", err)
		}
		f.keep[t] = struct{}{}
	}
	return nil
}

func (f *eventTypesFilter) Apply(_ context.Context, r *batch.Results) (*batch.Results, Step, error) {
	initial := r.Len()
	if len(f.keep) == 0 {
		return r, Step{Initial: initial, Dropped: 0, Left: r.Len()}, nil
	}

	excluded := r.Exclude(func(item *batch.Result) bool {
		_, ok := f.keep[item.Output.EventType]
		return !ok
	})

	return r, Step{Initial: initial, Dropped: len(excluded), Left: r.Len()}, nil
}

func (f *eventTypesFilter) Status() Status {
	details := map[string]string{}
	if len(f.cfg.Keep) > 0 {
		details["keep"] = strings.Join(f.cfg.Keep, ",")
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
