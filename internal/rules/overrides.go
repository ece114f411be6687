package rules

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

// Overrides are user additions to the built-in tables, read from the "rules"
// section of the config file.
type Overrides struct {
	ATSDomains        []string                     `mapstructure:"ats-domains" validate:"dive,required"`
	RecruiterDomains  []string                     `mapstructure:"recruiter-domains" validate:"dive,required"`
	NoReply           []string                     `mapstructure:"noreply" validate:"dive,required"`
	GenericDomains    []string                     `mapstructure:"generic-domains" validate:"dive,required"`
	NewsletterSignals []string                     `mapstructure:"newsletter-signals" validate:"dive,required"`
	Categories        map[string]CategoryOverrides `mapstructure:"categories" validate:"dive"`
}

// CategoryOverrides extend the profile of a single event type.
type CategoryOverrides struct {
	SubjectKeywords  []string `mapstructure:"subject-keywords" validate:"dive,required"`
	Keywords         []string `mapstructure:"keywords" validate:"dive,required"`
	NegativeKeywords []string `mapstructure:"negative-keywords" validate:"dive,required"`
	SenderDomains    []string `mapstructure:"sender-domains" validate:"dive,required"`
	// Weight replaces the profile multiplier when non-zero.
	Weight float64 `mapstructure:"weight" validate:"gte=0,lte=10"`
}

// DecodeOverrides converts a raw config section into Overrides. Unknown keys
// are rejected so typos do not silently disable a rule.
func DecodeOverrides(raw map[string]any) (*Overrides, error) {
	var o Overrides
	if len(raw) == 0 {
		return &o, nil
	}

	cfg := &mapstructure.DecoderConfig{
		Result:           &o,
		TagName:          "mapstructure",
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating rules decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding rules: %w", err)
	}

	if err := o.Validate(); err != nil {
		return nil, err
	}
	return &o, nil
}

// Validate checks that no phrase is empty and weights are sane. An empty
// phrase would match every message.
func (o *Overrides) Validate() error {
	if err := validator.New().Struct(o); err != nil {
		return fmt.Errorf("invalid rules: %w", err)
	}
	return nil
}
