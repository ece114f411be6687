package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  sender  ", Value: "  jane@acme.com  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != "sender" || fields[0].String != "jane@acme.com" {
		t.Fatalf("unexpected sender field: %+v", fields[0])
	}

	empty := StringFields()
	if len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	enriched := WithFields(logger, zap.String("foo", "bar"))
	enriched.Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx["foo"] != "bar" {
		t.Fatalf("expected field to be bar, got %q", ctx["foo"])
	}

	enriched = WithFields(nil, zap.String("baz", "qux"))
	if enriched == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}

	// Ensure logging with the fallback logger does not panic.
	enriched.Info("another log")
}

func TestMessageFields(t *testing.T) {
	fields := MessageFields("abc@acme.com", "", "jane@acme.com")
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}

	if fields[0].Key != FieldMessageID || fields[0].String != "abc@acme.com" {
		t.Fatalf("unexpected id field: %+v", fields[0])
	}

	if fields[1].Key != FieldSender {
		t.Fatalf("expected sender field, got %+v", fields[1])
	}
}

func TestClassificationFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	WithMessage(zap.New(core), "id-1", "inbox/a.eml", "").
		Info("classified", ClassificationFields("OFFER", 0.83)...)

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx[FieldEventType] != "OFFER" {
		t.Fatalf("expected event type OFFER, got %v", ctx[FieldEventType])
	}
	if ctx[FieldConfidence] != 0.83 {
		t.Fatalf("expected confidence 0.83, got %v", ctx[FieldConfidence])
	}
	if ctx[FieldPath] != "inbox/a.eml" {
		t.Fatalf("expected path field, got %v", ctx[FieldPath])
	}
	if _, ok := ctx[FieldSender]; ok {
		t.Fatalf("empty sender must be omitted")
	}

	// Ensure logging with the fallback logger does not panic.
	WithMessage(nil, "id-2", "", "").Info("another log")
}
