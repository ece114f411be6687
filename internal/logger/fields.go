package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldMessageID is the structured log field key for a message identifier.
	FieldMessageID = "message_id"
	// FieldPath is the structured log field key for the source mail file.
	FieldPath = "path"
	// FieldEventType is the structured log field key for the assigned label.
	FieldEventType = "event_type"
	// FieldConfidence is the structured log field key for the label confidence.
	FieldConfidence = "confidence"
	FieldSender     = "sender"
	FieldSubject    = "subject"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// If the logger is nil or no fields are supplied, the input logger is returned
// unchanged, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// MessageFields returns the fields that identify a message in the logs.
// Empty values are ignored to keep log entries compact.
func MessageFields(id, path, sender string) []zap.Field {
	return StringFields(
		StringField{Key: FieldMessageID, Value: id},
		StringField{Key: FieldPath, Value: path},
		StringField{Key: FieldSender, Value: sender},
	)
}

// ClassificationFields describes the outcome of classifying one message.
func ClassificationFields(eventType string, confidence float64) []zap.Field {
	fields := StringFields(StringField{Key: FieldEventType, Value: eventType})
	return append(fields, zap.Float64(FieldConfidence, confidence))
}

// WithMessage attaches the message identity fields to the provided logger.
// If the logger is nil, a no-op logger is created to avoid panics.
func WithMessage(logger *zap.Logger, id, path, sender string) *zap.Logger {
	return WithFields(logger, MessageFields(id, path, sender)...)
}
