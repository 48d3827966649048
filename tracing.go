package identifier

import (
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// LogValue implements slog.LogValuer so identifiers log as a group of
// name and id.
func (i *Identifier) LogValue() slog.Value {
	if i == nil {
		return slog.StringValue("<nil>")
	}
	return slog.GroupValue(
		slog.String(fieldName, i.name),
		slog.String(fieldID, i.ID()),
	)
}

// Attributes returns OpenTelemetry attributes describing the identifier,
// keyed "<prefix>.name" and "<prefix>.id".
func (i *Identifier) Attributes(prefix string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(prefix+"."+fieldName, i.Name()),
		attribute.String(prefix+"."+fieldID, i.ID()),
	}
}

// Annotate records the identifier's attributes on span.
func (i *Identifier) Annotate(span trace.Span, prefix string) {
	if span == nil || !span.IsRecording() {
		return
	}
	span.SetAttributes(i.Attributes(prefix)...)
}
