package model

// Reference types as they appear on the Jaeger wire format.
const (
	ChildOf     = "CHILD_OF"
	FollowsFrom = "FOLLOWS_FROM"
)

// Reference links a span to another span, usually its parent.
type Reference struct {
	RefType string
	TraceID string
	SpanID  string
}

// Span is a single timed operation within a trace, owned by a process.
// StartTime and Duration are expressed in microseconds, matching the
// Jaeger query API.
type Span struct {
	TraceID       string
	SpanID        string
	OperationName string
	StartTime     int64
	Duration      int64
	ProcessID     string
	References    []Reference
	Tags          Tags
}

// ParentSpanID returns the span id of the first CHILD_OF reference, or
// "" when the span has no parent. FOLLOWS_FROM references and any
// CHILD_OF entries past the first are ignored.
func (s *Span) ParentSpanID() string {
	for _, ref := range s.References {
		if ref.RefType == ChildOf {
			return ref.SpanID
		}
	}
	return ""
}

// IsRoot reports whether the span has no CHILD_OF parent.
func (s *Span) IsRoot() bool {
	return s.ParentSpanID() == ""
}

// Tag returns the string rendering of the tag under key, or "" if the
// span carries no such tag.
func (s *Span) Tag(key string) string {
	return s.Tags.GetString(key)
}

// End returns the end time of the span in microseconds.
func (s *Span) End() int64 {
	return s.StartTime + s.Duration
}

// DurationMs returns the span duration converted to milliseconds.
func (s *Span) DurationMs() float64 {
	return float64(s.Duration) / 1000.0
}
