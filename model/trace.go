package model

import "sort"

// UnknownService is assigned to spans whose owning process cannot be
// resolved.
const UnknownService = "unknown"

// Trace is one end-to-end distributed execution: a list of spans plus
// the processes that produced them, keyed by process id. SourceName
// carries an optional label (typically the input file base name) used
// to name generated documents.
type Trace struct {
	TraceID    string
	Spans      []*Span
	Processes  map[string]*Process
	SourceName string
}

// Process returns the process registered under id, or nil.
func (t *Trace) Process(id string) *Process {
	return t.Processes[id]
}

// ServiceName resolves the service owning the given span. Spans with a
// missing process id, or a process id absent from the trace's process
// map, resolve to UnknownService.
func (t *Trace) ServiceName(s *Span) string {
	if s == nil || s.ProcessID == "" {
		return UnknownService
	}
	p := t.Processes[s.ProcessID]
	if p == nil {
		return UnknownService
	}
	return p.ServiceName
}

// Span returns the first span in the trace whose id matches, or nil.
func (t *Trace) Span(id string) *Span {
	for _, s := range t.Spans {
		if s.SpanID == id {
			return s
		}
	}
	return nil
}

// RootSpans returns the spans with no CHILD_OF parent.
func (t *Trace) RootSpans() []*Span {
	var roots []*Span
	for _, s := range t.Spans {
		if s.IsRoot() {
			roots = append(roots, s)
		}
	}
	return roots
}

// ChildSpans returns the spans whose resolved parent is parentID.
func (t *Trace) ChildSpans(parentID string) []*Span {
	var children []*Span
	for _, s := range t.Spans {
		if s.ParentSpanID() == parentID {
			children = append(children, s)
		}
	}
	return children
}

// ServiceNames returns the sorted unique service names owning spans in
// this trace.
func (t *Trace) ServiceNames() []string {
	seen := make(map[string]struct{})
	for _, s := range t.Spans {
		seen[t.ServiceName(s)] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SpansByStartTime returns the spans ordered by ascending start time.
// The sort is stable so spans sharing a start time keep input order.
func (t *Trace) SpansByStartTime() []*Span {
	sorted := make([]*Span, len(t.Spans))
	copy(sorted, t.Spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime < sorted[j].StartTime
	})
	return sorted
}
