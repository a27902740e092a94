// Package aggregator folds a set of traces into a service-level
// summary: which services exist, which operations they expose, the
// process metadata attached to them and the cross-service call edges
// observed between them.
package aggregator

import (
	"sort"

	log "github.com/cihub/seelog"

	"github.com/HiImLuxifer/UML-Generator/model"
)

// ServiceSummary is the aggregated, trace-spanning view of services.
// It is built once by Aggregate and read-only afterwards.
type ServiceSummary struct {
	services     map[string]struct{}
	operations   map[string]map[string]struct{}
	dependencies map[string]map[string]struct{}
	metadata     map[string]model.Tags
	// calls maps caller -> callee -> set of operations called.
	calls map[string]map[string]map[string]struct{}
}

// Aggregate analyzes all traces and returns their service summary.
// Resolution failures never error out: spans without a resolvable
// process fall under the "unknown" service, unresolvable parents simply
// produce no dependency edge.
func Aggregate(traces []*model.Trace) *ServiceSummary {
	s := &ServiceSummary{
		services:     make(map[string]struct{}),
		operations:   make(map[string]map[string]struct{}),
		dependencies: make(map[string]map[string]struct{}),
		metadata:     make(map[string]model.Tags),
		calls:        make(map[string]map[string]map[string]struct{}),
	}

	log.Debugf("aggregating %d trace(s)", len(traces))
	for _, trace := range traces {
		s.analyzeTrace(trace)
	}
	log.Debugf("found %d unique service(s)", len(s.services))

	return s
}

func (s *ServiceSummary) analyzeTrace(t *model.Trace) {
	if t == nil || len(t.Spans) == 0 {
		return
	}

	for _, span := range t.Spans {
		service := t.ServiceName(span)

		s.services[service] = struct{}{}

		if s.operations[service] == nil {
			s.operations[service] = make(map[string]struct{})
		}
		s.operations[service][span.OperationName] = struct{}{}

		// Later traces overwrite same-key tags from earlier ones.
		if span.ProcessID != "" {
			if p := t.Process(span.ProcessID); p != nil && len(p.Tags) > 0 {
				if s.metadata[service] == nil {
					s.metadata[service] = make(model.Tags)
				}
				for k, v := range p.Tags {
					s.metadata[service][k] = v
				}
			}
		}

		parentID := span.ParentSpanID()
		if parentID == "" {
			continue
		}
		parent := t.Span(parentID)
		if parent == nil {
			continue
		}
		parentService := t.ServiceName(parent)
		if parentService == service {
			continue
		}

		if s.dependencies[parentService] == nil {
			s.dependencies[parentService] = make(map[string]struct{})
		}
		s.dependencies[parentService][service] = struct{}{}

		if s.calls[parentService] == nil {
			s.calls[parentService] = make(map[string]map[string]struct{})
		}
		if s.calls[parentService][service] == nil {
			s.calls[parentService][service] = make(map[string]struct{})
		}
		s.calls[parentService][service][span.OperationName] = struct{}{}
	}
}

// Services returns all service names, sorted.
func (s *ServiceSummary) Services() []string {
	return sortedKeys(s.services)
}

// HasService reports whether name appeared in any span.
func (s *ServiceSummary) HasService(name string) bool {
	_, ok := s.services[name]
	return ok
}

// Operations returns the sorted operation names recorded for service.
func (s *ServiceSummary) Operations(service string) []string {
	return sortedKeys(s.operations[service])
}

// Metadata returns the merged process tags for service. The returned
// map must not be mutated.
func (s *ServiceSummary) Metadata(service string) model.Tags {
	return s.metadata[service]
}

// Callers returns the sorted services that call at least one other
// service.
func (s *ServiceSummary) Callers() []string {
	callers := make([]string, 0, len(s.calls))
	for caller := range s.calls {
		callers = append(callers, caller)
	}
	sort.Strings(callers)
	return callers
}

// Callees returns the sorted services called by caller.
func (s *ServiceSummary) Callees(caller string) []string {
	return sortedKeys(s.dependencies[caller])
}

// CalledOperations returns the sorted operations by which caller calls
// callee.
func (s *ServiceSummary) CalledOperations(caller, callee string) []string {
	return sortedKeys(s.calls[caller][callee])
}

// ProvidedOperations returns the sorted union of operations by which
// any caller calls service.
func (s *ServiceSummary) ProvidedOperations(service string) []string {
	provided := make(map[string]struct{})
	for _, callees := range s.calls {
		for op := range callees[service] {
			provided[op] = struct{}{}
		}
	}
	return sortedKeys(provided)
}

// IsCalled reports whether any service calls the given one.
func (s *ServiceSummary) IsCalled(service string) bool {
	for _, callees := range s.calls {
		if _, ok := callees[service]; ok {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
