// Package input acquires traces from the supported sources: Jaeger
// JSON exports on disk and the Jaeger query API. It decodes the wire
// shapes into the model types the rest of the system consumes.
package input

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/HiImLuxifer/UML-Generator/model"
)

// TraceReader is the capability contract for trace acquisition: one
// operation, produce a trace list. Concrete readers are selected by
// configuration.
type TraceReader interface {
	ReadTraces() ([]*model.Trace, error)
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Wire shapes of the Jaeger query API / UI export format.

type jsonTag struct {
	Key   string      `json:"key"`
	Type  string      `json:"type"`
	Value interface{} `json:"value"`
}

type jsonReference struct {
	RefType string `json:"refType"`
	TraceID string `json:"traceID"`
	SpanID  string `json:"spanID"`
}

type jsonSpan struct {
	TraceID       string          `json:"traceID"`
	SpanID        string          `json:"spanID"`
	OperationName string          `json:"operationName"`
	StartTime     int64           `json:"startTime"`
	Duration      int64           `json:"duration"`
	ProcessID     string          `json:"processID"`
	References    []jsonReference `json:"references"`
	Tags          []jsonTag       `json:"tags"`
}

type jsonProcess struct {
	ServiceName string    `json:"serviceName"`
	Tags        []jsonTag `json:"tags"`
}

type jsonTrace struct {
	TraceID   string                 `json:"traceID"`
	Spans     []jsonSpan             `json:"spans"`
	Processes map[string]jsonProcess `json:"processes"`
}

type jsonEnvelope struct {
	Data []jsonTrace `json:"data"`
}

func convertTrace(jt jsonTrace) *model.Trace {
	t := &model.Trace{
		TraceID:   jt.TraceID,
		Processes: make(map[string]*model.Process, len(jt.Processes)),
	}
	for _, js := range jt.Spans {
		t.Spans = append(t.Spans, convertSpan(js))
	}
	for id, jp := range jt.Processes {
		name := jp.ServiceName
		if name == "" {
			name = model.UnknownService
		}
		t.Processes[id] = &model.Process{
			ServiceName: name,
			Tags:        convertTags(jp.Tags),
		}
	}
	return t
}

func convertSpan(js jsonSpan) *model.Span {
	s := &model.Span{
		TraceID:       js.TraceID,
		SpanID:        js.SpanID,
		OperationName: js.OperationName,
		StartTime:     js.StartTime,
		Duration:      js.Duration,
		ProcessID:     js.ProcessID,
		Tags:          convertTags(js.Tags),
	}
	for _, jr := range js.References {
		s.References = append(s.References, model.Reference{
			RefType: jr.RefType,
			TraceID: jr.TraceID,
			SpanID:  jr.SpanID,
		})
	}
	return s
}

// convertTags narrows the heterogeneous wire values into the tagged
// variant, guided by the declared tag type. Unknown types and mismatched
// values degrade to their string rendering.
func convertTags(tags []jsonTag) model.Tags {
	if len(tags) == 0 {
		return nil
	}
	out := make(model.Tags, len(tags))
	for _, tag := range tags {
		if tag.Key == "" {
			continue
		}
		out[tag.Key] = convertTagValue(tag)
	}
	return out
}

func convertTagValue(tag jsonTag) model.TagValue {
	switch tag.Type {
	case "bool":
		if b, ok := tag.Value.(bool); ok {
			return model.BoolTag(b)
		}
	case "int64":
		// jsoniter decodes JSON numbers into float64 through the
		// interface{} path.
		if f, ok := tag.Value.(float64); ok {
			return model.IntTag(int64(f))
		}
	case "float64":
		if f, ok := tag.Value.(float64); ok {
			return model.FloatTag(f)
		}
	}
	if s, ok := tag.Value.(string); ok {
		return model.StringTag(s)
	}
	if tag.Value == nil {
		return model.StringTag("")
	}
	return model.StringTag(jsonString(tag.Value))
}

func jsonString(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// parseTraces decodes raw JSON holding either the Jaeger API envelope
// ({"data": [...]}), a bare array of traces or a single trace object.
func parseTraces(raw []byte) ([]*model.Trace, error) {
	var envelope jsonEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Data) > 0 {
		return convertAll(envelope.Data), nil
	}

	var list []jsonTrace
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return convertAll(list), nil
	}

	var single jsonTrace
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, err
	}
	if single.TraceID == "" {
		return nil, nil
	}
	return convertAll([]jsonTrace{single}), nil
}

func convertAll(jts []jsonTrace) []*model.Trace {
	traces := make([]*model.Trace, 0, len(jts))
	for _, jt := range jts {
		traces = append(traces, convertTrace(jt))
	}
	return traces
}
