package generator

import (
	"fmt"

	log "github.com/cihub/seelog"

	"github.com/HiImLuxifer/UML-Generator/model"
	"github.com/HiImLuxifer/UML-Generator/quantizer"
	"github.com/HiImLuxifer/UML-Generator/xmi"
)

// SequenceGenerator produces a sequence view for a single trace: a
// lifeline per participating service and a message per cross-service
// call, in start-time order.
type SequenceGenerator struct {
	writer *xmi.Writer
}

// NewSequenceGenerator returns a sequence generator for the given
// namespace profile.
func NewSequenceGenerator(format xmi.Format) (*SequenceGenerator, error) {
	w, err := xmi.NewWriter(format)
	if err != nil {
		return nil, err
	}
	return &SequenceGenerator{writer: w}, nil
}

// DiagramType implements Generator.
func (g *SequenceGenerator) DiagramType() string { return "sequence" }

// GenerateXMI implements Generator. Sequence diagrams are per-trace;
// only the first trace is rendered.
func (g *SequenceGenerator) GenerateXMI(traces []*model.Trace) (string, error) {
	if len(traces) == 0 {
		log.Warn("no traces provided for sequence diagram generation")
		return "", nil
	}
	return g.GenerateXMIForTrace(traces[0])
}

// GenerateXMIForTrace produces the sequence document for one trace.
func (g *SequenceGenerator) GenerateXMIForTrace(trace *model.Trace) (string, error) {
	if trace == nil {
		log.Warn("nil trace provided for sequence diagram generation")
		return "", nil
	}

	name := "SequenceDiagram"
	if trace.SourceName != "" {
		name = trace.SourceName + "_Sequence"
	}
	doc := g.writer.NewDocument(name)

	services := trace.ServiceNames()

	// A class per service types the lifelines.
	classIDs := make(map[string]string)
	for _, service := range services {
		_, classID := doc.CreatePackagedElement(doc.Model, "Class", service)
		classIDs[service] = classID
	}

	collaboration, _ := doc.CreatePackagedElement(doc.Model, "Collaboration", name+"_Collaboration")
	propertyIDs := make(map[string]string)
	for _, service := range services {
		_, propID := doc.CreateOwnedElement(collaboration, "ownedAttribute",
			xmi.Attr{Key: "name", Value: service},
			xmi.Attr{Key: "type", Value: classIDs[service]},
		)
		propertyIDs[service] = propID
	}

	interaction, _ := doc.CreatePackagedElement(doc.Model, "Interaction", name+"_Interaction")

	lifelineIDs := make(map[string]string)
	for _, service := range services {
		_, lifelineID := doc.CreateOwnedElement(interaction, "lifeline",
			xmi.Attr{Key: "name", Value: service},
			xmi.Attr{Key: "represents", Value: propertyIDs[service]},
		)
		lifelineIDs[service] = lifelineID
	}

	messages := 0
	for _, span := range trace.SpansByStartTime() {
		service := trace.ServiceName(span)
		parentID := span.ParentSpanID()
		if parentID == "" {
			continue
		}
		parent := trace.Span(parentID)
		if parent == nil {
			continue
		}
		parentService := trace.ServiceName(parent)
		if parentService == service {
			continue
		}

		from, to := lifelineIDs[parentService], lifelineIDs[service]
		g.createMessage(doc, interaction, fmt.Sprintf("msg%d", messages),
			quantizer.CleanOperationName(span.OperationName), from, to, span.Duration)
		messages++
	}

	log.Debugf("generated sequence diagram for trace %s with %d participant(s) and %d message(s)",
		trace.TraceID, len(services), messages)
	return doc.Render(), nil
}

// createMessage emits a synchCall message with its send and receive
// occurrence fragments, plus a duration comment when available.
func (g *SequenceGenerator) createMessage(doc *xmi.Document, interaction *xmi.Element, msgName, operation, fromLifeline, toLifeline string, durationUs int64) {
	sendEvent, sendID := doc.CreateOwnedElement(interaction, "fragment",
		xmi.Attr{Key: "name", Value: msgName + "_send"},
		xmi.Attr{Key: "covered", Value: fromLifeline},
	)
	sendEvent.SetAttr("xmi:type", "uml:MessageOccurrenceSpecification")

	recvEvent, recvID := doc.CreateOwnedElement(interaction, "fragment",
		xmi.Attr{Key: "name", Value: msgName + "_receive"},
		xmi.Attr{Key: "covered", Value: toLifeline},
	)
	recvEvent.SetAttr("xmi:type", "uml:MessageOccurrenceSpecification")

	message, _ := doc.CreateOwnedElement(interaction, "message",
		xmi.Attr{Key: "name", Value: operation},
		xmi.Attr{Key: "messageSort", Value: "synchCall"},
		xmi.Attr{Key: "sendEvent", Value: sendID},
		xmi.Attr{Key: "receiveEvent", Value: recvID},
	)
	if durationUs > 0 {
		doc.AddComment(message, fmt.Sprintf("Duration: %dμs", durationUs))
	}
}
