package generator

import (
	"fmt"

	log "github.com/cihub/seelog"

	"github.com/HiImLuxifer/UML-Generator/aggregator"
	"github.com/HiImLuxifer/UML-Generator/model"
	"github.com/HiImLuxifer/UML-Generator/xmi"
)

// maxComponentOperations caps how many operations a component displays
// in the plain and unified views. Truncation is presentation-only; the
// omitted count is recorded in a comment.
const maxComponentOperations = 20

// ComponentGenerator produces the plain component view: one component
// per service with its operations, plus one deduplicated usage
// dependency per distinct caller/callee pair. No interfaces are
// synthesized.
type ComponentGenerator struct {
	writer *xmi.Writer
}

// NewComponentGenerator returns a plain component generator for the
// given namespace profile.
func NewComponentGenerator(format xmi.Format) (*ComponentGenerator, error) {
	w, err := xmi.NewWriter(format)
	if err != nil {
		return nil, err
	}
	return &ComponentGenerator{writer: w}, nil
}

// DiagramType implements Generator.
func (g *ComponentGenerator) DiagramType() string { return "component" }

// GenerateXMI implements Generator.
func (g *ComponentGenerator) GenerateXMI(traces []*model.Trace) (string, error) {
	if len(traces) == 0 {
		log.Warn("no traces provided for component diagram generation")
		return "", nil
	}

	summary := aggregator.Aggregate(traces)
	doc := g.writer.NewDocument(modelName(traces, "Component", "ComponentDiagram"))

	componentsPkg, _ := doc.CreatePackage(doc.Model, "Components")

	componentIDs := make(map[string]string)
	for _, service := range summary.Services() {
		component, componentID := doc.CreatePackagedElement(componentsPkg, "Component", service,
			xmi.Attr{Key: "visibility", Value: "public"})
		componentIDs[service] = componentID

		addComponentOperations(doc, component, summary.Operations(service), nil, "")
	}

	depsPkg, _ := doc.CreatePackage(doc.Model, "Dependencies")
	created := make(map[string]struct{})
	for _, caller := range summary.Callers() {
		for _, callee := range summary.Callees(caller) {
			key := caller + "_to_" + callee
			if _, ok := created[key]; ok {
				continue
			}
			if _, _, err := doc.CreateUsage(depsPkg, key, componentIDs[caller], componentIDs[callee]); err != nil {
				return "", err
			}
			created[key] = struct{}{}
		}
	}

	log.Debugf("generated component diagram with %d component(s)", len(componentIDs))
	return doc.Render(), nil
}

// addComponentOperations attaches up to maxComponentOperations owned
// operations (distinct simple names) to component. When reg is non-nil
// each operation id is recorded under (service, simple name); raw names
// reducing to the same simple name share one identifier.
func addComponentOperations(doc *xmi.Document, component *xmi.Element, rawOps []string, reg *registry, service string) {
	simpleOps := simpleOperationNames(rawOps)

	shown := simpleOps
	if len(shown) > maxComponentOperations {
		shown = shown[:maxComponentOperations]
	}
	for _, op := range shown {
		opElem, opID := doc.CreateOwnedElement(component, "ownedOperation",
			xmi.Attr{Key: "name", Value: op},
			xmi.Attr{Key: "visibility", Value: "public"},
		)
		opElem.SetAttr("xmi:type", "uml:Operation")
		if reg != nil {
			reg.setOperation(service, op, opID)
		}
	}
	if omitted := len(simpleOps) - len(shown); omitted > 0 {
		doc.AddComment(component, fmt.Sprintf("+%d more operations", omitted))
	}
}
