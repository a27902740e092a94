package generator

import (
	"fmt"
	"sort"

	log "github.com/cihub/seelog"

	"github.com/HiImLuxifer/UML-Generator/aggregator"
	"github.com/HiImLuxifer/UML-Generator/model"
	"github.com/HiImLuxifer/UML-Generator/quantizer"
	"github.com/HiImLuxifer/UML-Generator/xmi"
)

// registry is the per-run identity table: one identifier per domain key
// (service, (service, simple operation name), node name). All
// cross-references within a unified document resolve through it, never
// by re-deriving an identifier. It lives for exactly one GenerateXMI
// call.
type registry struct {
	components map[string]string
	// operations maps service -> simple operation name -> id. Raw
	// names colliding on the same simple name share one identifier.
	operations map[string]map[string]string
	artifacts  map[string]string
	nodes      map[string]string

	interactions []interactionRef
	messages     []messageRef
}

type interactionRef struct {
	name string
	id   string
}

type messageRef struct {
	id         string
	durationMs float64
	noSync     bool
}

func newRegistry() *registry {
	return &registry{
		components: make(map[string]string),
		operations: make(map[string]map[string]string),
		artifacts:  make(map[string]string),
		nodes:      make(map[string]string),
	}
}

func (r *registry) setOperation(service, simpleName, id string) {
	if r.operations[service] == nil {
		r.operations[service] = make(map[string]string)
	}
	r.operations[service][simpleName] = id
}

func (r *registry) operation(service, simpleName string) (string, bool) {
	id, ok := r.operations[service][simpleName]
	return id, ok
}

// UnifiedGenerator folds the component, deployment and per-trace
// sequence views into one document sharing a single identity registry,
// then layers MARTE performance-profile stereotypes over the finished
// structural tree.
type UnifiedGenerator struct {
	writer       *xmi.Writer
	includeMarte bool
}

// NewUnifiedGenerator returns a unified generator for the given
// namespace profile. When includeMarte is set, the generated document
// carries the MARTE annotation pass.
func NewUnifiedGenerator(format xmi.Format, includeMarte bool) (*UnifiedGenerator, error) {
	w, err := xmi.NewWriter(format)
	if err != nil {
		return nil, err
	}
	return &UnifiedGenerator{writer: w, includeMarte: includeMarte}, nil
}

// DiagramType implements Generator.
func (g *UnifiedGenerator) DiagramType() string { return "unified" }

// GenerateXMI implements Generator. The build is an ordered two-phase
// pipeline: the structural pass materializes every element and fills
// the registry, the annotation pass may only reference identifiers the
// structural pass created.
func (g *UnifiedGenerator) GenerateXMI(traces []*model.Trace) (string, error) {
	return g.Generate(traces, "UnifiedModel")
}

// Generate is GenerateXMI with an explicit model name.
func (g *UnifiedGenerator) Generate(traces []*model.Trace, name string) (string, error) {
	if len(traces) == 0 {
		log.Warn("no traces provided for unified model generation")
		return "", nil
	}

	summary := aggregator.Aggregate(traces)
	doc := g.writer.NewDocument(name)
	reg := newRegistry()

	var profile *xmi.ProfileWriter
	if g.includeMarte {
		profile = xmi.NewProfileWriter(doc)
		profile.AddProfileApplication(doc.Model)
	}

	if err := g.buildComponents(doc, summary, reg); err != nil {
		return "", err
	}
	if err := g.buildDeployment(doc, summary, reg); err != nil {
		return "", err
	}
	if err := g.buildSequences(doc, traces, reg); err != nil {
		return "", err
	}

	if profile != nil {
		if err := g.applyStereotypes(profile, summary, reg); err != nil {
			return "", err
		}
		log.Debugf("applied MARTE stereotypes: %d GaAnalysisContext, %d PaStep, %d GaExecHost, %d RtUnit",
			len(reg.interactions), len(reg.messages), len(reg.nodes), len(reg.components))
	}

	log.Debugf("generated unified model with %d component(s)", len(reg.components))
	return doc.Render(), nil
}

func (g *UnifiedGenerator) buildComponents(doc *xmi.Document, summary *aggregator.ServiceSummary, reg *registry) error {
	componentsPkg, _ := doc.CreatePackage(doc.Model, "Components")

	for _, service := range summary.Services() {
		component, componentID := doc.CreatePackagedElement(componentsPkg, "Component", service,
			xmi.Attr{Key: "visibility", Value: "public"})
		reg.components[service] = componentID

		addComponentOperations(doc, component, summary.Operations(service), reg, service)
	}

	depsPkg, _ := doc.CreatePackage(doc.Model, "Dependencies")
	created := make(map[string]struct{})
	for _, caller := range summary.Callers() {
		for _, callee := range summary.Callees(caller) {
			key := caller + "_to_" + callee
			if _, ok := created[key]; ok {
				continue
			}
			if _, _, err := doc.CreateUsage(depsPkg, key, reg.components[caller], reg.components[callee]); err != nil {
				return err
			}
			created[key] = struct{}{}
		}
	}
	return nil
}

func (g *UnifiedGenerator) buildDeployment(doc *xmi.Document, summary *aggregator.ServiceSummary, reg *registry) error {
	deploymentPkg, _ := doc.CreatePackage(doc.Model, "Deployment")

	nodeServices := groupServicesByNode(summary)
	nodeNames := make([]string, 0, len(nodeServices))
	for node := range nodeServices {
		nodeNames = append(nodeNames, node)
	}
	sort.Strings(nodeNames)

	for _, nodeName := range nodeNames {
		_, nodeID := doc.CreatePackagedElement(deploymentPkg, "Node", nodeName)
		reg.nodes[nodeName] = nodeID
	}

	for _, nodeName := range nodeNames {
		nodeID := reg.nodes[nodeName]
		for _, service := range nodeServices[nodeName] {
			artifact, artifactID := doc.CreatePackagedElement(deploymentPkg, "Artifact", service+"_artifact")
			reg.artifacts[service] = artifactID

			componentID, ok := reg.components[service]
			if !ok {
				return fmt.Errorf("generator: no component registered for service %q", service)
			}
			if err := doc.RequireID("manifestation of "+service, componentID); err != nil {
				return err
			}
			manifestation, _ := doc.CreateOwnedElement(artifact, "manifestation",
				xmi.Attr{Key: "name", Value: "manifest_" + service},
				xmi.Attr{Key: "supplier", Value: componentID},
				xmi.Attr{Key: "client", Value: artifactID},
			)
			manifestation.SetAttr("xmi:type", "uml:Manifestation")

			doc.CreatePackagedElement(deploymentPkg, "Deployment", "deploy_"+service,
				xmi.Attr{Key: "location", Value: nodeID},
				xmi.Attr{Key: "deployedArtifact", Value: artifactID},
			)
		}
	}
	return nil
}

func (g *UnifiedGenerator) buildSequences(doc *xmi.Document, traces []*model.Trace, reg *registry) error {
	useCasesPkg, _ := doc.CreatePackage(doc.Model, "UseCases")

	for i, trace := range traces {
		traceName := trace.SourceName
		if traceName == "" {
			traceName = fmt.Sprintf("Trace_%d", i+1)
		}

		useCase, _ := doc.CreatePackagedElement(useCasesPkg, "UseCase", traceName)

		interaction, interactionID := doc.CreateOwnedElement(useCase, "ownedBehavior",
			xmi.Attr{Key: "name", Value: traceName + "_Interaction"},
		)
		interaction.SetAttr("xmi:type", "uml:Interaction")
		reg.interactions = append(reg.interactions, interactionRef{name: traceName, id: interactionID})

		// Lifelines deliberately carry no `represents` reference:
		// pointing them at components in another package breaks
		// Papyrus imports. The lifeline name identifies the component.
		lifelineIDs := make(map[string]string)
		for _, service := range trace.ServiceNames() {
			_, lifelineID := doc.CreateOwnedElement(interaction, "lifeline",
				xmi.Attr{Key: "name", Value: service},
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

			sendEvent, sendID := doc.CreateOwnedElement(interaction, "fragment",
				xmi.Attr{Key: "name", Value: fmt.Sprintf("msg%d_send", messages)},
				xmi.Attr{Key: "covered", Value: from},
			)
			sendEvent.SetAttr("xmi:type", "uml:MessageOccurrenceSpecification")

			recvEvent, recvID := doc.CreateOwnedElement(interaction, "fragment",
				xmi.Attr{Key: "name", Value: fmt.Sprintf("msg%d_recv", messages)},
				xmi.Attr{Key: "covered", Value: to},
			)
			recvEvent.SetAttr("xmi:type", "uml:MessageOccurrenceSpecification")

			cleanOp := quantizer.CleanOperationName(span.OperationName)
			message, messageID := doc.CreateOwnedElement(interaction, "message",
				xmi.Attr{Key: "name", Value: cleanOp},
				xmi.Attr{Key: "messageSort", Value: "synchCall"},
				xmi.Attr{Key: "sendEvent", Value: sendID},
				xmi.Attr{Key: "receiveEvent", Value: recvID},
			)

			// Cross-reference the callee's operation when its simple
			// name resolves in the registry.
			if opID, ok := reg.operation(service, quantizer.SimpleOperationName(span.OperationName)); ok {
				if err := doc.RequireID("message signature", opID); err != nil {
					return err
				}
				message.SetAttr("signature", opID)
			}

			reg.messages = append(reg.messages, messageRef{
				id:         messageID,
				durationMs: span.DurationMs(),
				noSync:     span.Tag("span.kind") == "producer",
			})
			messages++
		}
	}

	log.Debugf("generated %d sequence(s) inside use cases", len(traces))
	return nil
}

// applyStereotypes runs the annotation pass. It must only run once the
// structural tree is complete; every referenced identifier already
// exists in the registry by construction, and the profile writer
// verifies that before emitting.
func (g *UnifiedGenerator) applyStereotypes(profile *xmi.ProfileWriter, summary *aggregator.ServiceSummary, reg *registry) error {
	for _, service := range summary.Services() {
		if _, err := profile.ApplyRtUnit(reg.components[service], true); err != nil {
			return err
		}
	}

	nodeNames := make([]string, 0, len(reg.nodes))
	for node := range reg.nodes {
		nodeNames = append(nodeNames, node)
	}
	sort.Strings(nodeNames)
	for _, node := range nodeNames {
		if _, err := profile.ApplyExecHost(reg.nodes[node], 1.0); err != nil {
			return err
		}
	}

	for _, interaction := range reg.interactions {
		if _, err := profile.ApplyAnalysisContext(interaction.id, true); err != nil {
			return err
		}
	}

	for _, message := range reg.messages {
		if _, err := profile.ApplyStep(message.id, message.durationMs, 1.0, message.noSync); err != nil {
			return err
		}
	}
	return nil
}
