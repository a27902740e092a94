package generator

import (
	"fmt"

	log "github.com/cihub/seelog"

	"github.com/HiImLuxifer/UML-Generator/aggregator"
	"github.com/HiImLuxifer/UML-Generator/model"
	"github.com/HiImLuxifer/UML-Generator/quantizer"
	"github.com/HiImLuxifer/UML-Generator/xmi"
)

// maxInterfaceOperations caps how many operations a synthesized
// interface displays.
const maxInterfaceOperations = 15

// InterfaceComponentGenerator produces the interface-based component
// view: services grouped into category packages, one interface per
// called service with the operations it is called by, usage
// dependencies from callers to interfaces and exactly one interface
// realization per callee.
type InterfaceComponentGenerator struct {
	writer *xmi.Writer
}

// NewInterfaceComponentGenerator returns an interface-based component
// generator for the given namespace profile.
func NewInterfaceComponentGenerator(format xmi.Format) (*InterfaceComponentGenerator, error) {
	w, err := xmi.NewWriter(format)
	if err != nil {
		return nil, err
	}
	return &InterfaceComponentGenerator{writer: w}, nil
}

// DiagramType implements Generator.
func (g *InterfaceComponentGenerator) DiagramType() string { return "interfaces" }

// GenerateXMI implements Generator.
func (g *InterfaceComponentGenerator) GenerateXMI(traces []*model.Trace) (string, error) {
	if len(traces) == 0 {
		log.Warn("no traces provided for component diagram generation")
		return "", nil
	}

	summary := aggregator.Aggregate(traces)
	doc := g.writer.NewDocument(modelName(traces, "Component", "ComponentDiagram"))

	services := summary.Services()
	categorized := categorizeServices(services)

	componentIDs := make(map[string]string)
	for _, category := range categoryOrder {
		categoryServices := categorized[category]
		if len(categoryServices) == 0 {
			continue
		}
		pkg, _ := doc.CreatePackage(doc.Model, category)
		for _, service := range categoryServices {
			component, componentID := doc.CreatePackagedElement(pkg, "Component", service,
				xmi.Attr{Key: "visibility", Value: "public"})
			componentIDs[service] = componentID

			if stereotype := detectServiceStereotype(service, summary.Metadata(service)); stereotype != "" {
				doc.AddComment(component, "«"+stereotype+"»")
			}
		}
	}

	// One interface per service that is ever called, carrying the
	// operations it is called by.
	interfacesPkg, _ := doc.CreatePackage(doc.Model, "Interfaces")
	interfaceIDs := make(map[string]string)
	for _, callee := range services {
		provided := summary.ProvidedOperations(callee)
		if len(provided) == 0 {
			continue
		}

		shown := provided
		if len(shown) > maxInterfaceOperations {
			shown = shown[:maxInterfaceOperations]
		}
		cleanOps := make([]string, len(shown))
		for i, op := range shown {
			cleanOps[i] = quantizer.CleanOperationName(op)
		}

		name := "I" + quantizer.PascalCase(callee)
		iface, interfaceID := doc.CreateInterface(interfacesPkg, name, cleanOps)
		interfaceIDs[callee] = interfaceID

		if omitted := len(provided) - len(shown); omitted > 0 {
			doc.AddComment(iface, fmt.Sprintf("+%d more operations", omitted))
		}
	}

	relationshipsPkg, _ := doc.CreatePackage(doc.Model, "Relationships")

	// Realization dedup is local to this call: one realization per
	// callee no matter how many callers depend on it.
	realized := make(map[string]struct{})
	usages, realizations := 0, 0

	for _, caller := range summary.Callers() {
		for _, callee := range summary.Callees(caller) {
			callerID := componentIDs[caller]
			calleeID := componentIDs[callee]
			interfaceID, hasInterface := interfaceIDs[callee]
			if !hasInterface {
				continue
			}

			if callerID != "" {
				name := caller + "_uses_" + callee
				if _, _, err := doc.CreateUsage(relationshipsPkg, name, callerID, interfaceID); err != nil {
					return "", err
				}
				usages++
			}

			if calleeID != "" {
				if _, ok := realized[callee]; !ok {
					name := callee + "_provides_I" + callee
					if _, _, err := doc.CreateInterfaceRealization(relationshipsPkg, name, calleeID, interfaceID); err != nil {
						return "", err
					}
					realized[callee] = struct{}{}
					realizations++
				}
			}
		}
	}

	log.Debugf("generated component diagram with %d service(s), %d interface(s), %d usage(s), %d realization(s)",
		len(services), len(interfaceIDs), usages, realizations)
	return doc.Render(), nil
}
