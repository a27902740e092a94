package generator

import (
	"sort"

	log "github.com/cihub/seelog"

	"github.com/HiImLuxifer/UML-Generator/aggregator"
	"github.com/HiImLuxifer/UML-Generator/model"
	"github.com/HiImLuxifer/UML-Generator/xmi"
)

// DeploymentGenerator produces the deployment view: one node per
// distinct resolved host, artifacts for the services deployed on it and
// communication paths between nodes whose services call each other.
type DeploymentGenerator struct {
	writer *xmi.Writer
}

// NewDeploymentGenerator returns a deployment generator for the given
// namespace profile.
func NewDeploymentGenerator(format xmi.Format) (*DeploymentGenerator, error) {
	w, err := xmi.NewWriter(format)
	if err != nil {
		return nil, err
	}
	return &DeploymentGenerator{writer: w}, nil
}

// DiagramType implements Generator.
func (g *DeploymentGenerator) DiagramType() string { return "deployment" }

// GenerateXMI implements Generator.
func (g *DeploymentGenerator) GenerateXMI(traces []*model.Trace) (string, error) {
	if len(traces) == 0 {
		log.Warn("no traces provided for deployment diagram generation")
		return "", nil
	}

	summary := aggregator.Aggregate(traces)
	doc := g.writer.NewDocument(modelName(traces, "Deployment", "DeploymentDiagram"))

	nodeServices := groupServicesByNode(summary)
	nodeNames := make([]string, 0, len(nodeServices))
	for node := range nodeServices {
		nodeNames = append(nodeNames, node)
	}
	sort.Strings(nodeNames)

	nodeIDs := make(map[string]string)
	serviceNode := make(map[string]string)

	for _, nodeName := range nodeNames {
		_, nodeID := doc.CreatePackagedElement(doc.Model, "Node", nodeName)
		nodeIDs[nodeName] = nodeID

		for _, service := range nodeServices[nodeName] {
			serviceNode[service] = nodeName

			_, artifactID := doc.CreatePackagedElement(doc.Model, "Artifact", service)
			doc.CreatePackagedElement(doc.Model, "Deployment", nodeName+"_deploys_"+service,
				xmi.Attr{Key: "location", Value: nodeID},
				xmi.Attr{Key: "deployedArtifact", Value: artifactID},
			)
		}
	}

	// Bidirectional path per node pair, created once.
	createdPaths := make(map[string]struct{})
	for _, caller := range summary.Callers() {
		fromNode := serviceNode[caller]
		for _, callee := range summary.Callees(caller) {
			toNode := serviceNode[callee]
			if fromNode == "" || toNode == "" || fromNode == toNode {
				continue
			}
			key := fromNode + "_to_" + toNode
			reverse := toNode + "_to_" + fromNode
			if _, ok := createdPaths[key]; ok {
				continue
			}
			if _, ok := createdPaths[reverse]; ok {
				continue
			}

			path, _ := doc.CreatePackagedElement(doc.Model, "CommunicationPath", key)
			doc.CreateOwnedElement(path, "ownedEnd", xmi.Attr{Key: "type", Value: nodeIDs[fromNode]})
			doc.CreateOwnedElement(path, "ownedEnd", xmi.Attr{Key: "type", Value: nodeIDs[toNode]})
			createdPaths[key] = struct{}{}
		}
	}

	log.Debugf("generated deployment diagram with %d node(s)", len(nodeNames))
	return doc.Render(), nil
}

// groupServicesByNode resolves each service's node name from its merged
// metadata and returns node -> sorted services.
func groupServicesByNode(summary *aggregator.ServiceSummary) map[string][]string {
	nodeServices := make(map[string][]string)
	for _, service := range summary.Services() {
		node := nodeNameFor(summary.Metadata(service))
		nodeServices[node] = append(nodeServices[node], service)
	}
	for node := range nodeServices {
		sort.Strings(nodeServices[node])
	}
	return nodeServices
}
