package xmi

import "fmt"

// MARTE profile namespaces (OMG formal/19-04-01, version 1.2). GQAM is
// generic quantitative analysis, PAM performance analysis, GRM generic
// resource modeling.
const (
	MARTENamespace = "http://www.omg.org/spec/MARTE/1.2"
	GQAMNamespace  = MARTENamespace + "/GQAM"
	PAMNamespace   = MARTENamespace + "/PAM"
	GRMNamespace   = MARTENamespace + "/GRM"

	marteProfileHref = "pathmap://MARTE_PROFILE/MARTE.profile.uml#_ar8OsAPMEdyuUvV5MHMtrQ"
)

// ProfileWriter appends MARTE stereotype applications to a document.
// Stereotypes are flat records at the document root referencing
// structural elements by id; they may only be created after the
// referenced element exists.
type ProfileWriter struct {
	doc *Document
}

// NewProfileWriter returns a ProfileWriter for doc and declares the
// MARTE namespaces on its root.
func NewProfileWriter(doc *Document) *ProfileWriter {
	doc.Root.SetAttr("xmlns:MARTE_GQAM", GQAMNamespace)
	doc.Root.SetAttr("xmlns:MARTE_PAM", PAMNamespace)
	doc.Root.SetAttr("xmlns:MARTE_GRM", GRMNamespace)
	return &ProfileWriter{doc: doc}
}

// AddProfileApplication attaches the MARTE profileApplication to the
// model element, enabling stereotype usage in Papyrus.
func (p *ProfileWriter) AddProfileApplication(model *Element) *Element {
	app := &Element{Tag: "profileApplication"}
	app.SetAttr("xmi:type", "uml:ProfileApplication")
	app.SetAttr("xmi:id", p.newID())
	model.Append(app)

	applied := &Element{Tag: "appliedProfile"}
	applied.SetAttr("xmi:type", "uml:Profile")
	applied.SetAttr("href", marteProfileHref)
	app.Append(applied)

	return app
}

func (p *ProfileWriter) newID() string {
	id := "_marte_" + NewID()
	p.doc.RegisterID(id)
	return id
}

func (p *ProfileWriter) apply(tag, baseAttr, baseID string) (*Element, error) {
	if err := p.doc.RequireID(tag, baseID); err != nil {
		return nil, err
	}
	stereotype := &Element{Tag: tag}
	stereotype.SetAttr("xmi:id", p.newID())
	stereotype.SetAttr(baseAttr, baseID)
	p.doc.Root.Append(stereotype)
	return stereotype, nil
}

// ApplyAnalysisContext applies <<GaAnalysisContext>> to an Interaction.
func (p *ProfileWriter) ApplyAnalysisContext(interactionID string, singleMode bool) (*Element, error) {
	stereotype, err := p.apply("MARTE_GQAM:GaAnalysisContext", "base_NamedElement", interactionID)
	if err != nil {
		return nil, err
	}
	stereotype.SetAttr("isSingleMode", fmt.Sprintf("%t", singleMode))
	return stereotype, nil
}

// ApplyStep applies <<PaStep>> to a Message. hostDemand carries the
// execution time as a VSL (value,unit) expression; prob is emitted only
// when it differs from 1.0 and noSync only when true.
func (p *ProfileWriter) ApplyStep(messageID string, hostDemandMs, prob float64, noSync bool) (*Element, error) {
	stereotype, err := p.apply("MARTE_PAM:PaStep", "base_NamedElement", messageID)
	if err != nil {
		return nil, err
	}
	stereotype.SetAttr("hostDemand", fmt.Sprintf("(value=%.3f,unit=ms)", hostDemandMs))
	if prob != 1.0 {
		stereotype.SetAttr("prob", fmt.Sprintf("%.4f", prob))
	}
	if noSync {
		stereotype.SetAttr("noSync", "true")
	}
	return stereotype, nil
}

// ApplyExecHost applies <<GaExecHost>> to a Node. speedFactor is
// emitted only when it differs from 1.0.
func (p *ProfileWriter) ApplyExecHost(nodeID string, speedFactor float64) (*Element, error) {
	stereotype, err := p.apply("MARTE_GRM:GaExecHost", "base_Classifier", nodeID)
	if err != nil {
		return nil, err
	}
	if speedFactor != 1.0 {
		stereotype.SetAttr("speedFactor", fmt.Sprintf("%.2f", speedFactor))
	}
	return stereotype, nil
}

// ApplyRtUnit applies <<RtUnit>> to a Component. The active flag is
// always emitted.
func (p *ProfileWriter) ApplyRtUnit(componentID string, isActive bool) (*Element, error) {
	stereotype, err := p.apply("MARTE_GRM:RtUnit", "base_BehavioredClassifier", componentID)
	if err != nil {
		return nil, err
	}
	stereotype.SetAttr("isActive", fmt.Sprintf("%t", isActive))
	return stereotype, nil
}
