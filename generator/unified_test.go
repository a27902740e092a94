package generator

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HiImLuxifer/UML-Generator/model"
	"github.com/HiImLuxifer/UML-Generator/testutil"
	"github.com/HiImLuxifer/UML-Generator/xmi"
)

func unifiedFixture() []*model.Trace {
	return []*model.Trace{
		testutil.TwoServiceTrace(),
		testutil.HipstershopTrace(),
	}
}

func TestUnifiedGeneratorStructure(t *testing.T) {
	assert := assert.New(t)

	gen, err := NewUnifiedGenerator(xmi.Papyrus, true)
	assert.NoError(err)
	assert.Equal("unified", gen.DiagramType())

	out, err := gen.GenerateXMI(unifiedFixture())
	assert.NoError(err)

	for _, pkg := range []string{"Components", "Dependencies", "Deployment", "UseCases"} {
		assert.Contains(out, `name="`+pkg+`"`, "missing package %s", pkg)
	}

	// One use case per trace, named after its source.
	assert.Contains(out, `xmi:type="uml:UseCase" `)
	assert.Contains(out, `name="checkout"`)
	assert.Contains(out, `name="place-order"`)
	assert.Contains(out, `name="checkout_Interaction"`)

	// Artifacts manifest their components and are deployed on nodes.
	assert.Contains(out, `name="cartservice_artifact"`)
	assert.Contains(out, `name="manifest_cartservice"`)
	assert.Contains(out, `name="deploy_cartservice"`)
	assert.Contains(out, `xmi:type="uml:Manifestation"`)

	// Messages reference the callee operation by identity.
	assert.Contains(out, `signature="`)

	// Lifelines never point into the component packages.
	assert.NotContains(out, `represents="`)
}

func TestUnifiedGeneratorMarteAnnotations(t *testing.T) {
	assert := assert.New(t)

	gen, _ := NewUnifiedGenerator(xmi.Papyrus, true)
	out, err := gen.GenerateXMI(unifiedFixture())
	assert.NoError(err)

	// One RtUnit per component, one ExecHost per node, one
	// AnalysisContext per interaction, one PaStep per message.
	assert.Equal(3, strings.Count(out, "<MARTE_GRM:RtUnit "))
	assert.Equal(3, strings.Count(out, "<MARTE_GRM:GaExecHost "))
	assert.Equal(2, strings.Count(out, "<MARTE_GQAM:GaAnalysisContext "))
	assert.Equal(3, strings.Count(out, "<MARTE_PAM:PaStep "))

	// The producer hop is the only asynchronous step.
	assert.Equal(1, strings.Count(out, `noSync="true"`))
	// 1500µs hop from the checkout fixture.
	assert.Contains(out, `hostDemand="(value=1.500,unit=ms)"`)
	assert.Contains(out, "pathmap://MARTE_PROFILE/MARTE.profile.uml")
}

func TestUnifiedGeneratorWithoutMarte(t *testing.T) {
	assert := assert.New(t)

	gen, _ := NewUnifiedGenerator(xmi.Papyrus, false)
	out, err := gen.GenerateXMI(unifiedFixture())
	assert.NoError(err)

	assert.NotContains(out, "MARTE")
	assert.Contains(out, `name="Components"`)
}

var (
	idRe  = regexp.MustCompile(`xmi:id="([^"]+)"`)
	refRe = regexp.MustCompile(` (?:xmi:idref|client|supplier|location|deployedArtifact|covered|sendEvent|receiveEvent|signature|base_NamedElement|base_Classifier|base_BehavioredClassifier)="([^"]+)"`)
)

// Every emitted reference must resolve to an id defined in the same
// document.
func TestUnifiedGeneratorNoDanglingReferences(t *testing.T) {
	assert := assert.New(t)

	gen, _ := NewUnifiedGenerator(xmi.Papyrus, true)
	out, err := gen.GenerateXMI(unifiedFixture())
	assert.NoError(err)

	ids := make(map[string]struct{})
	for _, m := range idRe.FindAllStringSubmatch(out, -1) {
		ids[m[1]] = struct{}{}
	}
	assert.NotEmpty(ids)

	refs := refRe.FindAllStringSubmatch(out, -1)
	assert.NotEmpty(refs)
	for _, m := range refs {
		_, ok := ids[m[1]]
		assert.True(ok, "dangling reference to %q", m[1])
	}
}

func TestUnifiedGeneratorEmpty(t *testing.T) {
	assert := assert.New(t)

	gen, _ := NewUnifiedGenerator(xmi.Papyrus, true)
	out, err := gen.GenerateXMI(nil)
	assert.NoError(err)
	assert.Equal("", out)
}
