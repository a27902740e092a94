package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HiImLuxifer/UML-Generator/model"
	"github.com/HiImLuxifer/UML-Generator/testutil"
	"github.com/HiImLuxifer/UML-Generator/xmi"
)

func TestNodeNameFor(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		meta     model.Tags
		expected string
	}{
		{nil, "Node-Unknown"},
		{model.Tags{}, "Node-Unknown"},
		{model.Tags{"pod.name": model.StringTag("cartservice-7d5c8f9b8-xk7pt")}, "cartservice"},
		{model.Tags{"k8s.pod.name": model.StringTag("adservice-6f498fc6c6-p2vzq")}, "adservice"},
		{model.Tags{"container.name": model.StringTag("frontend-5f8b9c7d6")}, "frontend"},
		{model.Tags{"container.id": model.StringTag("0123456789abcdef0123")}, "Container-0123456789ab"},
		{model.Tags{"hostname": model.StringTag("node-1")}, "node-1"},
		{model.Tags{"instance.id": model.StringTag("i-1234")}, "i-1234"},
		{model.Tags{"host.ip": model.StringTag("10.0.0.4")}, "Host-10.0.0.4"},
		// pod name wins over hostname
		{model.Tags{
			"hostname": model.StringTag("node-1"),
			"pod.name": model.StringTag("web-aabbccdd11"),
		}, "web"},
	}
	for _, c := range cases {
		assert.Equal(c.expected, nodeNameFor(c.meta), "meta: %v", c.meta)
	}
}

func TestNodeNameFallbackDeterministic(t *testing.T) {
	assert := assert.New(t)

	meta := model.Tags{"custom.key": model.StringTag("value")}
	first := nodeNameFor(meta)
	assert.Equal(first, nodeNameFor(meta))
	assert.Regexp(`^Node-\d{1,4}$`, first)
}

func TestDeploymentGenerator(t *testing.T) {
	assert := assert.New(t)

	gen, err := NewDeploymentGenerator(xmi.Papyrus)
	assert.NoError(err)
	assert.Equal("deployment", gen.DiagramType())

	out, err := gen.GenerateXMI([]*model.Trace{testutil.TwoServiceTrace()})
	assert.NoError(err)

	assert.Contains(out, `name="checkout_Deployment"`)
	assert.Contains(out, `xmi:type="uml:Node" `)
	// frontend resolves via hostname, cartservice via pod name.
	assert.Contains(out, `name="node-1"`)
	assert.Contains(out, `name="cartservice"`)
	assert.Contains(out, `name="node-1_deploys_frontend"`)
	assert.Contains(out, `name="cartservice_deploys_cartservice"`)

	// One path between the two nodes, with both ends typed.
	assert.Equal(1, strings.Count(out, "uml:CommunicationPath"))
	assert.Equal(2, strings.Count(out, "<ownedEnd "))
}

func TestDeploymentGeneratorUnknownNode(t *testing.T) {
	assert := assert.New(t)

	trace := &model.Trace{
		TraceID: "t1",
		Spans: []*model.Span{
			{SpanID: "s1", OperationName: "op", ProcessID: "p1"},
		},
		Processes: map[string]*model.Process{
			"p1": {ServiceName: "bare"},
		},
	}

	gen, _ := NewDeploymentGenerator(xmi.Papyrus)
	out, err := gen.GenerateXMI([]*model.Trace{trace})
	assert.NoError(err)

	assert.Contains(out, `name="Node-Unknown"`)
	assert.Contains(out, `name="Node-Unknown_deploys_bare"`)
}

func TestDeploymentGeneratorEmpty(t *testing.T) {
	assert := assert.New(t)

	gen, _ := NewDeploymentGenerator(xmi.Papyrus)
	out, err := gen.GenerateXMI(nil)
	assert.NoError(err)
	assert.Equal("", out)
}
