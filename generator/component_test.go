package generator

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HiImLuxifer/UML-Generator/model"
	"github.com/HiImLuxifer/UML-Generator/testutil"
	"github.com/HiImLuxifer/UML-Generator/xmi"
)

// manyOperationsTrace returns a single-service trace exposing n
// distinct operations.
func manyOperationsTrace(n int) *model.Trace {
	trace := &model.Trace{
		TraceID:   "t-ops",
		Processes: map[string]*model.Process{"p1": {ServiceName: "bigservice"}},
	}
	for i := 0; i < n; i++ {
		trace.Spans = append(trace.Spans, &model.Span{
			SpanID:        fmt.Sprintf("s%d", i),
			OperationName: fmt.Sprintf("op%02d", i),
			ProcessID:     "p1",
		})
	}
	return trace
}

func TestComponentGeneratorBasics(t *testing.T) {
	assert := assert.New(t)

	gen, err := NewComponentGenerator(xmi.Papyrus)
	assert.NoError(err)
	assert.Equal("component", gen.DiagramType())

	out, err := gen.GenerateXMI([]*model.Trace{testutil.TwoServiceTrace()})
	assert.NoError(err)

	assert.Contains(out, `name="checkout_Component"`)
	assert.Contains(out, `xmi:type="uml:Component" `)
	assert.Contains(out, `name="frontend"`)
	assert.Contains(out, `name="cartservice"`)
	assert.Contains(out, `name="Components"`)
	assert.Contains(out, `name="Dependencies"`)

	// Operations carry simple names.
	assert.Contains(out, `name="Checkout"`)
	assert.Contains(out, `name="cart"`)

	// One usage per caller/callee pair.
	assert.Equal(1, strings.Count(out, `name="frontend_to_cartservice"`))
	assert.NotContains(out, "uml:Interface")
}

func TestComponentGeneratorOperationCap(t *testing.T) {
	assert := assert.New(t)

	gen, _ := NewComponentGenerator(xmi.Papyrus)
	out, err := gen.GenerateXMI([]*model.Trace{manyOperationsTrace(25)})
	assert.NoError(err)

	assert.Equal(maxComponentOperations, strings.Count(out, "<ownedOperation "))
	assert.Contains(out, "+5 more operations")
}

func TestComponentGeneratorDedupAcrossTraces(t *testing.T) {
	assert := assert.New(t)

	gen, _ := NewComponentGenerator(xmi.Papyrus)
	out, err := gen.GenerateXMI([]*model.Trace{
		testutil.TwoServiceTrace(),
		testutil.TwoServiceTrace(),
	})
	assert.NoError(err)

	assert.Equal(1, strings.Count(out, `name="frontend_to_cartservice"`))
}

func TestComponentGeneratorEmpty(t *testing.T) {
	assert := assert.New(t)

	gen, _ := NewComponentGenerator(xmi.Papyrus)
	out, err := gen.GenerateXMI(nil)
	assert.NoError(err)
	assert.Equal("", out)
}
