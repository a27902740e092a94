package main

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HiImLuxifer/UML-Generator/config"
	"github.com/HiImLuxifer/UML-Generator/model"
	"github.com/HiImLuxifer/UML-Generator/testutil"
)

func TestTraceFileName(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("checkout",
		traceFileName(&model.Trace{SourceName: "trace_checkout"}, 0))
	assert.Equal("abc123",
		traceFileName(&model.Trace{TraceID: "abc123"}, 0))
	assert.Equal("trace-3",
		traceFileName(&model.Trace{}, 2))
}

func TestGenerateAll(t *testing.T) {
	assert := assert.New(t)

	conf := config.NewDefaultConfig()
	conf.OutputDir = t.TempDir()

	traces := []*model.Trace{testutil.TwoServiceTrace()}
	written, err := generate(conf, traces)
	assert.NoError(err)
	// Four per-trace diagrams plus the unified model.
	assert.Equal(5, written)

	entries, err := filepath.Glob(filepath.Join(conf.OutputDir, "*.xmi"))
	assert.NoError(err)
	sort.Strings(entries)

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = filepath.Base(e)
	}
	assert.Equal([]string{
		"component-checkout.xmi",
		"deployment-checkout.xmi",
		"interfaces-checkout.xmi",
		"sequence-checkout.xmi",
		"unified-model.xmi",
	}, names)

	content, err := os.ReadFile(filepath.Join(conf.OutputDir, "unified-model.xmi"))
	assert.NoError(err)
	assert.Contains(string(content), "MARTE")
}

func TestGenerateSingleType(t *testing.T) {
	assert := assert.New(t)

	conf := config.NewDefaultConfig()
	conf.OutputDir = t.TempDir()
	conf.DiagramType = "sequence"

	traces := []*model.Trace{
		testutil.TwoServiceTrace(),
		testutil.HipstershopTrace(),
	}
	written, err := generate(conf, traces)
	assert.NoError(err)
	assert.Equal(2, written)

	entries, _ := filepath.Glob(filepath.Join(conf.OutputDir, "*.xmi"))
	assert.Len(entries, 2)
}

func TestGenerateBadFormat(t *testing.T) {
	assert := assert.New(t)

	conf := config.NewDefaultConfig()
	conf.Format = "visio"

	_, err := generate(conf, []*model.Trace{testutil.TwoServiceTrace()})
	assert.Error(err)
}
