package input

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	log "github.com/cihub/seelog"
	"github.com/pkg/errors"

	"github.com/HiImLuxifer/UML-Generator/model"
)

// JSONFileReader reads Jaeger traces from a JSON export file or from
// every .json file in a directory.
type JSONFileReader struct {
	Path string
}

// NewJSONFileReader returns a reader over the given file or directory.
func NewJSONFileReader(path string) *JSONFileReader {
	return &JSONFileReader{Path: path}
}

// ReadTraces implements TraceReader. Files that fail to parse are
// skipped with a warning; a missing path is an error.
func (r *JSONFileReader) ReadTraces() ([]*model.Trace, error) {
	info, err := os.Stat(r.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "input: cannot read %s", r.Path)
	}

	if info.IsDir() {
		return r.readDirectory()
	}
	return r.readFile(r.Path)
}

func (r *JSONFileReader) readDirectory() ([]*model.Trace, error) {
	entries, err := filepath.Glob(filepath.Join(r.Path, "*.json"))
	if err != nil {
		return nil, errors.Wrapf(err, "input: cannot list %s", r.Path)
	}
	if len(entries) == 0 {
		log.Warnf("no JSON files found in directory: %s", r.Path)
		return nil, nil
	}
	sort.Strings(entries)

	var traces []*model.Trace
	for _, entry := range entries {
		fileTraces, err := r.readFile(entry)
		if err != nil {
			log.Warnf("skipping %s: %v", entry, err)
			continue
		}
		traces = append(traces, fileTraces...)
	}
	return traces, nil
}

func (r *JSONFileReader) readFile(path string) ([]*model.Trace, error) {
	log.Debugf("reading trace file: %s", path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "input: cannot read %s", path)
	}
	traces, err := parseTraces(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "input: invalid JSON in %s", path)
	}

	// The file base name labels traces that carry no source of their own.
	sourceName := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	for _, t := range traces {
		if t.SourceName == "" {
			t.SourceName = sourceName
		}
	}

	log.Debugf("loaded %d trace(s) from %s", len(traces), filepath.Base(path))
	return traces, nil
}
