// uml-generator turns Jaeger traces into UML models serialized as XMI,
// ready for import into Papyrus or MagicDraw.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/cihub/seelog"

	"github.com/HiImLuxifer/UML-Generator/config"
	"github.com/HiImLuxifer/UML-Generator/flags"
	"github.com/HiImLuxifer/UML-Generator/generator"
	"github.com/HiImLuxifer/UML-Generator/info"
	"github.com/HiImLuxifer/UML-Generator/input"
	"github.com/HiImLuxifer/UML-Generator/model"
	"github.com/HiImLuxifer/UML-Generator/quantizer"
	"github.com/HiImLuxifer/UML-Generator/statsd"
	"github.com/HiImLuxifer/UML-Generator/xmi"
)

// die logs an error message and makes the program exit immediately.
func die(format string, args ...interface{}) {
	if flags.Version {
		// here, we've silenced the logger, and just want plain console output
		fmt.Printf(format+"\n", args...)
	} else {
		log.Errorf(format, args...)
		log.Flush()
	}
	os.Exit(1)
}

func main() {
	flags.Parse()

	if flags.Version {
		fmt.Print(info.VersionString())
		return
	}

	if err := config.NewLoggerLevel(flags.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "cannot create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Flush()

	conf, err := loadConfig()
	if err != nil {
		die("%v", err)
	}

	if err := statsd.Configure(conf); err != nil {
		die("cannot configure statsd: %v", err)
	}

	traces, err := newReader(conf).ReadTraces()
	if err != nil {
		die("%v", err)
	}
	if len(traces) == 0 {
		log.Warn("no traces found, nothing to generate")
		return
	}
	log.Infof("read %d trace(s)", len(traces))
	statsd.Client.Count("uml_generator.traces_read", int64(len(traces)), nil, 1)

	if err := os.MkdirAll(conf.OutputDir, 0o755); err != nil {
		die("cannot create output directory: %v", err)
	}

	written, err := generate(conf, traces)
	if err != nil {
		die("%v", err)
	}
	statsd.Client.Count("uml_generator.documents_generated", int64(written), nil, 1)
	log.Infof("wrote %d XMI file(s) to %s", written, conf.OutputDir)
}

// loadConfig builds the effective configuration: defaults, then the
// config file when given, then command-line flags on top.
func loadConfig() (*config.Config, error) {
	var conf *config.Config
	var err error

	if flags.ConfigFile != "" {
		conf, err = config.Load(flags.ConfigFile)
		if err != nil {
			return nil, err
		}
		log.Infof("loaded configuration from %s", flags.ConfigFile)
	} else {
		conf = config.NewDefaultConfig()
	}

	if flags.InputFile != "" {
		conf.InputFile = flags.InputFile
	}
	if flags.InputDir != "" {
		conf.InputDir = flags.InputDir
	}
	if flags.JaegerURL != "" {
		conf.JaegerURL = flags.JaegerURL
	}
	if flags.Service != "" {
		conf.Service = flags.Service
	}
	if flags.Lookback != "" {
		conf.Lookback = flags.Lookback
	}
	if flags.Limit > 0 {
		conf.Limit = flags.Limit
	}
	if flags.OutputDir != "" {
		conf.OutputDir = flags.OutputDir
	}
	if flags.Type != "" {
		conf.DiagramType = flags.Type
	}
	if flags.Format != "" {
		conf.Format = flags.Format
	}
	if flags.IsSet("marte") {
		conf.IncludeMarte = flags.Marte
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func newReader(conf *config.Config) input.TraceReader {
	switch {
	case conf.InputFile != "":
		return input.NewJSONFileReader(conf.InputFile)
	case conf.InputDir != "":
		return input.NewJSONFileReader(conf.InputDir)
	default:
		return input.NewAPIClient(conf.JaegerURL, conf.Service, conf.Lookback, conf.Limit)
	}
}

// generate runs the selected generators and writes their documents,
// returning the number of files written. Per-trace generators produce
// one file per trace; the unified generator folds all traces into one.
func generate(conf *config.Config, traces []*model.Trace) (int, error) {
	format, err := xmi.ParseFormat(conf.Format)
	if err != nil {
		return 0, err
	}

	var perTrace []generator.Generator
	wantUnified := false

	switch conf.DiagramType {
	case "all":
		perTrace, err = allGenerators(format)
		wantUnified = true
	case "unified":
		wantUnified = true
	case "sequence":
		perTrace, err = oneGenerator(generator.NewSequenceGenerator(format))
	case "component":
		perTrace, err = oneGenerator(generator.NewComponentGenerator(format))
	case "interfaces":
		perTrace, err = oneGenerator(generator.NewInterfaceComponentGenerator(format))
	case "deployment":
		perTrace, err = oneGenerator(generator.NewDeploymentGenerator(format))
	}
	if err != nil {
		return 0, err
	}

	written := 0
	for _, gen := range perTrace {
		for i, trace := range traces {
			doc, err := gen.GenerateXMI([]*model.Trace{trace})
			if err != nil {
				return written, err
			}
			if doc == "" {
				continue
			}
			name := fmt.Sprintf("%s-%s.xmi", gen.DiagramType(), traceFileName(trace, i))
			if err := writeDocument(conf.OutputDir, name, doc); err != nil {
				return written, err
			}
			written++
		}
	}

	if wantUnified {
		gen, err := generator.NewUnifiedGenerator(format, conf.IncludeMarte)
		if err != nil {
			return written, err
		}
		doc, err := gen.GenerateXMI(traces)
		if err != nil {
			return written, err
		}
		if doc != "" {
			if err := writeDocument(conf.OutputDir, "unified-model.xmi", doc); err != nil {
				return written, err
			}
			written++
		}
	}
	return written, nil
}

func allGenerators(format xmi.Format) ([]generator.Generator, error) {
	seq, err := generator.NewSequenceGenerator(format)
	if err != nil {
		return nil, err
	}
	comp, err := generator.NewComponentGenerator(format)
	if err != nil {
		return nil, err
	}
	ifaces, err := generator.NewInterfaceComponentGenerator(format)
	if err != nil {
		return nil, err
	}
	depl, err := generator.NewDeploymentGenerator(format)
	if err != nil {
		return nil, err
	}
	return []generator.Generator{seq, comp, ifaces, depl}, nil
}

// oneGenerator adapts the (*T, error) constructor returns to the
// Generator slice the main loop consumes.
func oneGenerator(gen generator.Generator, err error) ([]generator.Generator, error) {
	if err != nil {
		return nil, err
	}
	return []generator.Generator{gen}, nil
}

func traceFileName(trace *model.Trace, index int) string {
	name := trace.SourceName
	if name == "" {
		name = trace.TraceID
	}
	if name == "" {
		name = fmt.Sprintf("trace-%d", index+1)
	}
	return quantizer.CleanTraceName(name)
}

func writeDocument(dir, name, doc string) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return err
	}
	log.Debugf("wrote %s", path)
	return nil
}
