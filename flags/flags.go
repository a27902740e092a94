// Package flags holds the command-line options of the generator.
package flags

import "flag"

var (
	InputFile  string
	InputDir   string
	JaegerURL  string
	Service    string
	Lookback   string
	Limit      int
	OutputDir  string
	Type       string
	Format     string
	Marte      bool
	ConfigFile string
	Version    bool
	Debug      bool
)

// Parse registers and parses the command-line flags. Zero values mean
// "not set"; the configuration layer decides precedence.
func Parse() {
	flag.StringVar(&InputFile, "file", "", "Jaeger JSON export file to read traces from")
	flag.StringVar(&InputDir, "dir", "", "Directory of Jaeger JSON export files")
	flag.StringVar(&JaegerURL, "url", "", "Jaeger query API base URL (e.g. http://localhost:16686)")
	flag.StringVar(&Service, "service", "", "Only fetch traces for this service (API input only)")
	flag.StringVar(&Lookback, "lookback", "", "How far back to fetch traces (API input only)")
	flag.IntVar(&Limit, "limit", 0, "Maximum number of traces to fetch (API input only)")
	flag.StringVar(&OutputDir, "out", "", "Directory to write generated XMI files to")
	flag.StringVar(&Type, "type", "", "Diagram type: all, sequence, component, interfaces, deployment or unified")
	flag.StringVar(&Format, "format", "", "XMI namespace profile: papyrus or magicdraw")
	flag.BoolVar(&Marte, "marte", true, "Apply MARTE performance stereotypes to the unified model")
	flag.StringVar(&ConfigFile, "config", "", "Config file location (.yaml or .ini)")
	flag.BoolVar(&Version, "version", false, "Show version information and exit")
	flag.BoolVar(&Debug, "debug", false, "Enable debug logging")

	flag.Parse()
}

// IsSet reports whether the flag with the given name was set to any
// other value than its default.
func IsSet(flagName string) bool {
	fs := flag.Lookup(flagName)
	if fs == nil {
		return false
	}
	return fs.DefValue != fs.Value.String()
}
