package lesspipe

// Config holds pipeline configuration. It is constructed once and passed
// into NewGenerator; components never consult ambient state.
type Config struct {
	SourcePath      string // root directory holding stylesheet sources
	DestinationPath string // root directory receiving generated .css files
	Compression     bool   // strip every newline from generated output
	Header          bool   // prepend the attribution banner to generated output
	Concat          string // name of the concatenated output file, empty disables
	Workers         int    // compile worker count for Parse; 0 or 1 runs sequentially
	Verbose         bool   // enable progress logging
}
