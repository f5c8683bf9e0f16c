// Package lesspipe compiles a tree of LESS/CSS stylesheet sources into a
// parallel tree of plain CSS output files.
//
// lesspipe resolves logical asset paths to source files, runs sources
// through a pluggable preprocessor, applies post-processing (compression,
// attribution headers, concatenation) and writes the results under a
// destination root. It also supports cleaning previously generated output.
//
// # Batch compilation
//
// Compile every source under a source root:
//
//	config := lesspipe.Config{
//		SourcePath:      "app/stylesheets",
//		DestinationPath: "public/stylesheets",
//		Compression:     true,
//	}
//	transformer, err := lesspipe.NewLessTransformer()
//	if err != nil {
//		// the external less compiler is not installed
//	}
//	gen := lesspipe.NewGenerator(config, transformer)
//	result, err := gen.Parse()
//
// # Single assets
//
// Compile one asset by its logical path (extension-free, one string per
// directory segment):
//
//	css, err := gen.Generate([]string{"sub", "dir", "homepage"})
//
// # CLI Tool
//
// lesspipe also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/lesspipe/cmd/lesspipe@latest
//
// See cmd/lesspipe for CLI documentation.
package lesspipe
