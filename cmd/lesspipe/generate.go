package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yacobolo/lesspipe"
)

var generateCmd = &cobra.Command{
	Use:     "generate <logical/path>",
	Aliases: []string{"gen"},
	Short:   "Compile a single asset by its logical path",
	Long: `Resolve one logical path (extension-free, slash-separated) to a source
file, compile it, write the result under the destination root and print
the CSS to stdout.

  lesspipe generate screen
  lesspipe generate sub/dir/homepage`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := buildConfig()
		if err != nil {
			return err
		}

		transformer, err := lesspipe.NewLessTransformer()
		if err != nil {
			return err
		}
		gen := lesspipe.NewGenerator(config, transformer)

		logical := strings.Split(strings.Trim(args[0], "/"), "/")
		css, err := gen.Generate(logical)
		if err != nil {
			var nf *lesspipe.NotFoundError
			if errors.As(err, &nf) {
				return fmt.Errorf("asset not found: %w", err)
			}
			return fmt.Errorf("generate failed: %w", err)
		}

		if !getBoolWithFallback("quiet", "quiet", false) {
			fmt.Fprint(os.Stdout, css)
		}
		return nil
	},
}

func init() {
	f := generateCmd.Flags()
	f.Bool("compression", false, "Strip every newline from generated output")
	f.Bool("header", false, "Prepend the attribution banner to generated output")
}
