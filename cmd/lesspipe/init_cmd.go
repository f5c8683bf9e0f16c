package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .lesspipe.yaml config file",
	Long:  `Create a .lesspipe.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".lesspipe.yaml"); err == nil && !force {
			return fmt.Errorf(".lesspipe.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".lesspipe.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .lesspipe.yaml")
		return nil
	},
}

const defaultConfig = `# lesspipe configuration
# Docs: https://github.com/yacobolo/lesspipe

# Deployment profile. Sets the compression/header defaults:
#   development -> compression: false, header: true
#   production  -> compression: true,  header: false
# Explicit keys below always win over the profile.
profile: development

source-path: app/stylesheets
destination-path: public/stylesheets

# compression: false   # strip every newline from generated output
# header: false        # prepend the attribution banner
# concat: all          # also write <destination-path>/all.css
# workers: 0           # compile worker count, 0 = sequential

check:
  strict: false
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
