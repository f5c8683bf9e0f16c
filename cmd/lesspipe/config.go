package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/lesspipe"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file >
// profile defaults. It must be called after cobra parses flags (in
// PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".lesspipe.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence — only flags that were explicitly
	// set; unset flag defaults must not mask profile defaults)
	flags := koanf.New(".")
	if err := flags.Load(posflag.Provider(cmd.Flags(), ".", nil), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		_ = k.Set(f.Name, flags.Get(f.Name))
	})

	return nil
}

// loadConfigFromPath loads configuration from a file and environment
// variables. This is separated from loadConfig to allow testing without a
// cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (LESSPIPE_* prefix)
	if err := k.Load(env.Provider("LESSPIPE_", ".", func(s string) string {
		// LESSPIPE_SOURCE_PATH -> source-path
		// LESSPIPE_COMPRESSION -> compression
		// LESSPIPE_CHECK_STRICT -> check.strict
		key := strings.ToLower(strings.TrimPrefix(s, "LESSPIPE_"))
		if rest, ok := strings.CutPrefix(key, "check_"); ok {
			return "check." + rest
		}
		return strings.ReplaceAll(key, "_", "-")
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// profileDefaults returns the compression/header defaults for a
// deployment profile. Explicit configuration keys always win over these.
func profileDefaults(profile string) (compression, header bool, err error) {
	switch profile {
	case "production":
		return true, false, nil
	case "development", "":
		return false, true, nil
	default:
		return false, false, fmt.Errorf("unknown profile %q (expected development or production)", profile)
	}
}

// buildConfig constructs the library's Config struct from koanf state.
func buildConfig() (lesspipe.Config, error) {
	profile := getStringWithFallback("profile", "profile", "development")
	compression, header, err := profileDefaults(profile)
	if err != nil {
		return lesspipe.Config{}, err
	}

	// `concat: false` is the documented way to disable concatenation in
	// YAML; koanf stringifies the bool.
	concat := getStringWithFallback("concat", "concat", "")
	if concat == "false" {
		concat = ""
	}

	config := lesspipe.Config{
		SourcePath:      getStringWithFallback("source-path", "source-path", "app/stylesheets"),
		DestinationPath: getStringWithFallback("destination-path", "destination-path", "public/stylesheets"),
		Compression:     getBoolWithFallback("compression", "compression", compression),
		Header:          getBoolWithFallback("header", "header", header),
		Concat:          concat,
		Workers:         getIntWithFallback("workers", "workers", 0),
		Verbose:         getBoolWithFallback("verbose", "verbose", false),
	}
	return config, nil
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
