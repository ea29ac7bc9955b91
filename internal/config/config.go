// Package config declares the CLI surface kong parses.
package config

import "github.com/openvr-tools/actiongen/internal/cmd"

// LogConfig holds the logging flags shared by every command.
type LogConfig struct {
	Level string `help:"Log level (trace, debug, info, warn, error)" default:"info" env:"ACTIONGEN_LOG_LEVEL"`
	File  string `help:"Optional log file path" env:"ACTIONGEN_LOG_FILE"`
}

// CLI is the root command structure.
type CLI struct {
	ConfigFile string    `name:"config" help:"Path to a config file (JSON, YAML or TOML)" type:"path"`
	Log        LogConfig `embed:"" prefix:"log."`

	Generate        cmd.Generate        `cmd:"" help:"Compile an action manifest and prelude into the generated input surface"`
	Validate        cmd.Validate        `cmd:"" help:"Validate an action manifest and its referenced binding files"`
	ValidateBinding cmd.ValidateBinding `cmd:"" name:"validate-binding" help:"Validate a single controller binding file"`
	Config          cmd.ConfigCommand   `cmd:"" help:"Manage configuration files"`
}
