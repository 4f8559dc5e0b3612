// Package constants defines shared constants for the preflight CLI.
package constants

const (
	// CLIName is the binary name used in help text and examples.
	CLIName = "preflight"

	// DefaultConfigDir is the directory searched for pipeline configuration
	// files, relative to the current working directory.
	DefaultConfigDir = "cookiecutter-config"
)
