// Package templates provides embedded YAML configuration templates.
package templates

import _ "embed"

// ConfigYAML contains the default config.yaml template for application configuration.
//
//go:embed config.yaml
var ConfigYAML string

// MergesYAML is an example of a merges file.
//
//go:embed merges.yaml
var MergesYAML string
