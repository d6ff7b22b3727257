// Package authcheck holds build information shared by the CLI and the
// library packages.
package authcheck

var (
	// Version of authcheck, set at build time.
	Version = "v0.1.0"

	// Build timestamp, set at build time.
	Build = "n/a"
)
