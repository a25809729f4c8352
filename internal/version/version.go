// Package version exposes the build version injected at link time.
package version

// version is overridden via -ldflags at build time (see magefile.go).
var version = "dev"

// Value returns the version string for this build.
func Value() string {
	return version
}
