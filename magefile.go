//go:build mage

package main

import (
	"fmt"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var (
	// Default target executed when none is specified.
	Default = CI
)

// CI runs the standard pipeline: format, lint, test, build.
func CI() {
	mg.SerialDeps(Format, Lint, Test, Build)
}

// Format updates Go sources using gofmt.
func Format() error {
	return run("go", "fmt", "./...")
}

// Lint executes go vet to perform static analysis.
func Lint() error {
	return run("go", "vet", "./...")
}

// Test runs the full Go test suite.
func Test() error {
	return run("go", "test", "./...")
}

// Build compiles all packages and produces the issuesheet binary.
func Build() error {
	if err := run("go", "build", "./..."); err != nil {
		return err
	}

	version := resolveVersion()
	ldflags := fmt.Sprintf("-X github.com/kmorrow/issuesheet/internal/version.version=%s", version)
	return run("go", "build", "-ldflags", ldflags, "-o", "issuesheet", "./cmd/issuesheet")
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("issuesheet")
}

func resolveVersion() string {
	out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		return "dev"
	}
	return strings.TrimSpace(out)
}

func run(cmd string, args ...string) error {
	return sh.RunV(cmd, args...)
}
