// Package config defines the project layout pkgalign scans.
//
// The defaults follow the sbt convention: scala sources under
// src/main/scala, src/test/scala, and src/it/scala. A project can override
// the layout with a .pkgalign.toml file at its root; the file is read
// fresh on every invocation and nothing persists across runs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// LayoutFile is the optional per-project layout override.
const LayoutFile = ".pkgalign.toml"

// Layout describes where source files live and how they are recognized.
type Layout struct {
	// SourceRoots are the recognized source tree roots, relative to the
	// project root. Roots that do not exist are skipped during planning.
	SourceRoots []string `toml:"source_roots"`

	// Suffix is the source file suffix, e.g. ".scala".
	Suffix string `toml:"suffix"`

	// MarkerFile is the package file name whose package object supplies
	// the final package segment, e.g. "package.scala".
	MarkerFile string `toml:"marker_file"`
}

// DefaultLayout returns the standard sbt-style scala layout.
func DefaultLayout() Layout {
	return Layout{
		SourceRoots: []string{
			filepath.Join("src", "main", "scala"),
			filepath.Join("src", "test", "scala"),
			filepath.Join("src", "it", "scala"),
		},
		Suffix:     ".scala",
		MarkerFile: "package.scala",
	}
}

// LoadLayout returns the layout for a project, merging any .pkgalign.toml
// found at the project root over the defaults. A missing file is not an
// error; a malformed one is.
func LoadLayout(projectRoot string) (Layout, error) {
	layout := DefaultLayout()

	data, err := os.ReadFile(filepath.Join(projectRoot, LayoutFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return layout, nil
		}
		return layout, fmt.Errorf("failed to read %s: %w", LayoutFile, err)
	}

	var override Layout
	if err := toml.Unmarshal(data, &override); err != nil {
		return layout, fmt.Errorf("failed to parse %s: %w", LayoutFile, err)
	}

	if len(override.SourceRoots) > 0 {
		layout.SourceRoots = override.SourceRoots
	}
	if override.Suffix != "" {
		layout.Suffix = override.Suffix
	}
	if override.MarkerFile != "" {
		layout.MarkerFile = override.MarkerFile
	}
	return layout, nil
}
