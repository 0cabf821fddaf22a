// Package srcpkg extracts package declarations from source file lines.
//
// Matching is line-based and heuristic: every line is tested independently
// against the declaration patterns, so a declaration-shaped line inside a
// comment or string literal is indistinguishable from a real one. That
// trade-off is accepted; the alternative is a full parser for the source
// language.
package srcpkg

import "regexp"

var (
	// packageRe matches a bare package declaration with nothing trailing,
	// e.g. "package com.banno.api". Braced package syntax does not match.
	packageRe = regexp.MustCompile(`^package\s+([A-Za-z_][A-Za-z0-9_]*(?:\.[A-Za-z_][A-Za-z0-9_]*)*)\s*$`)

	// packageObjectRe matches a package object declaration and captures the
	// object name, e.g. "package object api extends ApiOps {".
	packageObjectRe = regexp.MustCompile(`^package\s+(?:object\s+)?([A-Za-z_][A-Za-z0-9_]*)(?:\s[^{]*)?\{\s*$`)
)

// FileDecls holds every declaration matched in one file.
type FileDecls struct {
	// Packages lists each simple package declaration, in file order.
	Packages []PackagePath

	// Objects lists the distinct package object names, in first-seen order.
	Objects []string
}

// ParseLines scans a file's lines for package and package object
// declarations. Lines that match neither pattern are ignored.
func ParseLines(lines []string) FileDecls {
	var decls FileDecls
	seen := make(map[string]bool)

	for _, line := range lines {
		if m := packageRe.FindStringSubmatch(line); m != nil {
			path, err := ParseDotted(m[1])
			if err != nil {
				continue
			}
			decls.Packages = append(decls.Packages, path)
			continue
		}
		if m := packageObjectRe.FindStringSubmatch(line); m != nil {
			if !seen[m[1]] {
				seen[m[1]] = true
				decls.Objects = append(decls.Objects, m[1])
			}
		}
	}
	return decls
}

// Net returns the fold-concatenation of every simple package declaration
// in file order, so "package a" followed by "package b" nets to a.b.
// Returns nil when the file declared no package.
func (d FileDecls) Net() PackagePath {
	var net PackagePath
	for _, p := range d.Packages {
		net = net.Concat(p)
	}
	return net
}
