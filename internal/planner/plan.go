package planner

import (
	"fmt"
	"strings"

	"github.com/mbarlow/pkgalign/internal/srcpkg"
)

// Move relocates one source file into the directory matching its declared
// package. Dest keeps the file's own name.
type Move struct {
	// Source is the file's current absolute path
	Source string

	// Dest is the absolute path the file should move to
	Dest string
}

// ProblemKind identifies why a file or a move set cannot proceed.
type ProblemKind int

const (
	// ProblemNoPackage: the file contains no package declaration.
	ProblemNoPackage ProblemKind = iota

	// ProblemNoPackageObject: a package file lacks a package object.
	ProblemNoPackageObject

	// ProblemMultiplePackageObjects: a package file declares more than one
	// package object.
	ProblemMultiplePackageObjects

	// ProblemOutsideRootPackage: the declared package is not under the
	// required root package.
	ProblemOutsideRootPackage

	// ProblemBlockedDestination: the destination, or a directory on the
	// way to it, is blocked by an existing non-directory file.
	ProblemBlockedDestination

	// ProblemDuplicateDestination: more than one source file resolves to
	// the same destination.
	ProblemDuplicateDestination
)

// Problem describes one reason the plan cannot proceed. Problems are
// collected during planning and reported in a batch.
type Problem struct {
	Kind ProblemKind

	// File is the source file the problem concerns (per-file kinds).
	File string

	// Package is the parsed package, set for ProblemOutsideRootPackage.
	Package srcpkg.PackagePath

	// Dest is the destination path, set for the conflict kinds.
	Dest string

	// Sources lists every move source in flight, set for
	// ProblemDuplicateDestination.
	Sources []string
}

// Message renders the problem for the report.
func (p Problem) Message() string {
	switch p.Kind {
	case ProblemNoPackage:
		return fmt.Sprintf("%s: no package declarations found", p.File)
	case ProblemNoPackageObject:
		return fmt.Sprintf("%s: package file does not declare a package object", p.File)
	case ProblemMultiplePackageObjects:
		return fmt.Sprintf("%s: package file declares more than one package object", p.File)
	case ProblemOutsideRootPackage:
		return fmt.Sprintf("%s: package %s is outside the required root package", p.File, p.Package)
	case ProblemBlockedDestination:
		return fmt.Sprintf("%s: an existing file blocks this destination", p.Dest)
	case ProblemDuplicateDestination:
		return fmt.Sprintf("%s: multiple source files resolve to this destination (moves in flight: %s)", p.Dest, strings.Join(p.Sources, ", "))
	default:
		return fmt.Sprintf("unknown problem kind %d", p.Kind)
	}
}

// AlignPlan is the outcome of one planning pass over a project.
type AlignPlan struct {
	// Moves is the ordered list of pending moves
	Moves []Move

	// Problems is the list of collected problems (empty on a clean plan)
	Problems []Problem
}

// NewAlignPlan creates a new empty AlignPlan.
func NewAlignPlan() *AlignPlan {
	return &AlignPlan{
		Moves:    []Move{},
		Problems: []Problem{},
	}
}

// HasProblems returns true if the plan has any problems.
func (p *AlignPlan) HasProblems() bool {
	return len(p.Problems) > 0
}

// AddMove adds a pending move to the plan.
func (p *AlignPlan) AddMove(m Move) {
	p.Moves = append(p.Moves, m)
}

// AddProblem adds a problem to the plan.
func (p *AlignPlan) AddProblem(problem Problem) {
	p.Problems = append(p.Problems, problem)
}
