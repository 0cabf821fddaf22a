// Package engine orchestrates alignment runs.
//
// The engine validates the project, plans moves across every recognized
// source tree, conflict-checks the combined move set, and only when
// planning produced zero problems executes the moves. Any problem
// anywhere blocks every move for the run; partial realignment would
// leave the tree in a confusing intermediate state.
package engine

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mbarlow/pkgalign/internal/config"
	"github.com/mbarlow/pkgalign/internal/fsops"
	"github.com/mbarlow/pkgalign/internal/planner"
	"github.com/mbarlow/pkgalign/internal/srcpkg"
)

// Engine coordinates planning and execution. It is the main API surface
// called by the CLI.
type Engine struct {
	fs     fsops.FS
	layout config.Layout
	log    *log.Logger
}

// New creates a new Engine with the given dependencies.
func New(fs fsops.FS, layout config.Layout, logger *log.Logger) *Engine {
	return &Engine{
		fs:     fs,
		layout: layout,
		log:    logger,
	}
}

// Align plans the moves that place every source file in the directory
// matching its declared package and, unless the plan has problems or the
// request is a dry run, executes them in order. A returned error is a
// fatal precondition or execution failure; plan problems are reported in
// the result and are not errors.
func (e *Engine) Align(req *AlignRequest) (*AlignResult, error) {
	root, err := filepath.Abs(req.ProjectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	var rootPackage srcpkg.PackagePath
	if req.RootPackage != "" {
		rootPackage, err = srcpkg.ParseDotted(req.RootPackage)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRootPackage, err)
		}
	}

	trees, err := e.existingTrees(root)
	if err != nil {
		return nil, err
	}

	plan := planner.NewAlignPlan()
	scanner := planner.NewScanner(e.fs, e.layout.Suffix, e.layout.MarkerFile, rootPackage, e.log)
	for _, tree := range trees {
		if err := scanner.ScanTree(tree, plan); err != nil {
			return nil, err
		}
	}

	checker := planner.NewConflictChecker(e.fs)
	if err := checker.Check(plan); err != nil {
		return nil, err
	}

	result := &AlignResult{
		Plan:  plan,
		Moved: []planner.Move{},
		Trees: trees,
	}

	if plan.HasProblems() || req.DryRun {
		return result, nil
	}

	// Execution fails fast: the first failed move aborts the rest, and the
	// moves completed so far are reported in the result.
	for _, m := range plan.Moves {
		if err := e.executeMove(m); err != nil {
			return result, err
		}
		result.Moved = append(result.Moved, m)
	}
	return result, nil
}

// existingTrees validates the project root and returns the recognized
// source tree roots that exist under it, in layout order.
func (e *Engine) existingTrees(projectRoot string) ([]string, error) {
	isDir, err := e.fs.DirExists(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to check project root: %w", err)
	}
	if !isDir {
		return nil, fmt.Errorf("%w: %s", ErrNotAProject, projectRoot)
	}

	var trees []string
	for _, rel := range e.layout.SourceRoots {
		tree := filepath.Join(projectRoot, rel)
		isDir, err := e.fs.DirExists(tree)
		if err != nil {
			return nil, fmt.Errorf("failed to check source tree %s: %w", tree, err)
		}
		if isDir {
			trees = append(trees, tree)
		}
	}
	if len(trees) == 0 {
		return nil, fmt.Errorf("%w under %s (looked for %s)",
			ErrNoSourceRoots, projectRoot, strings.Join(e.layout.SourceRoots, ", "))
	}
	return trees, nil
}

// executeMove ensures the destination's parent directory exists, then
// relocates the file.
func (e *Engine) executeMove(m planner.Move) error {
	destDir := filepath.Dir(m.Dest)
	if err := e.fs.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create %s: %w", ErrMoveFailed, destDir, err)
	}
	if err := e.fs.Rename(m.Source, m.Dest); err != nil {
		return fmt.Errorf("%w: %s -> %s: %w", ErrMoveFailed, m.Source, m.Dest, err)
	}
	e.log.Debug("moved", "source", m.Source, "dest", m.Dest)
	return nil
}
