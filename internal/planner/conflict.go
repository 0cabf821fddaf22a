package planner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mbarlow/pkgalign/internal/fsops"
)

// ConflictChecker inspects a candidate move set for collisions before any
// move executes.
type ConflictChecker struct {
	fs fsops.FS
}

// NewConflictChecker creates a new ConflictChecker.
func NewConflictChecker(fs fsops.FS) *ConflictChecker {
	return &ConflictChecker{fs: fs}
}

// Check appends a Problem to plan for every destination claimed by more
// than one move, for every move whose destination is already occupied by
// an existing file, and for every move whose destination directory would
// be blocked by a file squatting on a directory path. A clean Check
// guarantees execution cannot hit a destination collision, overwrite an
// existing file, or fail a mkdir.
func (c *ConflictChecker) Check(plan *AlignPlan) error {
	byDest := make(map[string][]string)
	allSources := make([]string, 0, len(plan.Moves))
	for _, m := range plan.Moves {
		byDest[m.Dest] = append(byDest[m.Dest], m.Source)
		allSources = append(allSources, m.Source)
	}

	// Duplicate destinations. The report carries every move source in
	// flight, not just the clashing subset, so the full picture is visible.
	dests := make([]string, 0, len(byDest))
	for dest := range byDest {
		dests = append(dests, dest)
	}
	sort.Strings(dests)
	for _, dest := range dests {
		if len(byDest[dest]) > 1 {
			plan.AddProblem(Problem{
				Kind:    ProblemDuplicateDestination,
				Dest:    dest,
				Sources: allSources,
			})
		}
	}

	// Blocked destinations.
	for _, m := range plan.Moves {
		// An existing non-directory at the destination itself would be
		// silently overwritten by the rename.
		info, err := c.fs.Lstat(m.Dest)
		if err == nil && !info.IsDir() {
			plan.AddProblem(Problem{Kind: ProblemBlockedDestination, Dest: m.Dest})
			continue
		}
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to check destination %s: %w", m.Dest, err)
		}

		blocked, err := c.blockedDir(filepath.Dir(m.Dest))
		if err != nil {
			return fmt.Errorf("failed to check destination %s: %w", m.Dest, err)
		}
		if blocked != "" {
			plan.AddProblem(Problem{Kind: ProblemBlockedDestination, Dest: blocked})
		}
	}
	return nil
}

// blockedDir walks dir and its ancestors and returns the first path that
// exists as something other than a directory, or "" when MkdirAll(dir)
// would succeed. Stat is deliberate: MkdirAll follows symlinks, so a
// symlink resolving to a directory does not block.
func (c *ConflictChecker) blockedDir(dir string) (string, error) {
	for cur := dir; ; {
		info, err := c.fs.Stat(cur)
		if err == nil {
			if info.IsDir() {
				return "", nil
			}
			return cur, nil
		}
		if !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", nil
		}
		cur = parent
	}
}
