package engine

import "github.com/mbarlow/pkgalign/internal/planner"

// AlignRequest represents a request to align a project's source layout.
type AlignRequest struct {
	// ProjectRoot is the path of the project to align (resolved to absolute)
	ProjectRoot string

	// RootPackage optionally restricts every file to a dotted package
	// prefix (empty means no restriction)
	RootPackage string

	// DryRun performs planning only without moving anything
	DryRun bool
}

// AlignResult represents the outcome of one alignment run.
type AlignResult struct {
	// Plan is the computed plan, including any problems
	Plan *planner.AlignPlan

	// Moved is the list of moves that were executed (empty if DryRun or if
	// the plan had problems)
	Moved []planner.Move

	// Trees is the list of source tree roots that were scanned
	Trees []string
}
