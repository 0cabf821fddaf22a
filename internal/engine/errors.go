package engine

import "errors"

var (
	// ErrNotAProject indicates the project root is not an existing directory.
	ErrNotAProject = errors.New("not a project directory")

	// ErrNoSourceRoots indicates no recognized source tree exists under the
	// project root.
	ErrNoSourceRoots = errors.New("no recognized source trees")

	// ErrInvalidRootPackage indicates the required root package could not
	// be parsed.
	ErrInvalidRootPackage = errors.New("invalid root package")

	// ErrMoveFailed indicates a physical move failed during execution.
	ErrMoveFailed = errors.New("move failed")
)
