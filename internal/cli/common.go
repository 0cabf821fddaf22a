package cli

import (
	"fmt"

	"github.com/mbarlow/pkgalign/internal/config"
	"github.com/mbarlow/pkgalign/internal/engine"
	"github.com/mbarlow/pkgalign/internal/fsops"
	"github.com/mbarlow/pkgalign/internal/logger"
)

// newEngine creates an engine with real implementations of all
// dependencies, using the layout configured for the project.
func newEngine(projectRoot string, verbose bool) (*engine.Engine, error) {
	layout, err := config.LoadLayout(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load project layout: %w", err)
	}

	fs := fsops.NewRealFS()
	return engine.New(fs, layout, logger.New(verbose)), nil
}
