package planner

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/mbarlow/pkgalign/internal/fsops"
	"github.com/mbarlow/pkgalign/internal/srcpkg"
)

// Scanner plans moves for the source files of one project.
type Scanner struct {
	fs          fsops.FS
	suffix      string
	markerFile  string
	rootPackage srcpkg.PackagePath
	log         *log.Logger
}

// NewScanner creates a Scanner. rootPackage may be empty, meaning files
// can declare any package.
func NewScanner(fs fsops.FS, suffix, markerFile string, rootPackage srcpkg.PackagePath, logger *log.Logger) *Scanner {
	return &Scanner{
		fs:          fs,
		suffix:      suffix,
		markerFile:  markerFile,
		rootPackage: rootPackage,
		log:         logger,
	}
}

// ScanTree plans moves for every source file under treeRoot, appending
// moves and problems to plan. A file already sitting in its canonical
// directory produces neither a move nor a problem.
func (s *Scanner) ScanTree(treeRoot string, plan *AlignPlan) error {
	files, err := s.fs.SourceFiles(treeRoot, s.suffix)
	if err != nil {
		return fmt.Errorf("failed to list source files under %s: %w", treeRoot, err)
	}
	s.log.Debug("scanning source tree", "root", treeRoot, "files", len(files))

	for _, file := range files {
		lines, err := s.fs.ReadLines(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		decls := srcpkg.ParseLines(lines)
		canonical, problem := CanonicalDir(file, decls, treeRoot, s.rootPackage, s.markerFile)
		if problem != nil {
			s.log.Debug("problem", "file", file, "reason", problem.Message())
			plan.AddProblem(*problem)
			continue
		}

		if canonical == filepath.Dir(file) {
			continue
		}

		dest := filepath.Join(canonical, filepath.Base(file))
		s.log.Debug("planned move", "source", file, "dest", dest)
		plan.AddMove(Move{Source: file, Dest: dest})
	}
	return nil
}
