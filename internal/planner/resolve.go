package planner

import (
	"path/filepath"

	"github.com/mbarlow/pkgalign/internal/srcpkg"
)

// CanonicalDir computes the directory a source file should live in from
// its parsed declarations and the root of its source tree. Files named
// markerFile must declare exactly one package object, whose name becomes
// the final package segment. rootPackage may be empty, meaning no
// restriction. Returns either the directory or a Problem, never both.
// Pure function of its inputs; no filesystem access.
func CanonicalDir(file string, decls srcpkg.FileDecls, treeRoot string, rootPackage srcpkg.PackagePath, markerFile string) (string, *Problem) {
	if len(decls.Packages) == 0 {
		return "", &Problem{Kind: ProblemNoPackage, File: file}
	}

	effective := decls.Net()

	if filepath.Base(file) == markerFile {
		switch len(decls.Objects) {
		case 1:
			effective = effective.Child(decls.Objects[0])
		case 0:
			return "", &Problem{Kind: ProblemNoPackageObject, File: file}
		default:
			return "", &Problem{Kind: ProblemMultiplePackageObjects, File: file}
		}
	}

	if len(rootPackage) > 0 && !effective.HasPrefix(rootPackage) {
		return "", &Problem{Kind: ProblemOutsideRootPackage, File: file, Package: effective}
	}

	return filepath.Join(append([]string{treeRoot}, effective...)...), nil
}
