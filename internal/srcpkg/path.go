package srcpkg

import (
	"fmt"
	"regexp"
	"strings"
)

// identRe matches a single package name segment.
var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// PackagePath is an ordered, non-empty sequence of package name segments,
// e.g. ["com", "banno", "api"] for com.banno.api. Paths are values and are
// never mutated after construction.
type PackagePath []string

// ParseDotted parses a dotted package string such as "com.banno.api".
func ParseDotted(s string) (PackagePath, error) {
	if s == "" {
		return nil, fmt.Errorf("empty package path")
	}
	segments := strings.Split(s, ".")
	for _, seg := range segments {
		if !identRe.MatchString(seg) {
			return nil, fmt.Errorf("invalid package segment %q in %q", seg, s)
		}
	}
	return PackagePath(segments), nil
}

// Concat returns a new path with other's segments appended.
func (p PackagePath) Concat(other PackagePath) PackagePath {
	out := make(PackagePath, 0, len(p)+len(other))
	out = append(out, p...)
	out = append(out, other...)
	return out
}

// Child returns a new path with a single segment appended.
func (p PackagePath) Child(segment string) PackagePath {
	return p.Concat(PackagePath{segment})
}

// HasPrefix reports whether prefix matches p segment-by-segment over the
// prefix's length.
func (p PackagePath) HasPrefix(prefix PackagePath) bool {
	if len(prefix) > len(p) {
		return false
	}
	for i, seg := range prefix {
		if p[i] != seg {
			return false
		}
	}
	return true
}

// String returns the dotted form of the path.
func (p PackagePath) String() string {
	return strings.Join(p, ".")
}
