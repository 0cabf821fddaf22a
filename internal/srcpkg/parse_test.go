package srcpkg

import (
	"reflect"
	"testing"
)

func TestParseLines_SimpleDeclarations(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string // dotted form of each matched declaration, in order
	}{
		{
			name:  "single declaration",
			lines: []string{"package com.banno.api", "", "class Foo"},
			want:  []string{"com.banno.api"},
		},
		{
			name:  "consecutive declarations kept in order",
			lines: []string{"package a", "package b", "package c"},
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "trailing whitespace allowed",
			lines: []string{"package com.banno   "},
			want:  []string{"com.banno"},
		},
		{
			name:  "braced package syntax is not a simple declaration",
			lines: []string{"package com.banno {"},
			want:  nil,
		},
		{
			name:  "indented line does not match",
			lines: []string{"  package com.banno"},
			want:  nil,
		},
		{
			name:  "import lines ignored",
			lines: []string{"import com.banno.api._", "class Foo"},
			want:  nil,
		},
		{
			name:  "declaration in the middle of the file still matches",
			lines: []string{"// header", "package com.banno", "class Foo"},
			want:  []string{"com.banno"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decls := ParseLines(tt.lines)
			var got []string
			for _, p := range decls.Packages {
				got = append(got, p.String())
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Packages = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLines_PackageObjects(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "plain package object",
			lines: []string{"package com.banno", "", "package object api {"},
			want:  []string{"api"},
		},
		{
			name:  "package object with extends clause",
			lines: []string{"package object api extends ApiOps {"},
			want:  []string{"api"},
		},
		{
			name:  "duplicates are collapsed",
			lines: []string{"package object api {", "package object api {"},
			want:  []string{"api"},
		},
		{
			name:  "distinct objects kept in first-seen order",
			lines: []string{"package object b {", "package object a {"},
			want:  []string{"b", "a"},
		},
		{
			name:  "dotted braced package is not an object",
			lines: []string{"package com.banno {"},
			want:  nil,
		},
		{
			name:  "no objects",
			lines: []string{"package com.banno", "class Foo"},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decls := ParseLines(tt.lines)
			if !reflect.DeepEqual(decls.Objects, tt.want) {
				t.Errorf("Objects = %v, want %v", decls.Objects, tt.want)
			}
		})
	}
}

func TestParseLines_HeuristicAcceptsCommentedDeclarations(t *testing.T) {
	// Line-based matching cannot tell a commented declaration from a real
	// one when the line itself has the declaration shape.
	decls := ParseLines([]string{"package com.banno", "// package com.other"})
	if len(decls.Packages) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(decls.Packages))
	}
	if decls.Packages[0].String() != "com.banno" {
		t.Errorf("Packages[0] = %q, want %q", decls.Packages[0], "com.banno")
	}
}

func TestFileDecls_Net(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "single declaration",
			lines: []string{"package com.banno.api"},
			want:  "com.banno.api",
		},
		{
			name:  "consecutive declarations concatenate",
			lines: []string{"package a", "package b"},
			want:  "a.b",
		},
		{
			name:  "mixed dotted and simple",
			lines: []string{"package com.banno", "package api"},
			want:  "com.banno.api",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			net := ParseLines(tt.lines).Net()
			if net.String() != tt.want {
				t.Errorf("Net() = %q, want %q", net.String(), tt.want)
			}
		})
	}

	t.Run("no declarations", func(t *testing.T) {
		if net := ParseLines([]string{"class Foo"}).Net(); len(net) != 0 {
			t.Errorf("Net() = %v, want empty", net)
		}
	})
}
