// Package planner handles the planning phase of an alignment run.
//
// The planner resolves the canonical directory for every source file from
// its package declarations, emits a move for each misplaced file, and
// checks the full candidate move set for conflicts before anything on
// disk changes. Problems are collected as values, never raised; a single
// problem anywhere blocks every move in the run.
//
// Key responsibilities:
//   - Resolve canonical directories from parsed declarations
//   - Scan source trees and plan moves for misplaced files
//   - Detect duplicate destinations and blocked destination directories
package planner
