// Package interpreter walks types.Node trees and evaluates them against a
// value.Environment, providing Apply as the single calling convention used
// by every callable Value kind: Function, Builtin, PartialFn, CompFn, and
// MultiFn (which defers to pkg/hierarchy for method resolution).
package interpreter
