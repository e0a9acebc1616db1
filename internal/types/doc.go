// Package types holds the surface-syntax AST shared between pkg/analyzer
// and pkg/interpreter: SourcePos, the Node interface, and the
// concrete node kinds produced once special forms have been recognised.
package types
