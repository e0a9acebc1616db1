// Package regex compiles and runs a pattern subset covering character
// classes, alternation, quantifiers, capture and non-capturing groups, and
// anchors, with no lookaround and no in-pattern
// backreferences. That subset is exactly RE2's feature set, so compilation
// simply translates into Go's standard regexp package rather than
// hand-rolling a backtracking engine; the stateful Matcher walk and the
// $0-$9/\c replacement-string expansion have no stdlib equivalent and are
// implemented here.
package regex
