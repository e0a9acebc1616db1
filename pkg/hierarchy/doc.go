// Package hierarchy implements the ad-hoc type hierarchy (derive/underive/
// isa?/ancestors/descendants) and the multimethod dispatch procedure built
// on top of it: dispatch-fn -> dispatch value -> isa? resolution against the
// method table -> prefer-table tie-break -> NoMethodError or
// AmbiguousDispatchError.
package hierarchy
