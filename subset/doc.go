// Package subset enumerates the powerset of a slice in a stable,
// deterministic order.
//
// What:
//
//   - All returns every subset of the input (2^n of them, the empty subset
//     included), ordered by the increasing binary-index interpretation of
//     inclusion: bit j of subset index i selects items[j].
//
// Why:
//
//   - The brute-force swing-state solver scans every combination of
//     winner-held states; the enumeration order doubles as its documented
//     tie-break order.
//
// Cost is exponential by nature — callers must bound n themselves. The
// package is pure: no state, no side effects, no errors.
package subset
