// Package sliceops provides small, generic, pure transformations over
// slices — the kind of helpers usually written inline and then duplicated.
//
// What:
//
//   - Element-wise: Map, Filter, FlatMap.
//   - Folding: Reduce.
//   - Slicing: Take, Skip, Chunk, Reverse.
//   - Keyed: Unique, GroupBy, Zip.
//
// Contracts (all functions):
//
//   - Pure: the input slice is never modified; results are freshly
//     allocated and share no storage with the input.
//   - Order-preserving: output order follows input order.
//   - nil in → nil out: a nil input yields a nil result. Selecting and
//     collecting functions (Filter, FlatMap, Take, Skip, Chunk, Unique,
//     GroupBy, Zip) also return nil when nothing is produced; element-wise
//     functions (Map, Reverse) mirror an empty input as an empty result.
//
// Complexity is O(n) per call unless noted otherwise on the function.
package sliceops
