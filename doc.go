// Package kata collects small, self-contained exercise solutions: pure
// utility functions and one stateful-looking-but-immutable builder.
//
// Subpackages:
//
//	selector/  — compound CSS selector construction via immutable values,
//	             with construction-time ordering and duplicate checks and
//	             combinator-based composition of finished selectors.
//	sliceops/  — generic, pure, order-preserving slice transformations
//	             (Map, Filter, Reduce, FlatMap, Chunk, Unique, ...).
//	jsonshape/ — JSON text to and from statically known shapes.
//
// Every unit is independent, synchronous and free of I/O; there is no
// shared runtime and no persistent state across calls. Errors are sentinel
// values branched with errors.Is; nothing here panics.
package kata
