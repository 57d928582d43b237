// Package selector builds compound CSS selector strings through an
// immutable, chainable value type.
//
// What:
//
//   - Selector accumulates fragments of one compound selector: element, id,
//     classes, attributes, pseudo-classes and a pseudo-element.
//   - Each fragment-adding operation returns a NEW Selector value; the
//     receiver is never mutated, so partial selectors can be captured,
//     reused and extended along independent chains.
//   - Combine joins two finished selectors with a combinator (" ", ">",
//     "+", "~", taken verbatim) into a precomposed selector.
//
// Why:
//
//   - Generating selectors for scraping rules, test harnesses or style
//     tooling without string concatenation scattered through caller code.
//   - Construction-time ordering checks catch malformed compound selectors
//     at the offending call instead of in the rendered output.
//
// Ordering:
//
//	Fragment categories follow the canonical compound-selector sequence
//	element < id < class < attribute < pseudo-class < pseudo-element.
//	Adding a fragment after any fragment of a later category is rejected.
//	Rendering, however, always emits the fixed order element, id,
//	attributes, classes, pseudo-classes, pseudo-element regardless of the
//	call order used to build the value.
//
// Errors:
//
//   - ErrDuplicateFragment: element, id or pseudo-element added twice.
//   - ErrOutOfOrder: fragment added after a later-category fragment.
//
// All operations are pure and never panic. A Selector value is safe to
// share across goroutines because no returned value aliases mutable state.
package selector
