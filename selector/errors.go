// errors.go — sentinel errors for the selector package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Operations attach the operation name as context using `%w`.
//   - Operations never panic; every contract violation surfaces as an error
//     at the offending call, not at render time.

package selector

import (
	"errors"
	"fmt"
)

// ErrDuplicateFragment indicates that a single-occurrence fragment
// (element, id or pseudo-element) was added to a selector that already
// carries that fragment.
// Usage: if errors.Is(err, ErrDuplicateFragment) { /* restart the chain */ }.
var ErrDuplicateFragment = errors.New("selector: element, id and pseudo-element may occur at most once")

// ErrOutOfOrder indicates that a fragment was added after a fragment of a
// later category. The canonical category order is element, id, class,
// attribute, pseudo-class, pseudo-element. A precomposed (combined)
// selector rejects every fragment-adding operation with this sentinel.
// Usage: if errors.Is(err, ErrOutOfOrder) { /* restart the chain */ }.
var ErrOutOfOrder = errors.New("selector: fragments must follow element, id, class, attribute, pseudo-class, pseudo-element order")

// Operation name tokens used as error context prefixes.
const (
	opElement       = "Element"
	opID            = "ID"
	opClass         = "Class"
	opAttr          = "Attr"
	opPseudoClass   = "PseudoClass"
	opPseudoElement = "PseudoElement"
)

// opError wraps a sentinel with the name of the offending operation,
// preserving the sentinel for errors.Is.
// Form: "<Operation>: <sentinel message>".
func opError(op string, sentinel error) error {
	return fmt.Errorf("%s: %w", op, sentinel)
}
