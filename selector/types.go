// Package selector defines the Selector value and its fragment categories.
package selector

// category ranks the six fragment kinds of a compound selector in their
// canonical order. A fragment may only be added while no fragment of a
// strictly later category is present.
type category int

const (
	// catNone means the selector carries no fragments yet.
	catNone category = iota

	// catElement is the tag-name fragment ("div").
	catElement

	// catID is the id fragment ("#main").
	catID

	// catClass covers class fragments (".container").
	catClass

	// catAttr covers attribute fragments ("[href$=\".png\"]").
	catAttr

	// catPseudoClass covers pseudo-class fragments (":focus").
	catPseudoClass

	// catPseudoElement is the pseudo-element fragment ("::before").
	catPseudoElement
)

// Selector is the immutable state of one compound selector under
// construction. The zero value is an empty selector, ready to use.
//
// A Selector is in exactly one of two forms:
//
//   - fragment form: any of the fragment fields may be populated and
//     precomposed is empty;
//   - precomposed form: produced by Combine, only precomposed is set and
//     every fragment field is empty.
//
// Fragment-adding operations return a new Selector value; the slices of an
// existing value are never appended to in place, so distinct returned
// values share no growable storage.
type Selector struct {
	// element is the tag-name fragment; empty means absent. At most one.
	element string

	// id is the id fragment without the leading '#'; empty means absent.
	id string

	// classes holds class names in insertion order. Duplicates allowed.
	classes []string

	// attrs holds attribute expressions verbatim, in insertion order.
	// Each renders bracketed, e.g. `href$=".png"` → `[href$=".png"]`.
	attrs []string

	// pseudoClasses holds pseudo-class names in insertion order.
	pseudoClasses []string

	// pseudoElement is the pseudo-element name; empty means absent.
	pseudoElement string

	// precomposed is the final rendered string of a combined selector.
	// Non-empty precomposed marks the precomposed form.
	precomposed string
}

// latest reports the highest-ranked category already present in s.
// Used by every fragment-adding operation for the ordering check.
// Complexity: O(1).
func (s Selector) latest() category {
	switch {
	case s.pseudoElement != "":
		return catPseudoElement
	case len(s.pseudoClasses) > 0:
		return catPseudoClass
	case len(s.attrs) > 0:
		return catAttr
	case len(s.classes) > 0:
		return catClass
	case s.id != "":
		return catID
	case s.element != "":
		return catElement
	default:
		return catNone
	}
}

// appendCopy returns a fresh slice holding the elements of src followed by
// v. src itself is left untouched, which keeps previously returned Selector
// values independent of the new one.
func appendCopy(src []string, v string) []string {
	out := make([]string, len(src)+1)
	copy(out, src)
	out[len(src)] = v
	return out
}
