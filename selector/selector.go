// selector.go — fragment-adding operations, combination and rendering.
//
// Design contract (strict):
//   - Every operation validates first, then builds a NEW Selector value.
//     The receiver is read, never written; previously returned values stay
//     valid and independent.
//   - Validation order: duplicate check, then ordering check.
//   - Only sentinel errors are returned (ErrDuplicateFragment,
//     ErrOutOfOrder), wrapped once with the operation name.
//   - Rendering is infallible: invalid states cannot be constructed.

package selector

import "strings"

// Element returns a new selector with the tag-name fragment set.
//
// Errors:
//   - ErrDuplicateFragment if an element fragment is already present.
//   - ErrOutOfOrder if any later-category fragment is already present,
//     or if s is a precomposed (combined) selector.
//
// Complexity: O(1).
func (s Selector) Element(name string) (Selector, error) {
	if s.element != "" {
		return Selector{}, opError(opElement, ErrDuplicateFragment)
	}
	if s.precomposed != "" || s.latest() > catElement {
		return Selector{}, opError(opElement, ErrOutOfOrder)
	}
	next := s
	next.element = name
	return next, nil
}

// ID returns a new selector with the id fragment set; it renders as "#name".
//
// Errors:
//   - ErrDuplicateFragment if an id fragment is already present.
//   - ErrOutOfOrder if a class, attribute, pseudo-class or pseudo-element
//     fragment is already present, or if s is precomposed.
//
// Complexity: O(1).
func (s Selector) ID(name string) (Selector, error) {
	if s.id != "" {
		return Selector{}, opError(opID, ErrDuplicateFragment)
	}
	if s.precomposed != "" || s.latest() > catID {
		return Selector{}, opError(opID, ErrOutOfOrder)
	}
	next := s
	next.id = name
	return next, nil
}

// Class returns a new selector with a class fragment appended; it renders
// as ".name". Duplicate class names are allowed and insertion order is
// preserved.
//
// Errors:
//   - ErrOutOfOrder if an attribute, pseudo-class or pseudo-element
//     fragment is already present, or if s is precomposed.
//
// Complexity: O(len(classes)) for the snapshot copy.
func (s Selector) Class(name string) (Selector, error) {
	if s.precomposed != "" || s.latest() > catClass {
		return Selector{}, opError(opClass, ErrOutOfOrder)
	}
	next := s
	next.classes = appendCopy(s.classes, name)
	return next, nil
}

// Attr returns a new selector with an attribute fragment appended. The
// content is taken verbatim and renders bracketed: `href$=".png"` becomes
// `[href$=".png"]`. Insertion order is preserved.
//
// Errors:
//   - ErrOutOfOrder if a pseudo-class or pseudo-element fragment is already
//     present, or if s is precomposed.
//
// Complexity: O(len(attrs)) for the snapshot copy.
func (s Selector) Attr(content string) (Selector, error) {
	if s.precomposed != "" || s.latest() > catAttr {
		return Selector{}, opError(opAttr, ErrOutOfOrder)
	}
	next := s
	next.attrs = appendCopy(s.attrs, content)
	return next, nil
}

// PseudoClass returns a new selector with a pseudo-class fragment appended;
// it renders as ":name". Insertion order is preserved.
//
// Errors:
//   - ErrOutOfOrder if a pseudo-element fragment is already present, or if
//     s is precomposed.
//
// Complexity: O(len(pseudoClasses)) for the snapshot copy.
func (s Selector) PseudoClass(name string) (Selector, error) {
	if s.precomposed != "" || s.latest() > catPseudoClass {
		return Selector{}, opError(opPseudoClass, ErrOutOfOrder)
	}
	next := s
	next.pseudoClasses = appendCopy(s.pseudoClasses, name)
	return next, nil
}

// PseudoElement returns a new selector with the pseudo-element fragment
// set; it renders as "::name".
//
// Errors:
//   - ErrDuplicateFragment if a pseudo-element fragment is already present.
//   - ErrOutOfOrder if s is a precomposed (combined) selector.
//
// Complexity: O(1).
func (s Selector) PseudoElement(name string) (Selector, error) {
	if s.pseudoElement != "" {
		return Selector{}, opError(opPseudoElement, ErrDuplicateFragment)
	}
	if s.precomposed != "" {
		return Selector{}, opError(opPseudoElement, ErrOutOfOrder)
	}
	next := s
	next.pseudoElement = name
	return next, nil
}

// =============================================================================
// Chain starters
// =============================================================================
//
// Each starter is shorthand for the corresponding operation on the zero
// Selector, which cannot fail: an empty selector has no duplicate and no
// later-category fragment.

// Element starts a selector chain with a tag-name fragment.
func Element(name string) Selector { return Selector{element: name} }

// ID starts a selector chain with an id fragment.
func ID(name string) Selector { return Selector{id: name} }

// Class starts a selector chain with a class fragment.
func Class(name string) Selector { return Selector{classes: []string{name}} }

// Attr starts a selector chain with an attribute fragment.
func Attr(content string) Selector { return Selector{attrs: []string{content}} }

// PseudoClass starts a selector chain with a pseudo-class fragment.
func PseudoClass(name string) Selector { return Selector{pseudoClasses: []string{name}} }

// PseudoElement starts a selector chain with a pseudo-element fragment.
func PseudoElement(name string) Selector { return Selector{pseudoElement: name} }

// =============================================================================
// Combination and rendering
// =============================================================================

// Combine joins two finished selectors with a combinator into a new
// precomposed selector. Both sides are rendered first, so nested
// combinations resolve recursively. The combinator is taken verbatim and is
// always surrounded by single spaces:
//
//	"<left> <combinator> <right>"
//
// A single-space combinator therefore produces a run of three spaces in the
// output; Combine performs no normalization.
//
// Complexity: O(len(rendered left) + len(rendered right)).
func Combine(left Selector, combinator string, right Selector) Selector {
	return Selector{precomposed: left.String() + " " + combinator + " " + right.String()}
}

// String renders the selector to its final form, satisfying fmt.Stringer.
//
// A precomposed selector returns its stored string. A fragment-form
// selector concatenates fragments in the fixed render order element, id,
// attributes, classes, pseudo-classes, pseudo-element — independent of the
// call order used to add them.
//
// Complexity: O(total fragment length).
func (s Selector) String() string {
	if s.precomposed != "" {
		return s.precomposed
	}

	var b strings.Builder
	b.WriteString(s.element)
	if s.id != "" {
		b.WriteByte('#')
		b.WriteString(s.id)
	}
	for _, a := range s.attrs {
		b.WriteByte('[')
		b.WriteString(a)
		b.WriteByte(']')
	}
	for _, c := range s.classes {
		b.WriteByte('.')
		b.WriteString(c)
	}
	for _, p := range s.pseudoClasses {
		b.WriteByte(':')
		b.WriteString(p)
	}
	if s.pseudoElement != "" {
		b.WriteString("::")
		b.WriteString(s.pseudoElement)
	}
	return b.String()
}
