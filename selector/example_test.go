package selector_test

import (
	"errors"
	"fmt"

	"github.com/velikaro/kata/selector"
)

// ExampleElement demonstrates a short fragment chain. Each operation
// returns a new value; the error results are nil for legal sequences.
func ExampleElement() {
	// 1) Start with the tag name, then append an attribute and a pseudo-class:
	s, _ := selector.Element("a").Attr(`href$=".png"`)
	s, _ = s.PseudoClass("focus")

	// 2) Render; fragments appear in the fixed order regardless of call order:
	fmt.Println(s)

	// Output:
	// a[href$=".png"]:focus
}

// ExampleID shows that repeated class fragments are kept in insertion order.
func ExampleID() {
	s, _ := selector.ID("main").Class("container")
	s, _ = s.Class("editable")
	fmt.Println(s)

	// Output:
	// #main.container.editable
}

// ExampleCombine joins two selectors with an adjacent-sibling combinator.
func ExampleCombine() {
	combined := selector.Combine(selector.Element("div"), "+", selector.Element("span"))
	fmt.Println(combined)

	// Output:
	// div + span
}

// ExampleCombine_nested reproduces a deeply combined selector. The
// innermost descendant combinator is the literal " ", so the final join
// renders a run of three spaces — Combine never normalizes spacing.
func ExampleCombine_nested() {
	base, _ := selector.Element("div").ID("main")
	base, _ = base.Class("container")
	base, _ = base.Class("draggable")

	table, _ := selector.Element("table").ID("data")
	rows, _ := selector.Element("tr").PseudoClass("nth-of-type(even)")
	cells, _ := selector.Element("td").PseudoClass("nth-of-type(even)")

	combined := selector.Combine(base, "+", table)
	combined = selector.Combine(combined, "~", rows)
	combined = selector.Combine(combined, " ", cells)

	fmt.Println(combined)

	// Output:
	// div#main.container.draggable + table#data ~ tr:nth-of-type(even)   td:nth-of-type(even)
}

// ExampleSelector_Element demonstrates the construction-time checks: the
// offending call reports the violation, never the final render.
func ExampleSelector_Element() {
	// Duplicate tag name:
	_, err := selector.Element("div").Element("span")
	fmt.Println(errors.Is(err, selector.ErrDuplicateFragment))

	// id after class violates the canonical category order:
	_, err = selector.Class("row").ID("main")
	fmt.Println(errors.Is(err, selector.ErrOutOfOrder))

	// Output:
	// true
	// true
}
