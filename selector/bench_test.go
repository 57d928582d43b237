package selector_test

import (
	"testing"

	"github.com/velikaro/kata/selector"
)

// buildFull assembles a selector carrying all six fragment categories.
// Benchmarks reuse it so build and render costs are measured separately.
func buildFull(b *testing.B) selector.Selector {
	b.Helper()
	s, err := selector.Element("input").ID("q")
	if err != nil {
		b.Fatalf("build failed: %v", err)
	}
	for _, c := range []string{"wide", "primary", "wide"} {
		if s, err = s.Class(c); err != nil {
			b.Fatalf("build failed: %v", err)
		}
	}
	if s, err = s.Attr(`type="text"`); err != nil {
		b.Fatalf("build failed: %v", err)
	}
	if s, err = s.PseudoClass("focus"); err != nil {
		b.Fatalf("build failed: %v", err)
	}
	if s, err = s.PseudoElement("placeholder"); err != nil {
		b.Fatalf("build failed: %v", err)
	}
	return s
}

// BenchmarkSelector_Build measures a full six-category construction chain.
func BenchmarkSelector_Build(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buildFull(b)
	}
}

// BenchmarkSelector_String measures rendering of a prebuilt selector.
func BenchmarkSelector_String(b *testing.B) {
	s := buildFull(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.String()
	}
}

// BenchmarkCombine measures joining two prebuilt selectors.
func BenchmarkCombine(b *testing.B) {
	left := buildFull(b)
	right := selector.Element("span")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = selector.Combine(left, "~", right)
	}
}
