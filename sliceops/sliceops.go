// sliceops.go — generic pure slice transformations.
//
// Every function treats its input as read-only and allocates its result;
// see doc.go for the shared contracts (purity, order, nil in → nil out).

package sliceops

// Map applies fn to each element of s, returning a new slice of the
// results. Returns nil when s is nil.
func Map[T, R any](s []T, fn func(T) R) []R {
	if s == nil {
		return nil
	}
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// Filter returns the elements of s for which keep reports true, in input
// order. Returns nil when s is nil or no element matches.
func Filter[T any](s []T, keep func(T) bool) []T {
	if s == nil {
		return nil
	}
	var out []T
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Reduce folds s left to right into a single value, starting from init:
// acc = fn(acc, v) for each v. Returns init unchanged when s is empty.
func Reduce[T, R any](s []T, init R, fn func(R, T) R) R {
	acc := init
	for _, v := range s {
		acc = fn(acc, v)
	}
	return acc
}

// FlatMap applies fn to each element of s and concatenates the resulting
// slices in order. Returns nil when s is nil or every fn call yields an
// empty slice.
func FlatMap[T, R any](s []T, fn func(T) []R) []R {
	if s == nil {
		return nil
	}
	var out []R
	for _, v := range s {
		out = append(out, fn(v)...)
	}
	return out
}

// Take returns a copy of the first n elements of s. n larger than len(s)
// yields a copy of all of s; n ≤ 0 or nil s yields nil.
func Take[T any](s []T, n int) []T {
	if s == nil || n <= 0 {
		return nil
	}
	if n > len(s) {
		n = len(s)
	}
	out := make([]T, n)
	copy(out, s[:n])
	return out
}

// Skip returns a copy of s without its first n elements. n ≤ 0 copies all
// of s; n ≥ len(s) or nil s yields nil.
func Skip[T any](s []T, n int) []T {
	if s == nil || n >= len(s) {
		return nil
	}
	if n < 0 {
		n = 0
	}
	out := make([]T, len(s)-n)
	copy(out, s[n:])
	return out
}

// Chunk splits s into consecutive sub-slices of at most size elements; the
// last chunk may be shorter. Each chunk is a fresh copy. Returns nil when
// s is nil, s is empty, or size < 1.
func Chunk[T any](s []T, size int) [][]T {
	if len(s) == 0 || size < 1 {
		return nil
	}
	out := make([][]T, 0, (len(s)+size-1)/size)
	for start := 0; start < len(s); start += size {
		end := start + size
		if end > len(s) {
			end = len(s)
		}
		part := make([]T, end-start)
		copy(part, s[start:end])
		out = append(out, part)
	}
	return out
}

// Unique returns the elements of s with later duplicates removed, keeping
// the first occurrence of each value in input order. Returns nil when s is
// nil. Memory: O(n) for the seen set.
func Unique[T comparable](s []T) []T {
	if s == nil {
		return nil
	}
	seen := make(map[T]struct{}, len(s))
	var out []T
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Reverse returns a copy of s with elements in reverse order. Returns nil
// when s is nil.
func Reverse[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// GroupBy partitions s by the key computed for each element, preserving
// input order inside every group. Returns nil when s is nil or empty.
// Memory: O(n).
func GroupBy[T any, K comparable](s []T, key func(T) K) map[K][]T {
	if len(s) == 0 {
		return nil
	}
	out := make(map[K][]T)
	for _, v := range s {
		k := key(v)
		out[k] = append(out[k], v)
	}
	return out
}

// Pair is one aligned element pair produced by Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip pairs the elements of a and b index by index, stopping at the
// shorter input. Returns nil when either input is nil or the shorter one
// is empty.
func Zip[A, B any](a []A, b []B) []Pair[A, B] {
	if a == nil || b == nil {
		return nil
	}
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return nil
	}
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: a[i], Second: b[i]}
	}
	return out
}
