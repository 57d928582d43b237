package sliceops_test

import (
	"fmt"
	"strconv"

	"github.com/velikaro/kata/sliceops"
)

// ExampleMap turns numbers into their decimal strings.
func ExampleMap() {
	fmt.Println(sliceops.Map([]int{1, 2, 3}, strconv.Itoa))

	// Output:
	// [1 2 3]
}

// ExampleReduce composes Filter and Reduce into a summed selection.
func ExampleReduce() {
	even := sliceops.Filter([]int{1, 2, 3, 4, 5, 6}, func(v int) bool { return v%2 == 0 })
	sum := sliceops.Reduce(even, 0, func(acc, v int) int { return acc + v })
	fmt.Println(even, sum)

	// Output:
	// [2 4 6] 12
}

// ExampleChunk splits a slice into fixed-size pieces with a short tail.
func ExampleChunk() {
	fmt.Println(sliceops.Chunk([]int{1, 2, 3, 4, 5}, 2))

	// Output:
	// [[1 2] [3 4] [5]]
}
