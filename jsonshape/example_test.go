package jsonshape_test

import (
	"fmt"

	"github.com/velikaro/kata/jsonshape"
)

// ExampleUnmarshal round-trips a value through JSON text; the target shape
// is fixed by the type parameter at the call site.
func ExampleUnmarshal() {
	type point struct {
		X int `json:"x"`
		Y int `json:"y"`
	}

	text, _ := jsonshape.Marshal(point{X: 1, Y: 2})
	fmt.Println(text)

	back, _ := jsonshape.Unmarshal[point](text)
	fmt.Println(back.X, back.Y)

	// Output:
	// {"x":1,"y":2}
	// 1 2
}
