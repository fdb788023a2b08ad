package mixedradix_test

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/mixedradix"
)

// ExampleCodec_Increment walks every tuple of a 2×3 system in canonical order.
func ExampleCodec_Increment() {
	c, err := mixedradix.New(2, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	digits := make([]int, c.Len())
	for ok := true; ok; ok = c.Increment(digits) {
		off, _ := c.Encode(digits)
		fmt.Println(digits, off)
	}

	// Output:
	// [0 0] 0
	// [1 0] 1
	// [0 1] 2
	// [1 1] 3
	// [0 2] 4
	// [1 2] 5
}
