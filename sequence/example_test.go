// SPDX-License-Identifier: MIT

package sequence_test

import (
	"fmt"

	"github.com/katalvlaran/utmatrix/sequence"
)

// ExampleSequence_Dot builds two vectors and prints their dot product.
func ExampleSequence_Dot() {
	a, _ := sequence.FromSlice([]int{1, 2, 3}, 0)
	b, _ := sequence.FromSlice([]int{4, 5, 6}, 0)

	dot, err := a.Dot(b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dot)
	// Output:
	// 32
}

// ExampleSequence_SubtractInPlace shows that subtraction mutates the left operand.
func ExampleSequence_SubtractInPlace() {
	a, _ := sequence.FromSlice([]int{5, 5, 5}, 0)
	b, _ := sequence.FromSlice([]int{1, 2, 3}, 0)

	sum, _ := a.Add(b)
	_, _ = a.SubtractInPlace(b)

	fmt.Println(sum)
	fmt.Println(a)
	// Output:
	// 6 7 8
	// 4 3 2
}
