// SPDX-License-Identifier: MIT

package tmatrix_test

import (
	"fmt"

	"github.com/katalvlaran/utmatrix/tmatrix"
)

// ExampleMatrix_Add sums two upper-triangular matrices and prints the result.
func ExampleMatrix_Add() {
	a, _ := tmatrix.New[int](3)
	b, _ := tmatrix.New[int](3)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			_ = a.Set(i, j, 10*i+j)
			_ = b.Set(i, j, 100*i+j)
		}
	}

	c, err := a.Add(b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(c)
	// Output:
	//        0        2        4
	//        0      112      114
	//        0        0      224
}
