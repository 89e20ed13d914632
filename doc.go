// Package utmatrix is a small library of generic numeric containers: a
// bounds-checked vector and an upper-triangular square matrix built from it.
//
// Subpackages:
//
//	sequence      bounds-checked vector with scalar and pairwise arithmetic,
//	              dot product and whitespace-separated text I/O
//	tmatrix       upper-triangular matrix of row Sequences with row-wise
//	              addition/subtraction and aligned text output
//	config        YAML loading of size limits and row layout
//	cmd/utmatrix  command line: demo, add, sub, dot, scale
//
// Every container exclusively owns its storage: copies and assignments are
// deep. Arithmetic comes in two flavours: pure operations return a new
// value, *InPlace operations mutate and return the receiver.
//
// All errors are package sentinels, matched with errors.Is.
package utmatrix
