// Package linalg solves small square linear systems given as augmented
// matrices, using Gaussian elimination with partial pivoting followed by
// back substitution.
//
// The elimination primitives (SelectPivot, SwapRows, EliminateRow) are
// exported so callers with a fixed system shape can drive the elimination
// sequence themselves. The primitives do not validate shapes or guard
// against zero pivots; Solve and BackSubstitute do.
//
//	m, err := linalg.NewMatrix([][]float64{
//	    {2, 1, 5},
//	    {1, 3, 10},
//	})
//	if err != nil {
//	    return err
//	}
//	x, err := linalg.Solve(m) // x = [1, 3]
package linalg
