package linalg

import (
	"github.com/YuminosukeSato/curvefit/pkg/errors"
)

// Solve reduces m to row-echelon form in place and returns the solution.
//
// For each column p the pivot slot p is compared pairwise against every row
// below it with SelectPivot, so after the pass it holds the largest
// magnitude in the column. Solve returns an error wrapping
// errors.ErrSingularMatrix when the pivot is still zero.
func Solve(m *Matrix) ([]float64, error) {
	k := m.Unknowns()
	for p := 0; p < k; p++ {
		for r := p + 1; r < k; r++ {
			if m.SelectPivot(p, r, p) == r {
				m.SwapRows(p, r)
			}
		}
		if m.rows[p][p] == ZeroPivot {
			return nil, errors.Wrapf(errors.ErrSingularMatrix, "linalg: zero pivot in column %d", p)
		}
		for r := p + 1; r < k; r++ {
			m.EliminateRow(p, r, p, k+1)
		}
	}
	return m.BackSubstitute()
}

// BackSubstitute reads the solution off an upper-triangular augmented
// matrix. Entries below the diagonal are ignored. It returns an error
// wrapping errors.ErrSingularMatrix if a diagonal entry is zero.
func (m *Matrix) BackSubstitute() ([]float64, error) {
	k := m.Unknowns()
	x := make([]float64, k)
	for i := k - 1; i >= 0; i-- {
		row := m.rows[i]
		if row[i] == ZeroPivot {
			return nil, errors.Wrapf(errors.ErrSingularMatrix, "linalg: zero diagonal at row %d", i)
		}
		sum := row[k]
		for j := i + 1; j < k; j++ {
			sum -= row[j] * x[j]
		}
		x[i] = sum / row[i]
	}
	return x, nil
}
