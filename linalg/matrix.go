package linalg

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
)

// NoSwap is returned by SelectPivot when neither candidate row has a
// strictly larger magnitude in the pivot column.
const NoSwap = -1

// ZeroPivot is the pivot value that makes elimination undefined.
const ZeroPivot = 0.0

// Matrix is a k×(k+1) augmented matrix; the last column is the right-hand
// side. Rows are held by reference so that SwapRows exchanges slots without
// copying elements.
type Matrix struct {
	rows [][]float64
}

// NewMatrix copies rows into a new augmented matrix. rows must describe k
// equations over k unknowns, each row holding k coefficients followed by the
// right-hand side.
func NewMatrix(rows [][]float64) (*Matrix, error) {
	k := len(rows)
	if k == 0 {
		return nil, errors.NewValueError("linalg.NewMatrix", "matrix has no rows")
	}
	m := &Matrix{rows: make([][]float64, k)}
	for i, row := range rows {
		if len(row) != k+1 {
			return nil, errors.NewDimensionError("linalg.NewMatrix", k+1, len(row), 1)
		}
		m.rows[i] = append([]float64(nil), row...)
	}
	return m, nil
}

// Unknowns returns k, the number of unknowns.
func (m *Matrix) Unknowns() int {
	return len(m.rows)
}

// Row returns the row currently in slot i. The slice aliases the matrix
// storage.
func (m *Matrix) Row(i int) []float64 {
	return m.rows[i]
}

// At returns the element at row slot i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.rows[i][j]
}

// Dense returns a gonum copy of the matrix in its current row order.
func (m *Matrix) Dense() *mat.Dense {
	k := len(m.rows)
	d := mat.NewDense(k, k+1, nil)
	for i, row := range m.rows {
		d.SetRow(i, row)
	}
	return d
}

// SelectPivot compares |m[rowA][col]| and |m[rowB][col]| and returns the row
// with the strictly larger magnitude, or NoSwap when they are equal
// (including both zero). It is a pairwise decision, not a column argmax.
func (m *Matrix) SelectPivot(rowA, rowB, col int) int {
	a := math.Abs(m.rows[rowA][col])
	b := math.Abs(m.rows[rowB][col])
	switch {
	case a > b:
		return rowA
	case b > a:
		return rowB
	default:
		return NoSwap
	}
}

// SwapRows exchanges the row slots rowA and rowB.
func (m *Matrix) SwapRows(rowA, rowB int) {
	m.rows[rowA], m.rows[rowB] = m.rows[rowB], m.rows[rowA]
}

// EliminateRow subtracts factor·pivot from target over columns
// [0, rowLength), where factor = target[col]/pivot[col].
//
// pivot[col] must be non-zero. A zero pivot yields an infinite or NaN
// factor and silently corrupts the target row.
func (m *Matrix) EliminateRow(pivot, target, col, rowLength int) {
	p := m.rows[pivot]
	t := m.rows[target]
	factor := t[col] / p[col]
	for i := 0; i < rowLength; i++ {
		t[i] -= factor * p[i]
	}
}
