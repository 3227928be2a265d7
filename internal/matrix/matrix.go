// Package matrix provides the dense 2D float64 matrix used by the convolution engine.
package matrix

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrEmpty is returned when a matrix would have no rows or no columns.
	ErrEmpty = errors.New("matrix is empty")

	// ErrJagged is returned when input rows have different lengths.
	ErrJagged = errors.New("matrix rows have different lengths")
)

// Matrix is a rectangular matrix stored in row-major order.
//
// Dimensions are fixed at construction. Every transform returns a new Matrix;
// Set is meant for filling a matrix the caller just created.
type Matrix struct {
	rows, cols int
	data       []float64
}

// New creates a zero-filled rows x cols matrix.
// Panics if either dimension is not positive.
func New(rows, cols int) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("matrix: invalid dimensions %dx%d (must be > 0)", rows, cols))
	}
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// FromRows copies a slice of rows into a new Matrix.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("from rows: %w", ErrEmpty)
	}
	cols := len(rows[0])
	m := New(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("from rows: row %d has %d columns, want %d: %w", i, len(row), cols, ErrJagged)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}
	return m, nil
}

// MustFromRows is like FromRows but panics on error. Intended for literals.
func MustFromRows(rows [][]float64) *Matrix {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Shape returns (rows, cols).
func (m *Matrix) Shape() (rows, cols int) { return m.rows, m.cols }

// At returns the element at (r, c).
func (m *Matrix) At(r, c int) float64 {
	m.checkIndex(r, c)
	return m.data[r*m.cols+c]
}

// Set stores v at (r, c).
func (m *Matrix) Set(r, c int, v float64) {
	m.checkIndex(r, c)
	m.data[r*m.cols+c] = v
}

func (m *Matrix) checkIndex(r, c int) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d, %d) out of range for %dx%d", r, c, m.rows, m.cols))
	}
}

// row returns the backing slice of row r. Callers inside the package must not leak it.
func (m *Matrix) row(r int) []float64 {
	return m.data[r*m.cols : (r+1)*m.cols]
}

// Row returns a copy of row r.
func (m *Matrix) Row(r int) []float64 {
	m.checkIndex(r, 0)
	out := make([]float64, m.cols)
	copy(out, m.row(r))
	return out
}

// ToRows returns the matrix as a freshly allocated slice of rows.
func (m *Matrix) ToRows() [][]float64 {
	out := make([][]float64, m.rows)
	for r := range out {
		out[r] = m.Row(r)
	}
	return out
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	copy(out.data, m.data)
	return out
}

// Equal reports whether both matrices have the same shape and identical elements.
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	return floats.Equal(m.data, other.data)
}

// EqualApprox is like Equal but allows an absolute tolerance per element.
func (m *Matrix) EqualApprox(other *Matrix, tol float64) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	return floats.EqualApprox(m.data, other.data, tol)
}

// Sum returns the sum of all elements.
func (m *Matrix) Sum() float64 {
	return floats.Sum(m.data)
}

// Window copies the h x w sub-matrix whose top-left corner is (r, c).
// Panics if the window does not fit inside m.
func (m *Matrix) Window(r, c, h, w int) *Matrix {
	if r < 0 || c < 0 || h <= 0 || w <= 0 || r+h > m.rows || c+w > m.cols {
		panic(fmt.Sprintf("matrix: window (%d, %d) %dx%d out of range for %dx%d", r, c, h, w, m.rows, m.cols))
	}
	out := New(h, w)
	for i := 0; i < h; i++ {
		copy(out.row(i), m.row(r + i)[c:c+w])
	}
	return out
}

// Paste copies src into m with its top-left corner at (r, c).
func (m *Matrix) Paste(src *Matrix, r, c int) {
	if r < 0 || c < 0 || r+src.rows > m.rows || c+src.cols > m.cols {
		panic(fmt.Sprintf("matrix: paste %dx%d at (%d, %d) out of range for %dx%d", src.rows, src.cols, r, c, m.rows, m.cols))
	}
	for i := 0; i < src.rows; i++ {
		copy(m.row(r + i)[c:c+src.cols], src.row(i))
	}
}

// MulElem returns the element-wise (Hadamard) product of m and other.
func (m *Matrix) MulElem(other *Matrix) *Matrix {
	if m.rows != other.rows || m.cols != other.cols {
		panic(fmt.Sprintf("matrix: shape mismatch %dx%d vs %dx%d", m.rows, m.cols, other.rows, other.cols))
	}
	out := New(m.rows, m.cols)
	floats.MulTo(out.data, m.data, other.data)
	return out
}

// Scale returns m multiplied by f.
func (m *Matrix) Scale(f float64) *Matrix {
	out := m.Clone()
	floats.Scale(f, out.data)
	return out
}

// Min returns the smallest element.
func (m *Matrix) Min() float64 { return floats.Min(m.data) }

// Max returns the largest element.
func (m *Matrix) Max() float64 { return floats.Max(m.data) }

// String formats the matrix one row per line.
func (m *Matrix) String() string {
	var b strings.Builder
	for r := 0; r < m.rows; r++ {
		fmt.Fprintf(&b, "%v\n", m.row(r))
	}
	return b.String()
}
