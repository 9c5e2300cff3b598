package tensor

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
)

// Dense is a dense, row-major matrix of float64 values.
//
// It is the only value type the differentiation engine operates on: a
// collocation batch is an [n, 1] column, a hidden activation is [n, hidden],
// a scalar loss is [1, 1]. All kernels allocate fresh results; nothing
// aliases, which keeps eagerly-evaluated computation graphs valid.
type Dense struct {
	rows, cols int
	data       []float64
}

// New creates a zero-filled Dense with the given dimensions.
func New(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Errorf("tensor: invalid dimensions %dx%d", rows, cols)
	}
	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// FromSlice creates a Dense backed by a copy of data.
//
// Returns an error if len(data) != rows*cols.
func FromSlice(data []float64, rows, cols int) (*Dense, error) {
	d, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, errors.Errorf("tensor: %dx%d requires %d elements, got %d", rows, cols, rows*cols, len(data))
	}
	copy(d.data, data)
	return d, nil
}

// Zeros creates a zero-filled Dense. Panics on invalid dimensions.
func Zeros(rows, cols int) *Dense {
	d, err := New(rows, cols)
	if err != nil {
		panic(err)
	}
	return d
}

// Ones creates a Dense filled with ones.
func Ones(rows, cols int) *Dense {
	return Full(rows, cols, 1)
}

// Full creates a Dense filled with value v.
func Full(rows, cols int, v float64) *Dense {
	d := Zeros(rows, cols)
	for i := range d.data {
		d.data[i] = v
	}
	return d
}

// Scalar creates a [1, 1] Dense holding v.
func Scalar(v float64) *Dense {
	d := Zeros(1, 1)
	d.data[0] = v
	return d
}

// Rand creates a Dense with values drawn uniformly from [min, max).
func Rand(rows, cols int, min, max float64, rng *rand.Rand) *Dense {
	d := Zeros(rows, cols)
	for i := range d.data {
		d.data[i] = min + rng.Float64()*(max-min)
	}
	return d
}

// Rows returns the number of rows.
func (d *Dense) Rows() int { return d.rows }

// Cols returns the number of columns.
func (d *Dense) Cols() int { return d.cols }

// Len returns the total number of elements.
func (d *Dense) Len() int { return len(d.data) }

// Data returns the underlying row-major slice. Mutations are visible to the
// tensor; the optimizer relies on this for in-place parameter updates.
func (d *Dense) Data() []float64 { return d.data }

// At returns the element at row i, column j.
func (d *Dense) At(i, j int) float64 { return d.data[i*d.cols+j] }

// Set assigns the element at row i, column j.
func (d *Dense) Set(i, j int, v float64) { d.data[i*d.cols+j] = v }

// Scalar returns the single element of a [1, 1] tensor.
func (d *Dense) Scalar() float64 {
	if len(d.data) != 1 {
		panic("tensor: Scalar called on non-scalar tensor")
	}
	return d.data[0]
}

// Clone returns a deep copy.
func (d *Dense) Clone() *Dense {
	c := Zeros(d.rows, d.cols)
	copy(c.data, d.data)
	return c
}

// SameShape reports whether d and o have identical dimensions.
func (d *Dense) SameShape(o *Dense) bool {
	return d.rows == o.rows && d.cols == o.cols
}

// IsFinite reports whether every element is a finite number.
func (d *Dense) IsFinite() bool {
	for _, v := range d.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Norm returns the L2 norm over all elements.
func (d *Dense) Norm() float64 {
	var sum float64
	for _, v := range d.data {
		sum += v * v
	}
	return math.Sqrt(sum)
}
