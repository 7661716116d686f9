package matrixio

import (
	"errors"
	"math"
	"path/filepath"
	"strings"
)

var (
	// ErrEmpty indicates that the input holds no rows.
	ErrEmpty = errors.New("matrixio: empty matrix")

	// ErrUnknownFormat indicates an unsupported format name or file extension.
	ErrUnknownFormat = errors.New("matrixio: unknown format")

	// ErrParse indicates a cell that is not a finite number, or malformed input.
	ErrParse = errors.New("matrixio: cannot parse matrix")

	// ErrNegativeCell indicates a cell below zero.
	ErrNegativeCell = errors.New("matrixio: negative cost")

	// ErrBadRange indicates invalid arguments to Random.
	ErrBadRange = errors.New("matrixio: invalid random range")
)

// Format names an encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatTOML Format = "toml"
)

// ParseFormat validates a format name (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatCSV, FormatTOML:
		return f, nil
	default:
		return "", ErrUnknownFormat
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", ErrUnknownFormat
	}

	return ParseFormat(ext)
}

// Matrix is a decoded cost matrix. Rows may be ragged; the solver decides.
type Matrix struct {
	Cost [][]float64 `json:"cost" toml:"cost"`
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return len(m.Cost) }

// Integral converts the matrix to int64 when every cell is a whole number
// within ±2⁵³, so integer inputs can be solved with exact arithmetic.
func (m Matrix) Integral() ([][]int64, bool) {
	const maxExact = 1 << 53
	out := make([][]int64, len(m.Cost))
	for i, row := range m.Cost {
		out[i] = make([]int64, len(row))
		for j, v := range row {
			if v != math.Trunc(v) || math.Abs(v) > maxExact {
				return nil, false
			}
			out[i][j] = int64(v)
		}
	}

	return out, true
}

// FromInts widens an integer matrix.
func FromInts(cost [][]int64) Matrix {
	out := make([][]float64, len(cost))
	for i, row := range cost {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = float64(v)
		}
	}

	return Matrix{Cost: out}
}
