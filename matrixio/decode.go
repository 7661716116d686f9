package matrixio

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Decode reads a matrix in format f from r and checks every cell.
func Decode(r io.Reader, f Format) (Matrix, error) {
	var (
		m   Matrix
		err error
	)
	switch f {
	case FormatJSON:
		m, err = decodeJSON(r)
	case FormatCSV:
		m, err = decodeCSV(r)
	case FormatTOML:
		m, err = decodeTOML(r)
	default:
		return Matrix{}, ErrUnknownFormat
	}
	if err != nil {
		return Matrix{}, err
	}
	if err = checkCells(m); err != nil {
		return Matrix{}, err
	}

	return m, nil
}

// ReadFile decodes path, picking the format from its extension unless f is
// non-empty.
func ReadFile(path string, f Format) (Matrix, error) {
	if f == "" {
		var err error
		if f, err = FormatFromPath(path); err != nil {
			return Matrix{}, fmt.Errorf("%s: %w", path, err)
		}
	}
	file, err := os.Open(path)
	if err != nil {
		return Matrix{}, err
	}
	defer file.Close()

	m, err := Decode(file, f)
	if err != nil {
		return Matrix{}, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// checkCells enforces a non-empty matrix of finite, non-negative cells.
func checkCells(m Matrix) error {
	if len(m.Cost) == 0 {
		return ErrEmpty
	}
	for i, row := range m.Cost {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: row %d col %d: %v", ErrParse, i, j, v)
			}
			if v < 0 {
				return fmt.Errorf("%w: row %d col %d: %v", ErrNegativeCell, i, j, v)
			}
		}
	}

	return nil
}

func decodeJSON(r io.Reader) (Matrix, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Matrix{}, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Matrix{}, ErrEmpty
	}

	var m Matrix
	switch data[0] {
	case '[':
		err = json.Unmarshal(data, &m.Cost)
	case '{':
		err = json.Unmarshal(data, &m)
	default:
		err = errors.New("expected an array or an object")
	}
	if err != nil {
		return Matrix{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return m, nil
}

func decodeCSV(r io.Reader) (Matrix, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	records, err := cr.ReadAll()
	if err != nil {
		return Matrix{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	var m Matrix
	for i, rec := range records {
		row := make([]float64, len(rec))
		for j, cell := range rec {
			if row[j], err = strconv.ParseFloat(strings.TrimSpace(cell), 64); err != nil {
				return Matrix{}, fmt.Errorf("%w: row %d col %d: %q", ErrParse, i, j, cell)
			}
		}
		m.Cost = append(m.Cost, row)
	}

	return m, nil
}

func decodeTOML(r io.Reader) (Matrix, error) {
	// Rows are decoded loosely: TOML keeps integers and floats apart.
	var doc struct {
		Cost [][]any `toml:"cost"`
	}
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return Matrix{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	m := Matrix{Cost: make([][]float64, len(doc.Cost))}
	for i, row := range doc.Cost {
		m.Cost[i] = make([]float64, len(row))
		for j, cell := range row {
			switch v := cell.(type) {
			case int64:
				m.Cost[i][j] = float64(v)
			case float64:
				m.Cost[i][j] = v
			default:
				return Matrix{}, fmt.Errorf("%w: row %d col %d: %v", ErrParse, i, j, cell)
			}
		}
	}

	return m, nil
}
