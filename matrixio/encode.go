package matrixio

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Encode writes an integer matrix to w in format f. The output decodes back
// with Decode.
func Encode(w io.Writer, f Format, cost [][]int64) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		return enc.Encode(struct {
			Cost [][]int64 `json:"cost"`
		}{cost})
	case FormatCSV:
		cw := csv.NewWriter(w)
		for _, row := range cost {
			rec := make([]string, len(row))
			for j, v := range row {
				rec[j] = strconv.FormatInt(v, 10)
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(struct {
			Cost [][]int64 `toml:"cost"`
		}{cost})
	default:
		return ErrUnknownFormat
	}
}
