package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	outputText = "text" // lipgloss table plus summary
	outputJSON = "json" // machine-readable outcome
)

// outcome is what solve prints, in either output mode.
type outcome struct {
	TotalCost   float64 `json:"totalCost"`
	Assignment  []int   `json:"assignment"`
	Adjustments int     `json:"adjustments"`
	Algorithm   string  `json:"algorithm"`
}

// writeOutcome renders res for cost in the requested output mode.
func writeOutcome(w io.Writer, output string, cost [][]float64, res outcome) error {
	switch output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case outputText, "":
		fmt.Fprintln(w, renderTable(cost, res.Assignment))
		for i, j := range res.Assignment {
			fmt.Fprintf(w, "  %s %s %s  %s\n",
				rowLabel(i), StyleDim.Render(iconArrow), colLabel(j),
				StyleDim.Render("("+formatCell(cost[i][j])+")"))
		}
		printKeyValue(w, "algorithm", res.Algorithm)
		printKeyValue(w, "adjustments", strconv.Itoa(res.Adjustments))
		printSuccess(w, "total cost %s", StyleNumber.Render(formatCell(res.TotalCost)))
		return nil
	default:
		return fmt.Errorf("unknown output %q (want %s or %s)", output, outputText, outputJSON)
	}
}

// renderTable draws the cost matrix with the assigned cell of every row
// bracketed and highlighted.
func renderTable(cost [][]float64, assignment []int) string {
	headers := make([]string, len(cost)+1)
	for j := range cost {
		headers[j+1] = colLabel(j)
	}

	rows := make([][]string, len(cost))
	for i, row := range cost {
		cells := make([]string, len(row)+1)
		cells[0] = rowLabel(i)
		for j, v := range row {
			if assignment[i] == j {
				cells[j+1] = "[" + formatCell(v) + "]"
			} else {
				cells[j+1] = formatCell(v)
			}
		}
		rows[i] = cells
	}

	cell := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1 || col == 0:
				return styleHeader.Padding(0, 1)
			case assignment[row] == col-1:
				return StyleAssigned.Padding(0, 1).Align(lipgloss.Right)
			default:
				return cell
			}
		})

	return t.Render()
}

func rowLabel(i int) string { return "R" + strconv.Itoa(i+1) }
func colLabel(j int) string { return "C" + strconv.Itoa(j+1) }

func formatCell(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
