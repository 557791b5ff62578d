package question

import (
	"strings"
)

// HeaderSentinel is the column label that marks the header row of a source table.
const HeaderSentinel = "Num"

// Cell positions of each field, counted from the first cell after the
// leading pipe. Cells 0 and 1 hold the row number and difficulty.
const (
	colName     = 2
	colTopic    = 3
	colPattern  = 4
	colSolution = 5
)

// Parse extracts questions from the pipe-delimited table rows in doc.
// Header and separator rows are skipped, as are rows without a name.
// Short rows yield empty fields; Parse never fails.
func Parse(doc string) []Question {
	var out []Question
	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimRight(line, "\r")
		if !strings.HasPrefix(line, "|") {
			continue
		}

		cells := splitRow(line)
		if isSeparator(cells) || isHeader(cells) {
			continue
		}

		q := Question{
			Name:     cell(cells, colName),
			Topic:    cell(cells, colTopic),
			Pattern:  cell(cells, colPattern),
			Solution: cell(cells, colSolution),
		}
		if q.Name == "" {
			continue
		}
		out = append(out, q)
	}
	return out
}

// splitRow returns the trimmed cells of a table row, without the empty
// fragment before the leading pipe.
func splitRow(line string) []string {
	parts := strings.Split(line, "|")[1:]
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

func cell(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}

// isSeparator reports whether every non-empty cell is a dash rule such as
// "---" or ":---:".
func isSeparator(cells []string) bool {
	seen := false
	for _, c := range cells {
		if c == "" {
			continue
		}
		if !strings.Contains(c, "---") || strings.Trim(c, "-:") != "" {
			return false
		}
		seen = true
	}
	return seen
}

func isHeader(cells []string) bool {
	for _, c := range cells {
		if c == HeaderSentinel {
			return true
		}
	}
	return false
}
