package query

import "strings"

// ScanRaw compares literal against every row of the raw column.
func ScanRaw(raw []string, literal string) Result {
	var rows []uint32
	for i, value := range raw {
		if value == literal {
			rows = append(rows, uint32(i)) //nolint: gosec
		}
	}

	return Result{rows: rows}
}

// ScanRawPrefix tests prefix against every row of the raw column.
func ScanRawPrefix(raw []string, prefix string) Result {
	var rows []uint32
	for i, value := range raw {
		if strings.HasPrefix(value, prefix) {
			rows = append(rows, uint32(i)) //nolint: gosec
		}
	}

	return Result{rows: rows}
}
