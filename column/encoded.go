package column

// Encoded is a dictionary-encoded column: one code per row, in row order.
//
// The query engines treat an Encoded column as read-only.
type Encoded []uint32

// Len returns the number of rows.
func (e Encoded) Len() int {
	return len(e)
}

// At returns the code stored at row, or false when row is out of range.
func (e Encoded) At(row int) (uint32, bool) {
	if row < 0 || row >= len(e) {
		return 0, false
	}

	return e[row], true
}

// MaxCode returns the largest code in the column, or false for an empty column.
func (e Encoded) MaxCode() (uint32, bool) {
	if len(e) == 0 {
		return 0, false
	}

	maxCode := e[0]
	for _, c := range e[1:] {
		if c > maxCode {
			maxCode = c
		}
	}

	return maxCode, true
}
