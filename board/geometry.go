package board

// IsLeftEdge reports whether index lies in the first column.
// Complexity: O(1).
func IsLeftEdge(index, columns int) bool {
	return index%columns == 0
}

// IsRightEdge reports whether index lies in the last column.
// Complexity: O(1).
func IsRightEdge(index, columns int) bool {
	return index%columns == columns-1
}

// IsTopEdge reports whether index lies in the first row.
// Complexity: O(1).
func IsTopEdge(index, columns int) bool {
	return index < columns
}

// IsBottomEdge reports whether index lies in the last row of a board
// holding length cells.
// Complexity: O(1).
func IsBottomEdge(index, columns, length int) bool {
	return index+columns >= length
}

// appendPredecessors appends the indices of the neighbors of index that
// precede it in row-major order: left, top-left, top, top-right.
func appendPredecessors(dst []int, index, columns int) []int {
	left, right := IsLeftEdge(index, columns), IsRightEdge(index, columns)
	if !left {
		dst = append(dst, index-1)
	}
	if IsTopEdge(index, columns) {
		return dst
	}
	above := index - columns
	if !left {
		dst = append(dst, above-1)
	}
	dst = append(dst, above)
	if !right {
		dst = append(dst, above+1)
	}
	return dst
}

// appendNeighbors appends the indices of all (up to 8) neighbors of index
// on a board of length cells: left, right, the row above, then the row below.
func appendNeighbors(dst []int, index, columns, length int) []int {
	left, right := IsLeftEdge(index, columns), IsRightEdge(index, columns)
	if !left {
		dst = append(dst, index-1)
	}
	if !right {
		dst = append(dst, index+1)
	}
	if !IsTopEdge(index, columns) {
		above := index - columns
		if !left {
			dst = append(dst, above-1)
		}
		dst = append(dst, above)
		if !right {
			dst = append(dst, above+1)
		}
	}
	if !IsBottomEdge(index, columns, length) {
		below := index + columns
		if !left {
			dst = append(dst, below-1)
		}
		dst = append(dst, below)
		if !right {
			dst = append(dst, below+1)
		}
	}
	return dst
}
