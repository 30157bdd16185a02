package board

// RowWidth is the number of cells per printed row.
const RowWidth = 10

// Layout maps a cell to its row and column on a serpentine grid.
// Row 0 is the bottom row; odd rows run right to left.
// Cell 0 (off the board) maps to row -1, column 0.
func (b *Board) Layout(cell int) (row, col int) {
	if cell <= 0 {
		return -1, 0
	}
	idx := cell - 1
	row = idx / RowWidth
	col = idx % RowWidth
	if row%2 == 1 {
		col = RowWidth - 1 - col
	}
	return row, col
}

// Rows returns the number of rows needed to lay out the track.
func (b *Board) Rows() int {
	return (b.goal + RowWidth - 1) / RowWidth
}
