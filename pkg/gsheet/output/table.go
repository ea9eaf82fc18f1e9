package output

import "github.com/ukaji3/gsheet-go/pkg/gsheet/models"

// table lays cells out as a dense rectangle anchored at the top-left cell.
type table struct {
	firstRow, firstCol int
	rows               [][]string
}

func newTable(cells []models.Cell) table {
	if len(cells) == 0 {
		return table{}
	}
	minRow, maxRow := cells[0].RowIndex, cells[0].RowIndex
	minCol, maxCol := cells[0].ColumnIndex, cells[0].ColumnIndex
	for _, c := range cells[1:] {
		minRow = min(minRow, c.RowIndex)
		maxRow = max(maxRow, c.RowIndex)
		minCol = min(minCol, c.ColumnIndex)
		maxCol = max(maxCol, c.ColumnIndex)
	}

	t := table{firstRow: minRow, firstCol: minCol, rows: make([][]string, maxRow-minRow+1)}
	for i := range t.rows {
		t.rows[i] = make([]string, maxCol-minCol+1)
	}
	for _, c := range cells {
		t.rows[c.RowIndex-minRow][c.ColumnIndex-minCol] = c.Text()
	}
	return t
}
