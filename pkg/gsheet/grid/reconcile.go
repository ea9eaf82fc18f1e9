// Package grid materializes API value ranges into addressed cells.
package grid

import (
	"errors"
	"fmt"

	"github.com/ukaji3/gsheet-go/pkg/gsheet/a1"
	"github.com/ukaji3/gsheet-go/pkg/gsheet/models"
)

// ErrMissingRange indicates a value range without the A1 range needed to
// interpret its values.
var ErrMissingRange = errors.New("value range is missing its range")

// ToCellList returns one cell per coordinate of vr.Range, rows outer and
// columns inner. Coordinates without a value in vr.Values get a nil Value.
//
// The value of a cell is read at offset (row-StartRow, col-StartColumn) of
// vr.Values. When vr.MajorDimension is COLUMNS the outer index of vr.Values
// is the column, so the offset is applied transposed; the order of the
// returned cells does not change.
func ToCellList(sheetID, sheetTitle string, vr models.ValueRange) ([]models.Cell, error) {
	g, letters, err := prepare(vr)
	if err != nil {
		return nil, err
	}

	cells := make([]models.Cell, 0, g.Rows()*g.Columns())
	walk(sheetID, sheetTitle, g, letters, vr, func(c models.Cell) {
		cells = append(cells, c)
	})
	return cells, nil
}

// ToColumnMap returns the same cells as ToCellList grouped by column letter,
// then by 1-based row index. Every column maps every row of the range.
func ToColumnMap(sheetID, sheetTitle string, vr models.ValueRange) (map[string]map[int]models.Cell, error) {
	g, letters, err := prepare(vr)
	if err != nil {
		return nil, err
	}

	byColumn := make(map[string]map[int]models.Cell, g.Columns())
	for _, col := range letters {
		byColumn[col] = make(map[int]models.Cell, g.Rows())
	}
	walk(sheetID, sheetTitle, g, letters, vr, func(c models.Cell) {
		byColumn[c.Column][c.RowIndex] = c
	})
	return byColumn, nil
}

// prepare parses the range and computes the column letters once per column.
func prepare(vr models.ValueRange) (a1.GridRange, []string, error) {
	if vr.Range == "" {
		return a1.GridRange{}, nil, ErrMissingRange
	}
	g, err := a1.ParseRange(vr.Range)
	if err != nil {
		return a1.GridRange{}, nil, err
	}

	letters := make([]string, 0, g.Columns())
	for col := g.StartColumn; col <= g.EndColumn; col++ {
		s, err := a1.FormatColumn(col)
		if err != nil {
			return a1.GridRange{}, nil, err
		}
		letters = append(letters, s)
	}
	return g, letters, nil
}

func walk(sheetID, sheetTitle string, g a1.GridRange, letters []string, vr models.ValueRange, emit func(models.Cell)) {
	for row := g.StartRow; row <= g.EndRow; row++ {
		for col := g.StartColumn; col <= g.EndColumn; col++ {
			j := col - g.StartColumn
			emit(models.Cell{
				Address:     fmt.Sprintf("%s%d", letters[j], row),
				SheetID:     sheetID,
				SheetTitle:  sheetTitle,
				Value:       lookup(vr, row-g.StartRow, j),
				Column:      letters[j],
				ColumnIndex: col,
				RowIndex:    row,
			})
		}
	}
}

// lookup returns the value at the zero-based row/column offset, or nil when
// the array is short at that position. COLUMNS-major arrays are indexed
// column first.
func lookup(vr models.ValueRange, i, j int) *string {
	if vr.MajorDimension == models.DimensionColumns {
		i, j = j, i
	}
	if i >= len(vr.Values) || j >= len(vr.Values[i]) {
		return nil
	}
	v := vr.Values[i][j]
	return &v
}
