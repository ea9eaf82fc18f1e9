package a1

import "github.com/ukaji3/gsheet-go/pkg/gsheet/models"

// GridRange is a rectangular bound with 1-based, inclusive indices on both
// axes. The Sheets API wire format uses 0-based, half-open indices instead;
// convert with ToWire and FromWire.
type GridRange struct {
	StartRow    int `json:"start_row"`
	EndRow      int `json:"end_row"`
	StartColumn int `json:"start_column"`
	EndColumn   int `json:"end_column"`
}

// Rows returns the number of rows covered.
func (g GridRange) Rows() int { return g.EndRow - g.StartRow + 1 }

// Columns returns the number of columns covered.
func (g GridRange) Columns() int { return g.EndColumn - g.StartColumn + 1 }

// Contains reports whether the 1-based coordinate lies inside the range.
func (g GridRange) Contains(col, row int) bool {
	return row >= g.StartRow && row <= g.EndRow && col >= g.StartColumn && col <= g.EndColumn
}

// String formats the range in A1 notation, collapsing 1x1 ranges to a
// single cell. Invalid bounds format as an empty string.
func (g GridRange) String() string {
	start, err := CellName(g.StartColumn, g.StartRow)
	if err != nil {
		return ""
	}
	if g.StartRow == g.EndRow && g.StartColumn == g.EndColumn {
		return start
	}
	end, err := CellName(g.EndColumn, g.EndRow)
	if err != nil {
		return ""
	}
	return start + ":" + end
}

// ToWire converts to the API's 0-based, half-open GridRange.
func (g GridRange) ToWire(sheetID int) models.GridRange {
	return models.GridRange{
		SheetID:          sheetID,
		StartRowIndex:    g.StartRow - 1,
		EndRowIndex:      g.EndRow,
		StartColumnIndex: g.StartColumn - 1,
		EndColumnIndex:   g.EndColumn,
	}
}

// FromWire converts an API GridRange into 1-based inclusive bounds.
// Empty or unbounded wire ranges are rejected.
func FromWire(w models.GridRange) (GridRange, error) {
	g := GridRange{
		StartRow:    w.StartRowIndex + 1,
		EndRow:      w.EndRowIndex,
		StartColumn: w.StartColumnIndex + 1,
		EndColumn:   w.EndColumnIndex,
	}
	if g.StartRow < 1 || g.StartColumn < 1 || g.StartRow > g.EndRow || g.StartColumn > g.EndColumn {
		return GridRange{}, &RangeError{Range: "wire", Reason: "empty or unbounded grid range"}
	}
	return g, nil
}
