// Package models defines the Sheets API wire structures and the addressed
// cell records built from them.
package models

// Cell is one addressed unit of grid data.
type Cell struct {
	// Address is the A1 address (e.g. "B3").
	Address string `json:"address"`
	// SheetID identifies the spreadsheet the cell was read from.
	SheetID string `json:"sheet_id"`
	// SheetTitle is the title of the sheet the cell was read from.
	SheetTitle string `json:"sheet_title"`
	// Value is the cell text, nil when the response had no entry for it.
	Value *string `json:"value"`
	// Column is the column letter(s) (e.g. "B").
	Column string `json:"col"`
	// ColumnIndex is the 1-based column index.
	ColumnIndex int `json:"col_index"`
	// RowIndex is the 1-based row index.
	RowIndex int `json:"row_index"`
}

// Text returns the cell value or an empty string when absent.
func (c Cell) Text() string {
	if c.Value == nil {
		return ""
	}
	return *c.Value
}
