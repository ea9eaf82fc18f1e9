// Package a1 converts between A1-notation references and numeric
// spreadsheet coordinates.
package a1

import (
	"fmt"
	"math"
	"strings"
)

// maxIndex bounds parsed indices so accumulation cannot overflow.
const maxIndex = math.MaxInt32

// Limits of a Sheets grid. Ranges beyond them are rejected by ParseRange.
const (
	// MaxColumns is the index of column ZZZ.
	MaxColumns = 18278
	// MaxCells is the cell limit of a spreadsheet.
	MaxCells = 10_000_000
)

// ParseCell parses a single cell reference such as "B3" and returns its
// 1-based column and row indices. Letters are case-insensitive.
func ParseCell(ref string) (col, row int, err error) {
	inColumn := true
	for i := 0; i < len(ref); i++ {
		c := ref[i]
		switch {
		case inColumn && isLetter(c):
			col = col*26 + int(upper(c)-'A') + 1
		case isDigit(c):
			inColumn = false
			row = row*10 + int(c-'0')
		default:
			return 0, 0, fmt.Errorf("%w: %q: unexpected character %q", ErrInvalidReference, ref, c)
		}
		if col > maxIndex || row > maxIndex {
			return 0, 0, fmt.Errorf("%w: %q: index out of range", ErrInvalidReference, ref)
		}
	}
	if col == 0 || row == 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidReference, ref)
	}
	return col, row, nil
}

// FormatColumn returns the column letters for a 1-based column index
// (1 -> "A", 26 -> "Z", 27 -> "AA").
func FormatColumn(col int) (string, error) {
	if col <= 0 || col > maxIndex {
		return "", fmt.Errorf("%w: column index %d", ErrInvalidReference, col)
	}
	var buf [8]byte
	i := len(buf)
	for col > 0 {
		i--
		buf[i] = byte('A' + (col-1)%26)
		col = (col - 1) / 26
	}
	return string(buf[i:]), nil
}

// CellName formats a 1-based coordinate pair as an A1 address.
func CellName(col, row int) (string, error) {
	if row <= 0 {
		return "", fmt.Errorf("%w: row index %d", ErrInvalidReference, row)
	}
	letters, err := FormatColumn(col)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", letters, row), nil
}

// SplitSheet separates "Sheet1!A1:B2" into its sheet name and range text.
// Surrounding single quotes are removed from the sheet name and doubled
// quotes inside it are unescaped.
func SplitSheet(text string) (sheet, rng string, err error) {
	text = strings.TrimSpace(text)
	parts := strings.Split(text, "!")
	if len(parts) != 2 {
		return "", "", &RangeError{Range: text, Reason: "expected exactly one '!' separator"}
	}
	sheet = parts[0]
	if len(sheet) >= 2 && sheet[0] == '\'' && sheet[len(sheet)-1] == '\'' {
		sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
	}
	return sheet, parts[1], nil
}

// ParseRange parses "A1:B10", "A1" or "Sheet1!A1:B10" into a GridRange.
// The sheet qualifier, when present, is discarded. Ranges whose end lies
// before their start are rejected, as are ranges reaching past column
// MaxColumns or covering more than MaxCells cells.
func ParseRange(text string) (GridRange, error) {
	rng := strings.TrimSpace(text)
	if strings.Contains(rng, "!") {
		var err error
		if _, rng, err = SplitSheet(rng); err != nil {
			return GridRange{}, err
		}
	}

	parts := strings.Split(rng, ":")
	var start, end string
	switch len(parts) {
	case 1:
		start, end = parts[0], parts[0]
	case 2:
		start, end = parts[0], parts[1]
	default:
		return GridRange{}, &RangeError{Range: text, Reason: "expected at most one ':' separator"}
	}

	startCol, startRow, err := ParseCell(start)
	if err != nil {
		return GridRange{}, &RangeError{Range: text, Err: err}
	}
	endCol, endRow, err := ParseCell(end)
	if err != nil {
		return GridRange{}, &RangeError{Range: text, Err: err}
	}

	g := GridRange{
		StartRow:    startRow,
		EndRow:      endRow,
		StartColumn: startCol,
		EndColumn:   endCol,
	}
	if g.StartRow > g.EndRow || g.StartColumn > g.EndColumn {
		return GridRange{}, &RangeError{Range: text, Reason: "end precedes start"}
	}
	if g.EndColumn > MaxColumns {
		return GridRange{}, &RangeError{Range: text, Reason: "column beyond ZZZ"}
	}
	if g.Rows() > MaxCells/g.Columns() {
		return GridRange{}, &RangeError{Range: text, Reason: "range exceeds the spreadsheet cell limit"}
	}
	return g, nil
}

func isLetter(c byte) bool { return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z') }

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// QualifyRange prefixes rng with a sheet name. The name is quoted when it
// contains anything other than ASCII letters, digits and underscores, when
// it could be read as a cell reference, and always when rng is empty so a
// bare title is never taken for a range.
func QualifyRange(sheet, rng string) string {
	if rng == "" || needsQuote(sheet) {
		sheet = "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
	}
	if rng == "" {
		return sheet
	}
	return sheet + "!" + rng
}

func needsQuote(sheet string) bool {
	if sheet == "" {
		return true
	}
	for i := 0; i < len(sheet); i++ {
		c := sheet[i]
		if !isLetter(c) && !isDigit(c) && c != '_' {
			return true
		}
	}
	return looksLikeReference(sheet)
}

// looksLikeReference reports whether a bare sheet name would parse as an
// A1 cell ("FY2024") or an R1C1 cell ("R1C1").
func looksLikeReference(sheet string) bool {
	if _, _, err := ParseCell(sheet); err == nil {
		return true
	}
	s := strings.ToUpper(sheet)
	if !strings.HasPrefix(s, "R") {
		return false
	}
	row, col, ok := strings.Cut(s[1:], "C")
	return ok && allDigits(row) && allDigits(col)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
