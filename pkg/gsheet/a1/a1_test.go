package a1

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		ref      string
		col, row int
	}{
		{"A1", 1, 1},
		{"B3", 2, 3},
		{"Z9", 26, 9},
		{"AA10", 27, 10},
		{"az2", 52, 2},
		{"XFD1048576", 16384, 1048576},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			col, row, err := ParseCell(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.col, col)
			assert.Equal(t, tt.row, row)
		})
	}
}

func TestParseCellInvalid(t *testing.T) {
	for _, ref := range []string{"1A", "", "A", "A0", "7", "A1B", "A-1", "$A$1", "Ä1", "A 1", "ZZZZZZZZ1", "A99999999999"} {
		t.Run(ref, func(t *testing.T) {
			_, _, err := ParseCell(ref)
			assert.ErrorIs(t, err, ErrInvalidReference)
		})
	}
}

func TestFormatColumn(t *testing.T) {
	tests := []struct {
		col  int
		want string
	}{
		{1, "A"},
		{26, "Z"},
		{27, "AA"},
		{52, "AZ"},
		{53, "BA"},
		{702, "ZZ"},
		{703, "AAA"},
		{16384, "XFD"},
	}
	for _, tt := range tests {
		got, err := FormatColumn(tt.col)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "column %d", tt.col)
	}

	_, err := FormatColumn(0)
	assert.ErrorIs(t, err, ErrInvalidReference)
	_, err = FormatColumn(-3)
	assert.ErrorIs(t, err, ErrInvalidReference)
	_, err = FormatColumn(1 << 40)
	assert.ErrorIs(t, err, ErrInvalidReference)

	widest, err := FormatColumn(maxIndex)
	require.NoError(t, err)
	col, _, err := ParseCell(widest + "1")
	require.NoError(t, err)
	assert.Equal(t, maxIndex, col)
}

func TestColumnRoundTrip(t *testing.T) {
	for n := 1; n <= 1000; n++ {
		letters, err := FormatColumn(n)
		require.NoError(t, err)

		col, row, err := ParseCell(letters + "1")
		require.NoError(t, err)
		require.Equal(t, n, col)
		require.Equal(t, 1, row)

		// excelize implements the same numbering independently
		want, err := excelize.ColumnNumberToName(n)
		require.NoError(t, err)
		require.Equal(t, want, letters)
	}
}

func TestParseCellMatchesExcelize(t *testing.T) {
	for _, ref := range []string{"A1", "C7", "AB12", "ZZ999", "AAA1000"} {
		col, row, err := ParseCell(ref)
		require.NoError(t, err)
		wantCol, wantRow, err := excelize.CellNameToCoordinates(ref)
		require.NoError(t, err)
		assert.Equal(t, wantCol, col, ref)
		assert.Equal(t, wantRow, row, ref)
	}
}

func TestCellName(t *testing.T) {
	name, err := CellName(28, 4)
	require.NoError(t, err)
	assert.Equal(t, "AB4", name)

	_, err = CellName(1, 0)
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestSplitSheet(t *testing.T) {
	tests := []struct {
		in         string
		sheet, rng string
	}{
		{"Sheet1!A1:B2", "Sheet1", "A1:B2"},
		{"'My Sheet'!C3", "My Sheet", "C3"},
		{"'Bob''s data'!A1", "Bob's data", "A1"},
		{"!A1", "", "A1"},
	}
	for _, tt := range tests {
		sheet, rng, err := SplitSheet(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.sheet, sheet)
		assert.Equal(t, tt.rng, rng)
	}

	// a '!' inside a quoted title counts as a separator
	for _, bad := range []string{"A1:B2", "Sheet1!Sheet2!A1", "'Q&A!'!A1"} {
		_, _, err := SplitSheet(bad)
		assert.ErrorIs(t, err, ErrInvalidRange, bad)
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		in   string
		want GridRange
	}{
		{"A1:B10", GridRange{StartRow: 1, EndRow: 10, StartColumn: 1, EndColumn: 2}},
		{"A1", GridRange{StartRow: 1, EndRow: 1, StartColumn: 1, EndColumn: 1}},
		{"Sheet1!C2:D4", GridRange{StartRow: 2, EndRow: 4, StartColumn: 3, EndColumn: 4}},
		{"'Q1 2024'!AA1:AB2", GridRange{StartRow: 1, EndRow: 2, StartColumn: 27, EndColumn: 28}},
		{" b2:c3 ", GridRange{StartRow: 2, EndRow: 3, StartColumn: 2, EndColumn: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRange(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRangeInvalid(t *testing.T) {
	tests := []struct {
		in        string
		reference bool
	}{
		{"A1:B2:C3", false},
		{"Sheet1!Sheet2!A1", false},
		{"B10:A1", false},
		{"A2:B1", false},
		{"A1:", true},
		{"A1:B", true},
		{"", true},
		{"Sheet1!", true},
		{"A1:ZZZZZZ2147483647", false},
		{"A1:AAAA1", false},
		{"A1:ZZ1000000", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseRange(tt.in)
			require.ErrorIs(t, err, ErrInvalidRange)

			var rerr *RangeError
			require.True(t, errors.As(err, &rerr))
			assert.Equal(t, tt.reference, errors.Is(err, ErrInvalidReference))
		})
	}
}

func TestParseRangeLimits(t *testing.T) {
	g, err := ParseRange("A1:ZZZ1")
	require.NoError(t, err)
	assert.Equal(t, MaxColumns, g.EndColumn)

	g, err = ParseRange("A1:J1000000")
	require.NoError(t, err)
	assert.Equal(t, MaxCells, g.Rows()*g.Columns())

	_, err = ParseRange("A1:J1000001")
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestQualifyRange(t *testing.T) {
	assert.Equal(t, "'Sheet1'!A1:B2", QualifyRange("Sheet1", "A1:B2"), "SHEET1 is a cell reference")
	assert.Equal(t, "Summary!A1:B2", QualifyRange("Summary", "A1:B2"))
	assert.Equal(t, "'Sheet1'", QualifyRange("Sheet1", ""))
	assert.Equal(t, "'FY2024'", QualifyRange("FY2024", ""))
	assert.Equal(t, "'FY2024'!A1:B2", QualifyRange("FY2024", "A1:B2"))
	assert.Equal(t, "'q1'!C3", QualifyRange("q1", "C3"))
	assert.Equal(t, "'R1C1'!A1", QualifyRange("R1C1", "A1"))
	assert.Equal(t, "Data_2024!A1", QualifyRange("Data_2024", "A1"))
	assert.Equal(t, "'My Sheet'!A1", QualifyRange("My Sheet", "A1"))
	assert.Equal(t, "'Bob''s'!A1", QualifyRange("Bob's", "A1"))

	sheet, rng, err := SplitSheet(QualifyRange("Bob's data", "C3"))
	require.NoError(t, err)
	assert.Equal(t, "Bob's data", sheet)
	assert.Equal(t, "C3", rng)
}

func TestGridRange(t *testing.T) {
	g, err := ParseRange("B2:D5")
	require.NoError(t, err)

	assert.Equal(t, 4, g.Rows())
	assert.Equal(t, 3, g.Columns())
	assert.True(t, g.Contains(2, 2))
	assert.True(t, g.Contains(4, 5))
	assert.False(t, g.Contains(1, 2))
	assert.False(t, g.Contains(2, 6))
	assert.Equal(t, "B2:D5", g.String())

	single, err := ParseRange("C7")
	require.NoError(t, err)
	assert.Equal(t, "C7", single.String())

	assert.Equal(t, "", GridRange{}.String())
}

func TestGridRangeWire(t *testing.T) {
	g, err := ParseRange("B2:D5")
	require.NoError(t, err)

	w := g.ToWire(42)
	assert.Equal(t, 42, w.SheetID)
	assert.Equal(t, 1, w.StartRowIndex)
	assert.Equal(t, 5, w.EndRowIndex)
	assert.Equal(t, 1, w.StartColumnIndex)
	assert.Equal(t, 4, w.EndColumnIndex)

	back, err := FromWire(w)
	require.NoError(t, err)
	assert.Equal(t, g, back)

	corner, err := ParseRange("A1")
	require.NoError(t, err)
	back, err = FromWire(corner.ToWire(0))
	require.NoError(t, err)
	assert.Equal(t, corner, back)

	w.EndRowIndex = 0
	_, err = FromWire(w)
	assert.ErrorIs(t, err, ErrInvalidRange)
}
