package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/gsheet-go/pkg/gsheet/a1"
	"github.com/ukaji3/gsheet-go/pkg/gsheet/models"
)

func str(s string) *string { return &s }

func addresses(cells []models.Cell) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.Address
	}
	return out
}

func TestToCellList(t *testing.T) {
	vr := models.ValueRange{
		Range:  "Sheet1!A1:B2",
		Values: models.Values{{"1", "2"}, {"3", "4"}},
	}

	cells, err := ToCellList("ss-1", "Sheet1", vr)
	require.NoError(t, err)
	require.Len(t, cells, 4)
	assert.Equal(t, []string{"A1", "B1", "A2", "B2"}, addresses(cells))

	want := map[string]string{"A1": "1", "B1": "2", "A2": "3", "B2": "4"}
	for _, c := range cells {
		require.NotNil(t, c.Value, c.Address)
		assert.Equal(t, want[c.Address], *c.Value, c.Address)
		assert.Equal(t, "ss-1", c.SheetID)
		assert.Equal(t, "Sheet1", c.SheetTitle)
	}

	assert.Equal(t, models.Cell{
		Address:     "B2",
		SheetID:     "ss-1",
		SheetTitle:  "Sheet1",
		Value:       str("4"),
		Column:      "B",
		ColumnIndex: 2,
		RowIndex:    2,
	}, cells[3])
}

func TestToCellListRagged(t *testing.T) {
	vr := models.ValueRange{
		Range:  "A1:C1",
		Values: models.Values{{"x"}},
	}

	cells, err := ToCellList("ss", "S", vr)
	require.NoError(t, err)
	require.Len(t, cells, 3)
	assert.Equal(t, []string{"A1", "B1", "C1"}, addresses(cells))
	assert.Equal(t, str("x"), cells[0].Value)
	assert.Nil(t, cells[1].Value)
	assert.Nil(t, cells[2].Value)
}

func TestToCellListShortRows(t *testing.T) {
	// rows after the last non-empty one are omitted by the API
	vr := models.ValueRange{
		Range:  "A1:B3",
		Values: models.Values{{"a", "b"}, {"", "d"}},
	}

	cells, err := ToCellList("ss", "S", vr)
	require.NoError(t, err)
	require.Len(t, cells, 6)

	assert.Equal(t, str(""), cells[2].Value, "empty string is present, not absent")
	assert.Equal(t, str("d"), cells[3].Value)
	assert.Nil(t, cells[4].Value)
	assert.Nil(t, cells[5].Value)
}

func TestToCellListNoValues(t *testing.T) {
	cells, err := ToCellList("ss", "S", models.ValueRange{Range: "B2:C3"})
	require.NoError(t, err)
	require.Len(t, cells, 4)
	for _, c := range cells {
		assert.Nil(t, c.Value, c.Address)
		assert.Equal(t, "", c.Text())
	}
}

func TestToCellListOffset(t *testing.T) {
	vr := models.ValueRange{
		Range:  "'Q1 data'!AA10:AB11",
		Values: models.Values{{"p", "q"}, {"r"}},
	}

	cells, err := ToCellList("ss", "Q1 data", vr)
	require.NoError(t, err)
	assert.Equal(t, []string{"AA10", "AB10", "AA11", "AB11"}, addresses(cells))
	assert.Equal(t, 27, cells[0].ColumnIndex)
	assert.Equal(t, 10, cells[0].RowIndex)
	assert.Equal(t, "AB", cells[1].Column)
	assert.Equal(t, str("r"), cells[2].Value)
	assert.Nil(t, cells[3].Value)
}

func TestToCellListColumnsMajor(t *testing.T) {
	vr := models.ValueRange{
		Range:          "A1:B3",
		MajorDimension: models.DimensionColumns,
		Values:         models.Values{{"a1", "a2", "a3"}, {"b1"}},
	}

	cells, err := ToCellList("ss", "S", vr)
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "B1", "A2", "B2", "A3", "B3"}, addresses(cells))

	got := make(map[string]*string, len(cells))
	for _, c := range cells {
		got[c.Address] = c.Value
	}
	assert.Equal(t, str("a1"), got["A1"])
	assert.Equal(t, str("a3"), got["A3"])
	assert.Equal(t, str("b1"), got["B1"])
	assert.Nil(t, got["B2"])
	assert.Nil(t, got["B3"])
}

func TestToCellListCardinality(t *testing.T) {
	for _, rng := range []string{"A1", "A1:Z1", "C3:E40", "Sheet!AA1:AC5"} {
		g, err := a1.ParseRange(rng)
		require.NoError(t, err)

		cells, err := ToCellList("ss", "S", models.ValueRange{Range: rng})
		require.NoError(t, err)
		require.Len(t, cells, g.Rows()*g.Columns(), rng)

		seen := make(map[string]bool, len(cells))
		for _, c := range cells {
			assert.False(t, seen[c.Address], "duplicate %s", c.Address)
			seen[c.Address] = true
		}
	}
}

func TestMissingRange(t *testing.T) {
	vr := models.ValueRange{Values: models.Values{{"1"}}}

	_, err := ToCellList("ss", "S", vr)
	assert.ErrorIs(t, err, ErrMissingRange)

	_, err = ToColumnMap("ss", "S", vr)
	assert.ErrorIs(t, err, ErrMissingRange)

	_, _, err = UsedRange(vr)
	assert.ErrorIs(t, err, ErrMissingRange)
}

func TestInvalidRange(t *testing.T) {
	tests := []struct {
		rng string
		err error
	}{
		{"B2:A1", a1.ErrInvalidRange},
		{"A1:B2:C3", a1.ErrInvalidRange},
		{"1A", a1.ErrInvalidReference},
		{"A1:ZZZZZZ2147483647", a1.ErrInvalidRange},
		{"A1:XFD1048576", a1.ErrInvalidRange},
	}
	for _, tt := range tests {
		cells, err := ToCellList("ss", "S", models.ValueRange{Range: tt.rng})
		assert.ErrorIs(t, err, tt.err, tt.rng)
		assert.Nil(t, cells)

		byCol, err := ToColumnMap("ss", "S", models.ValueRange{Range: tt.rng})
		assert.ErrorIs(t, err, tt.err, tt.rng)
		assert.Nil(t, byCol)
	}
}

func TestToColumnMap(t *testing.T) {
	vr := models.ValueRange{
		Range:  "A1:B2",
		Values: models.Values{{"1", "2"}, {"3", "4"}},
	}

	byCol, err := ToColumnMap("ss", "S", vr)
	require.NoError(t, err)
	require.Len(t, byCol, 2)

	cells, err := ToCellList("ss", "S", vr)
	require.NoError(t, err)
	for _, c := range cells {
		assert.Equal(t, c, byCol[c.Column][c.RowIndex])
	}

	for _, col := range []string{"A", "B"} {
		rows := byCol[col]
		require.Len(t, rows, 2, col)
		assert.Contains(t, rows, 1)
		assert.Contains(t, rows, 2)
	}
}

func TestToColumnMapKeepsAbsentRows(t *testing.T) {
	vr := models.ValueRange{
		Range:  "C5:D8",
		Values: models.Values{{"only"}},
	}

	byCol, err := ToColumnMap("ss", "S", vr)
	require.NoError(t, err)
	require.Len(t, byCol, 2)
	for _, col := range []string{"C", "D"} {
		rows := byCol[col]
		require.Len(t, rows, 4, col)
		for row := 5; row <= 8; row++ {
			c, ok := rows[row]
			require.True(t, ok, "%s%d", col, row)
			if col == "C" && row == 5 {
				assert.Equal(t, str("only"), c.Value)
			} else {
				assert.Nil(t, c.Value)
			}
		}
	}
}
