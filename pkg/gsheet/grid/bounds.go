package grid

import (
	"github.com/ukaji3/gsheet-go/pkg/gsheet/a1"
	"github.com/ukaji3/gsheet-go/pkg/gsheet/models"
)

// UsedRange returns the smallest range inside vr.Range that covers every
// non-empty value. ok is false when vr holds no non-empty value.
func UsedRange(vr models.ValueRange) (used a1.GridRange, ok bool, err error) {
	g, _, err := prepare(vr)
	if err != nil {
		return a1.GridRange{}, false, err
	}

	minRow, maxRow, minCol, maxCol := -1, -1, -1, -1
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Columns(); j++ {
			v := lookup(vr, i, j)
			if v == nil || *v == "" {
				continue
			}
			if minRow < 0 || i < minRow {
				minRow = i
			}
			if i > maxRow {
				maxRow = i
			}
			if minCol < 0 || j < minCol {
				minCol = j
			}
			if j > maxCol {
				maxCol = j
			}
		}
	}
	if minRow < 0 {
		return a1.GridRange{}, false, nil
	}

	return a1.GridRange{
		StartRow:    g.StartRow + minRow,
		EndRow:      g.StartRow + maxRow,
		StartColumn: g.StartColumn + minCol,
		EndColumn:   g.StartColumn + maxCol,
	}, true, nil
}
