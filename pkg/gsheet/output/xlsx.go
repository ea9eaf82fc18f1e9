package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ukaji3/gsheet-go/pkg/gsheet/models"
	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes cells into a single-sheet workbook named sheetTitle.
// Cells keep their A1 addresses; numeric text is stored as numbers.
func WriteXLSX(w io.Writer, sheetTitle string, cells []models.Cell) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	if sheetTitle != "" && sheetTitle != sheet {
		if err := f.SetSheetName(sheet, sheetTitle); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
		sheet = sheetTitle
	}

	for _, c := range cells {
		if c.Value == nil || *c.Value == "" {
			continue
		}
		var v any = *c.Value
		if n, err := strconv.ParseFloat(*c.Value, 64); err == nil {
			v = n
		}
		if err := f.SetCellValue(sheet, c.Address, v); err != nil {
			return fmt.Errorf("set %s: %w", c.Address, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
