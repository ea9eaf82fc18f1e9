package output

import (
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
	"github.com/ukaji3/gsheet-go/pkg/gsheet/models"
)

// CellRecord is the Parquet row layout of a cell.
type CellRecord struct {
	SpreadsheetID string  `parquet:"spreadsheet_id"`
	SheetTitle    string  `parquet:"sheet_title"`
	Address       string  `parquet:"address"`
	Column        string  `parquet:"col"`
	ColumnIndex   int32   `parquet:"col_index"`
	RowIndex      int32   `parquet:"row_index"`
	Value         *string `parquet:"value"`
}

// WriteParquet writes one zstd-compressed row per cell. Absent values are
// stored as nulls.
func WriteParquet(w io.Writer, cells []models.Cell) error {
	codec := &zstd.Codec{
		Level:       zstd.SpeedDefault,
		Concurrency: 4,
	}
	writer := parquet.NewGenericWriter[CellRecord](w,
		parquet.Compression(codec),
	)

	records := make([]CellRecord, len(cells))
	for i, c := range cells {
		records[i] = CellRecord{
			SpreadsheetID: c.SheetID,
			SheetTitle:    c.SheetTitle,
			Address:       c.Address,
			Column:        c.Column,
			ColumnIndex:   int32(c.ColumnIndex),
			RowIndex:      int32(c.RowIndex),
			Value:         c.Value,
		}
	}
	if _, err := writer.Write(records); err != nil {
		writer.Close()
		return fmt.Errorf("write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return nil
}
