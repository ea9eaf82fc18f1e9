package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/gsheet-go/pkg/gsheet"
	"github.com/ukaji3/gsheet-go/pkg/gsheet/grid"
	"github.com/ukaji3/gsheet-go/pkg/gsheet/models"
	"github.com/ukaji3/gsheet-go/pkg/gsheet/output"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print spreadsheet metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := openSpreadsheet(cmd.Context())
			if err != nil {
				return err
			}
			meta, err := ss.Get(cmd.Context(), gsheet.GetOptions{})
			if err != nil {
				return err
			}
			return printJSON(cmd, meta)
		},
	}
}

func newValuesCmd() *cobra.Command {
	var rng, major, render string
	cmd := &cobra.Command{
		Use:   "values SHEET",
		Short: "Print the raw value range of a sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := valuesOptions(major, render)
			if err != nil {
				return err
			}
			vr, err := readValues(cmd, args[0], rng, opts)
			if err != nil {
				return err
			}
			return printJSON(cmd, vr)
		},
	}
	cmd.Flags().StringVar(&rng, "range", "", "A1 range within the sheet (default: whole sheet)")
	cmd.Flags().StringVar(&major, "major", "rows", "Major dimension: rows, columns")
	cmd.Flags().StringVar(&render, "render", "formatted", "Value rendering: formatted, unformatted, formula")
	return cmd
}

func newCellsCmd() *cobra.Command {
	var rng string
	var byColumn, usedRange bool
	cmd := &cobra.Command{
		Use:   "cells SHEET",
		Short: "Print the addressed cells of a sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := args[0]
			vr, err := readValues(cmd, title, rng, gsheet.ValuesOptions{})
			if err != nil {
				return err
			}
			switch {
			case usedRange:
				used, ok, err := grid.UsedRange(*vr)
				if err != nil {
					return err
				}
				if !ok {
					return printJSON(cmd, nil)
				}
				return printJSON(cmd, used.String())
			case byColumn:
				byCol, err := grid.ToColumnMap(cfg.SpreadsheetID, title, *vr)
				if err != nil {
					return err
				}
				return printJSON(cmd, byCol)
			default:
				cells, err := grid.ToCellList(cfg.SpreadsheetID, title, *vr)
				if err != nil {
					return err
				}
				return printJSON(cmd, cells)
			}
		},
	}
	cmd.Flags().StringVar(&rng, "range", "", "A1 range within the sheet (default: whole sheet)")
	cmd.Flags().BoolVar(&byColumn, "by-column", false, "Group cells by column letter, then row")
	cmd.Flags().BoolVar(&usedRange, "used-range", false, "Print only the range covering non-empty values")
	return cmd
}

func newUpdateCmd() *cobra.Command {
	var valuesJSON string
	var raw bool
	cmd := &cobra.Command{
		Use:     "update SHEET RANGE",
		Short:   "Write values into a range",
		Example: `  gsheet update Sheet1 A1:B2 --values '[["a", 1], ["b", 2]]'`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var values models.Values
			if err := json.Unmarshal([]byte(valuesJSON), &values); err != nil {
				return fmt.Errorf("invalid --values: %w", err)
			}
			opts := gsheet.UpdateOptions{}
			if raw {
				opts.ValueInputOption = models.Raw
			}
			ss, err := openSpreadsheet(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := ss.Sheet(args[0]).Update(cmd.Context(), args[1], values, opts)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
	cmd.Flags().StringVar(&valuesJSON, "values", "", "Rows of values as a JSON array of arrays")
	cmd.Flags().BoolVar(&raw, "raw", false, "Store values as typed instead of parsing them")
	_ = cmd.MarkFlagRequired("values")
	return cmd
}

func newExportCmd() *cobra.Command {
	var outputPath, rng, charset string
	cmd := &cobra.Command{
		Use:   "export SHEET",
		Short: "Export a sheet to .json, .csv, .xlsx or .parquet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := args[0]
			ext := strings.ToLower(filepath.Ext(outputPath))
			switch ext {
			case ".json", ".csv", ".xlsx", ".parquet":
			default:
				return fmt.Errorf("unsupported output format %q (must be .json, .csv, .xlsx or .parquet)", ext)
			}

			vr, err := readValues(cmd, title, rng, gsheet.ValuesOptions{})
			if err != nil {
				return err
			}
			cells, err := grid.ToCellList(cfg.SpreadsheetID, title, *vr)
			if err != nil {
				return err
			}

			fh, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("failed to create output: %w", err)
			}
			defer fh.Close()

			switch ext {
			case ".json":
				var data []byte
				if data, err = output.ToJSON(cells, pretty); err == nil {
					_, err = fh.Write(data)
				}
			case ".csv":
				err = output.WriteCSV(fh, cells, charset)
			case ".xlsx":
				err = output.WriteXLSX(fh, title, cells)
			case ".parquet":
				err = output.WriteParquet(fh, cells)
			}
			if err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			if err := fh.Close(); err != nil {
				return err
			}
			logger.Info("exported", "sheet", title, "cells", len(cells), "path", outputPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path")
	cmd.Flags().StringVar(&rng, "range", "", "A1 range within the sheet (default: whole sheet)")
	cmd.Flags().StringVar(&charset, "charset", "utf-8", "CSV character set")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump [SHEET...]",
		Short: "Print the cells of several sheets (default: all sheets)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := openSpreadsheet(cmd.Context())
			if err != nil {
				return err
			}
			titles := args
			if len(titles) == 0 {
				meta, err := ss.Get(cmd.Context(), gsheet.GetOptions{})
				if err != nil {
					return err
				}
				for _, sh := range meta.Sheets {
					if sh.Properties == nil {
						continue
					}
					if sh.Properties.SheetType == models.SheetTypeGrid || sh.Properties.SheetType == "" {
						titles = append(titles, sh.Properties.Title)
					}
				}
			}
			cells, err := ss.SheetCells(cmd.Context(), titles, gsheet.ValuesOptions{})
			if err != nil {
				return err
			}
			return printJSON(cmd, cells)
		},
	}
}

func readValues(cmd *cobra.Command, title, rng string, opts gsheet.ValuesOptions) (*models.ValueRange, error) {
	ss, err := openSpreadsheet(cmd.Context())
	if err != nil {
		return nil, err
	}
	sheet := ss.Sheet(title)
	if rng == "" {
		return sheet.Values(cmd.Context(), opts)
	}
	return sheet.RangeValues(cmd.Context(), rng, opts)
}

func valuesOptions(major, render string) (gsheet.ValuesOptions, error) {
	var opts gsheet.ValuesOptions
	switch major {
	case "rows":
		opts.MajorDimension = models.DimensionRows
	case "columns":
		opts.MajorDimension = models.DimensionColumns
	default:
		return opts, fmt.Errorf("invalid major dimension: %s (must be rows or columns)", major)
	}
	switch render {
	case "formatted":
		opts.ValueRenderOption = models.FormattedValue
	case "unformatted":
		opts.ValueRenderOption = models.UnformattedValue
	case "formula":
		opts.ValueRenderOption = models.Formula
	default:
		return opts, fmt.Errorf("invalid render option: %s (must be formatted, unformatted or formula)", render)
	}
	return opts, nil
}
