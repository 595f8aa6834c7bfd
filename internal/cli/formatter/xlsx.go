package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/xuri/excelize/v2"
)

// maxSheetName is the tab name limit of the xlsx format.
const maxSheetName = 31

// WriteXLSX writes each sheet to its own tab of a workbook.
func WriteXLSX(w io.Writer, sheets ...Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("writing xlsx: no sheets")
	}

	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	for i, s := range sheets {
		name := sheetName(s.Name, i)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return fmt.Errorf("naming sheet %q: %w", name, err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("adding sheet %q: %w", name, err)
		}
		if err := writeSheet(f, name, s, bold); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing xlsx: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, name string, s Sheet, boldStyle int) error {
	rowNum := 1
	put := func(row table.Row, style int) error {
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		values := []any(row)
		if err := f.SetSheetRow(name, cell, &values); err != nil {
			return fmt.Errorf("writing row %d of %q: %w", rowNum, name, err)
		}
		if style != 0 && len(row) > 0 {
			last, err := excelize.CoordinatesToCellName(len(row), rowNum)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(name, cell, last, style); err != nil {
				return fmt.Errorf("styling row %d of %q: %w", rowNum, name, err)
			}
		}
		rowNum++
		return nil
	}

	if err := put(table.Row{s.Title}, boldStyle); err != nil {
		return err
	}
	rowNum++
	if err := put(s.Header, boldStyle); err != nil {
		return err
	}
	for _, row := range s.Rows {
		if err := put(row, 0); err != nil {
			return err
		}
	}
	if len(s.Footer) > 0 {
		if err := put(s.Footer, boldStyle); err != nil {
			return err
		}
	}
	if len(s.Header) > 0 {
		lastCol, err := excelize.ColumnNumberToName(len(s.Header))
		if err != nil {
			return err
		}
		if err := f.SetColWidth(name, "A", lastCol, 14); err != nil {
			return fmt.Errorf("sizing columns of %q: %w", name, err)
		}
	}
	return nil
}

// sheetName strips characters xlsx rejects in tab names and applies the
// length limit.
func sheetName(name string, index int) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '-'
		}
		return r
	}, strings.TrimSpace(name))
	if name == "" {
		name = fmt.Sprintf("Sheet%d", index+1)
	}
	if len(name) > maxSheetName {
		name = name[:maxSheetName]
	}
	return name
}
