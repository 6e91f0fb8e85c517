// Package excelize turns heading records into a spreadsheet: the tabulator
// lays rows out as a sparse cell map and the writer persists it as .xlsx.
package excelize

import (
	"github.com/fwojciec/docqa"
	"github.com/xuri/excelize/v2"
)

// Tabulate lays out a header row followed by one row per record, in record
// order. Columns A through L follow docqa.Columns; every cell is present in
// the map, including empty ones.
func Tabulate(records []docqa.HeadingRecord) (*docqa.Sheet, error) {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, docqa.Columns)
	for _, r := range records {
		rows = append(rows, docqa.NewRow(r).Values())
	}

	cells := make(map[string]string, len(rows)*len(docqa.Columns))
	for i, row := range rows {
		for j, v := range row {
			addr, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return nil, err
			}
			cells[addr] = v
		}
	}

	first, err := excelize.CoordinatesToCellName(1, 1)
	if err != nil {
		return nil, err
	}
	last, err := excelize.CoordinatesToCellName(len(docqa.Columns), len(rows))
	if err != nil {
		return nil, err
	}

	return &docqa.Sheet{
		Name:   docqa.DefaultSheetName,
		Cells:  cells,
		Ref:    first + ":" + last,
		Widths: docqa.ColumnWidths,
	}, nil
}
