package excelize

import (
	"context"
	"fmt"

	"github.com/fwojciec/docqa"
	"github.com/xuri/excelize/v2"
)

// DefaultPath is the output file, relative to the working directory.
const DefaultPath = "output.xlsx"

// Ensure Writer implements docqa.SheetWriter at compile time.
var _ docqa.SheetWriter = (*Writer)(nil)

// Writer saves a sheet as a single-sheet workbook, overwriting any existing
// file at Path.
type Writer struct {
	Path string
}

// NewWriter creates a Writer saving to path.
func NewWriter(path string) *Writer {
	return &Writer{Path: path}
}

// WriteSheet implements docqa.SheetWriter.
func (w *Writer) WriteSheet(ctx context.Context, sheet *docqa.Sheet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if sheet.Name == "" {
		return docqa.Errorf(docqa.EINVALID, "sheet name required")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	for addr, v := range sheet.Cells {
		if err := f.SetCellStr(sheet.Name, addr, v); err != nil {
			return fmt.Errorf("setting cell %s: %w", addr, err)
		}
	}

	if sheet.Ref != "" {
		if err := f.SetSheetDimension(sheet.Name, sheet.Ref); err != nil {
			return fmt.Errorf("setting dimension %s: %w", sheet.Ref, err)
		}
	}

	for i, width := range sheet.Widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet.Name, col, col, width); err != nil {
			return fmt.Errorf("setting width of column %s: %w", col, err)
		}
	}

	if err := f.SaveAs(w.Path); err != nil {
		return fmt.Errorf("saving %s: %w", w.Path, err)
	}
	return nil
}
