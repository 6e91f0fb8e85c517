package docqa

import (
	"context"
	"fmt"
)

// Columns is the fixed spreadsheet schema, in column order.
var Columns = []string{
	"question",
	"question_type",
	"language",
	"answer_url",
	"answer_type",
	"answer_content",
	"product",
	"platform",
	"is_public",
	"error_code",
	"_ignore",
	"question_index",
}

// ColumnWidths are the width hints for Columns, in characters.
var ColumnWidths = []float64{60, 15, 10, 120, 15, 15, 15, 15, 15, 15, 15, 15}

// Constant cell values for document link answers.
const (
	AnswerTypeDocumentLink = "文档链接"
	AnswerContentNone      = "/"
)

// Row is the tabular projection of a HeadingRecord. Fields without a source
// are left empty for manual editing downstream.
type Row struct {
	Question      string
	QuestionType  string
	Language      string
	AnswerURL     string
	AnswerType    string
	AnswerContent string
	Product       string
	Platform      string
	IsPublic      string
	ErrorCode     string
	Ignore        string
	QuestionIndex string
}

// NewRow projects a heading record into a row.
func NewRow(r HeadingRecord) Row {
	return Row{
		Question:      r.Title,
		Language:      r.Language,
		AnswerURL:     fmt.Sprintf(`<a href="%s">%s</a>`, r.Href, r.Title),
		AnswerType:    AnswerTypeDocumentLink,
		AnswerContent: AnswerContentNone,
		Product:       r.Product,
		Platform:      r.Platform,
	}
}

// Values returns the row's cells in Columns order.
func (r Row) Values() []string {
	return []string{
		r.Question,
		r.QuestionType,
		r.Language,
		r.AnswerURL,
		r.AnswerType,
		r.AnswerContent,
		r.Product,
		r.Platform,
		r.IsPublic,
		r.ErrorCode,
		r.Ignore,
		r.QuestionIndex,
	}
}

// DefaultSheetName is the name of the single worksheet in the output workbook.
const DefaultSheetName = "mySheet"

// Sheet describes a single-sheet workbook as a sparse cell map.
type Sheet struct {
	Name string

	// Cells maps cell addresses (e.g. "B7") to their values.
	Cells map[string]string

	// Ref is the address range from the first to the last populated cell.
	Ref string

	// Widths holds per-column width hints, starting at column A.
	Widths []float64
}

// SheetWriter persists a sheet.
type SheetWriter interface {
	WriteSheet(ctx context.Context, sheet *Sheet) error
}
