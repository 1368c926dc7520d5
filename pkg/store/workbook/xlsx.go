package workbook

import (
	"fmt"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Built-in number formats that render as dates.
var builtinDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 46: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

type xlsxWorkbook struct {
	file       *excelize.File
	date1904   bool
	dateStyles map[int]bool
}

func OpenXLSX(path string) (Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx %s: %w", path, err)
	}
	wb := &xlsxWorkbook{file: f, dateStyles: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		wb.date1904 = *props.Date1904
	}
	return wb, nil
}

func (w *xlsxWorkbook) SheetNames() []string {
	return w.file.GetSheetList()
}

func (w *xlsxWorkbook) Close() error {
	return w.file.Close()
}

func (w *xlsxWorkbook) Grid(sheet string) (Grid, error) {
	if !slices.Contains(w.file.GetSheetList(), sheet) {
		return Grid{}, fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}

	rows, err := w.file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return Grid{}, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}

	cells := make([][]Cell, len(rows))
	for r, row := range rows {
		cells[r] = make([]Cell, len(row))
		for c, raw := range row {
			cells[r][c] = w.cell(sheet, r, c, raw)
		}
	}
	return NewGrid(cells), nil
}

// cell types a raw value using the stored cell type. String cells stay text
// even when they spell a number, so labels such as "007" or "nan" survive.
func (w *xlsxWorkbook) cell(sheet string, row, col int, raw string) Cell {
	ref, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return classify(raw)
	}
	typ, err := w.file.GetCellType(sheet, ref)
	if err == nil {
		switch typ {
		case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
			if strings.TrimSpace(raw) == "" {
				return Empty()
			}
			return Text(raw)
		}
	}

	cell := classify(raw)
	if cell.IsNumber() && w.isDateCell(sheet, ref) {
		if t, err := excelize.ExcelDateToTime(cell.Number, w.date1904); err == nil {
			cell = Date(t)
		}
	}
	return cell
}

func (w *xlsxWorkbook) isDateCell(sheet, ref string) bool {
	styleID, err := w.file.GetCellStyle(sheet, ref)
	if err != nil || styleID == 0 {
		return false
	}
	if isDate, ok := w.dateStyles[styleID]; ok {
		return isDate
	}

	isDate := false
	if style, err := w.file.GetStyle(styleID); err == nil && style != nil {
		isDate = builtinDateFormats[style.NumFmt]
		if !isDate && style.CustomNumFmt != nil {
			isDate = isDateFormat(*style.CustomNumFmt)
		}
	}
	w.dateStyles[styleID] = isDate
	return isDate
}

// isDateFormat inspects a custom number format for date tokens, ignoring quoted
// literals, escaped characters and bracketed sections such as colors or locales.
func isDateFormat(format string) bool {
	var b strings.Builder
	inQuote, inBracket, escaped := false, false, false
	for _, r := range format {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			inQuote = !inQuote
		case inQuote:
		case r == '[':
			inBracket = true
		case r == ']':
			inBracket = false
		case inBracket:
		default:
			b.WriteRune(r)
		}
	}
	tokens := strings.ToLower(b.String())
	if strings.ContainsAny(tokens, "yd") {
		return true
	}
	return strings.Contains(tokens, "m") && !strings.ContainsAny(tokens, "hs")
}
