// Package tabular reads xlsx workbooks into typed tables. Cells keep
// their spreadsheet storage type instead of a display string, so callers
// can tell an empty cell from the text "0" and a date from the serial
// number behind it.
package tabular

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ErrNoWorksheet is returned for workbooks that contain no worksheets.
var ErrNoWorksheet = errors.New("workbook has no worksheets")

type Options struct {
	// SkipRows drops this many leading worksheet rows before the header
	// row is taken.
	SkipRows int
}

// Read decodes the first worksheet of an xlsx workbook into a Table.
// The first row after SkipRows becomes the header and every following
// row becomes a data row.
func Read(r io.Reader, opts Options) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoWorksheet
	}

	props, err := f.GetWorkbookProps()
	if err != nil {
		return nil, fmt.Errorf("workbook properties: %w", err)
	}

	d := &decoder{
		file:       f,
		sheet:      sheets[0],
		date1904:   props.Date1904 != nil && *props.Date1904,
		dateStyles: make(map[int]bool),
	}

	raw, err := f.GetRows(d.sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read worksheet %q: %w", d.sheet, err)
	}

	rows := make([][]Cell, 0, len(raw))
	for i, rawRow := range raw {
		if i < opts.SkipRows {
			continue
		}
		cells := make([]Cell, len(rawRow))
		for j, rawCell := range rawRow {
			c, err := d.cell(i, j, rawCell)
			if err != nil {
				return nil, err
			}
			cells[j] = c
		}
		rows = append(rows, cells)
	}

	if len(rows) == 0 {
		return &Table{index: map[string]int{}}, nil
	}

	header := make([]string, len(rows[0]))
	for i, c := range rows[0] {
		header[i] = c.String()
	}

	return &Table{header: header, index: buildIndex(header), rows: rows[1:]}, nil
}

type decoder struct {
	file  *excelize.File
	sheet string

	// date1904 is the workbook's date system flag. Serial dates count
	// from the 1904 epoch when set, from 1900 otherwise.
	date1904 bool

	// dateStyles caches whether a style index formats as a date, keyed by
	// the style index shared across cells.
	dateStyles map[int]bool
}

// cell decodes one raw cell value. Row and column are zero based.
func (d *decoder) cell(row, col int, raw string) (Cell, error) {
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return Missing, fmt.Errorf("cell coordinates (%d, %d): %w", col+1, row+1, err)
	}

	ctype, err := d.file.GetCellType(d.sheet, name)
	if err != nil {
		return Missing, fmt.Errorf("cell %s type: %w", name, err)
	}

	switch ctype {
	case excelize.CellTypeBool:
		return BoolCell(raw != "0"), nil
	case excelize.CellTypeError:
		return Missing, nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		if raw == "" {
			return Missing, nil
		}
		return TextCell(raw), nil
	case excelize.CellTypeDate:
		return isoDateCell(raw), nil
	}

	// Numeric storage carries no type attribute, so untyped and numeric
	// cells both land here and the raw text decides. ParseFloat accepts
	// forms like "NaN" and "Inf" that have no JSON encoding; those stay
	// text.
	if raw == "" {
		return Missing, nil
	}
	num, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(num) || math.IsInf(num, 0) {
		return TextCell(raw), nil
	}

	dated, err := d.dateStyled(name)
	if err != nil {
		return Missing, err
	}
	if dated {
		if t, err := excelize.ExcelDateToTime(num, d.date1904); err == nil {
			return TimeCell(t), nil
		}
	}
	return NumberCell(num), nil
}

func (d *decoder) dateStyled(cell string) (bool, error) {
	styleID, err := d.file.GetCellStyle(d.sheet, cell)
	if err != nil {
		return false, fmt.Errorf("cell %s style: %w", cell, err)
	}
	if dated, ok := d.dateStyles[styleID]; ok {
		return dated, nil
	}

	style, err := d.file.GetStyle(styleID)
	if err != nil {
		return false, fmt.Errorf("style %d: %w", styleID, err)
	}

	dated := false
	if style != nil {
		if style.CustomNumFmt != nil {
			dated = dateFormatCode(*style.CustomNumFmt)
		} else {
			dated = builtinDateFormat(style.NumFmt)
		}
	}

	d.dateStyles[styleID] = dated
	return dated, nil
}

// builtinDateFormat reports whether a built-in number format id renders
// as a date or time.
func builtinDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 58:
		return true
	}
	return false
}

// dateFormatCode reports whether a custom number format renders date or
// time components. Quoted literals, bracketed sections such as colors or
// locale prefixes and escaped characters do not count.
func dateFormatCode(code string) bool {
	var b strings.Builder
	inQuote := false
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case inQuote:
			if c == '"' {
				inQuote = false
			}
		case c == '"':
			inQuote = true
		case c == '\\':
			i++
		case c == '[':
			for i < len(code) && code[i] != ']' {
				i++
			}
		default:
			b.WriteByte(c)
		}
	}
	return strings.ContainsAny(b.String(), "ymdhsYMDHS")
}

var isoDateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// isoDateCell decodes cells stored with the rare ISO 8601 date type.
func isoDateCell(raw string) Cell {
	if raw == "" {
		return Missing
	}
	for _, layout := range isoDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return TimeCell(t)
		}
	}
	return TextCell(raw)
}
