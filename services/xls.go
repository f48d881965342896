package services

import (
	"fmt"
	"io"

	"github.com/extrame/xls"
)

const xlsCharset = "windows-1251"

// NewXLSGrid reads the first sheet of a legacy xls workbook into memory.
// The format does not keep cell types, so numeric-looking values become numbers.
func NewXLSGrid(file io.ReadSeeker) (grid *SliceGrid, err error) {
	// Битые xls роняют разбор паникой внутри библиотеки
	defer func() {
		if r := recover(); r != nil {
			grid, err = nil, fmt.Errorf("failed to read xls: %v", r)
		}
	}()

	book, err := xls.OpenReader(file, xlsCharset)
	if err != nil {
		return nil, fmt.Errorf("failed to open xls: %w", err)
	}
	if book.NumSheets() == 0 {
		return nil, fmt.Errorf("no sheets found: %w", ErrEmptyGrid)
	}
	sheet := book.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("first sheet unreadable: %w", ErrEmptyGrid)
	}

	return NewSliceGrid(xlsRows(int(sheet.MaxRow), func(r int) []string {
		row := sheet.Row(r)
		if row == nil {
			return nil
		}
		values := make([]string, row.LastCol())
		for c := range values {
			values[c] = row.Col(c)
		}
		return values
	})), nil
}

// xlsRows collects rows 0..maxRow; missing rows stay empty.
func xlsRows(maxRow int, row func(r int) []string) [][]string {
	if maxRow < 0 {
		return nil
	}
	rows := make([][]string, maxRow+1)
	for r := range rows {
		rows[r] = row(r)
	}
	return rows
}
