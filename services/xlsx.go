package services

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// NewXLSXGrid reads the first sheet of an xlsx workbook into memory.
func NewXLSXGrid(file io.Reader) (*SliceGrid, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found: %w", ErrEmptyGrid)
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no rows: %w", sheet, ErrEmptyGrid)
	}

	grid := &SliceGrid{rows: rows, kinds: make([][]CellKind, len(rows))}
	for r, row := range rows {
		grid.kinds[r] = make([]CellKind, len(row))
		for c, value := range row {
			if value == "" {
				continue
			}
			axis, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheet, axis)
			if err != nil {
				return nil, fmt.Errorf("failed to read cell %s: %w", axis, err)
			}
			grid.kinds[r][c] = xlsxKind(cellType, value)
		}
	}

	return grid, nil
}

func xlsxKind(cellType excelize.CellType, value string) CellKind {
	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return CellText
	case excelize.CellTypeNumber:
		return CellNumber
	case excelize.CellTypeBool, excelize.CellTypeDate, excelize.CellTypeError:
		return CellOther
	}
	// Числа обычно хранятся без явного типа
	if _, err := strconv.ParseFloat(value, 64); err == nil {
		return CellNumber
	}
	return CellText
}
