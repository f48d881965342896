package services

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestXLSRows(t *testing.T) {
	sheet := map[int][]string{
		1: {"", "ИНБО-15-20"},
		3: {"", "2,6 н. Физика", "лк", "Иванов И.И.", "101"},
	}
	rows := xlsRows(3, func(r int) []string { return sheet[r] })
	if len(rows) != 4 {
		t.Fatalf("rows = %d, expected 4", len(rows))
	}

	grid := NewSliceGrid(rows)
	if cell, ok := grid.Cell(0, 0); ok && cell.Kind != CellEmpty {
		t.Errorf("missing row must read as empty, got %+v", cell)
	}
	if cell, _ := grid.Cell(1, 1); !cell.IsText() || cell.Text != "ИНБО-15-20" {
		t.Errorf("header cell = %+v", cell)
	}
	if cell, _ := grid.Cell(3, 4); cell.Kind != CellNumber {
		t.Errorf("room 101 from xls = %v, expected CellNumber", cell.Kind)
	}

	groups, err := DiscoverGroups(grid, 1, 10)
	if err != nil || len(groups) != 1 || groups[0].Column != 1 {
		t.Errorf("DiscoverGroups = %+v, %v", groups, err)
	}
}

func TestXLSRowsEmptySheet(t *testing.T) {
	called := false
	if rows := xlsRows(-1, func(int) []string { called = true; return nil }); rows != nil || called {
		t.Errorf("rows = %v, called = %v", rows, called)
	}
}

func TestNewXLSGridRejectsGarbage(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte("not a workbook"),
		bytes.Repeat([]byte{0xD0, 0xCF, 0x11, 0xE0}, 200),
	}
	for _, data := range inputs {
		if grid, err := NewXLSGrid(bytes.NewReader(data)); err == nil {
			t.Errorf("NewXLSGrid(%d bytes) = %v, expected error", len(data), grid)
		}
	}

	parser := NewParserService(1, 10, 1)
	if _, err := parser.ParseWorkbook(context.Background(), strings.NewReader("not a workbook"), "timetable.xls"); err == nil {
		t.Error("expected error for broken xls")
	}
}
