package services

import "strconv"

type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
	CellOther
)

type Cell struct {
	Kind CellKind
	Text string
}

func (c Cell) IsText() bool {
	return c.Kind == CellText
}

// CellGrid is a read-only view of one timetable sheet, rows and columns from zero.
type CellGrid interface {
	Cell(row, col int) (Cell, bool)
	RowCount() int
	ColCount(row int) int
}

// SliceGrid is a CellGrid over rows of cell values; numeric strings are
// reported as numbers, everything else non-empty as text.
type SliceGrid struct {
	rows  [][]string
	kinds [][]CellKind // типы ячеек из книги, если известны
}

func NewSliceGrid(rows [][]string) *SliceGrid {
	return &SliceGrid{rows: rows}
}

func (g *SliceGrid) Cell(row, col int) (Cell, bool) {
	if row < 0 || row >= len(g.rows) || col < 0 || col >= len(g.rows[row]) {
		return Cell{}, false
	}
	value := g.rows[row][col]
	if value != "" && row < len(g.kinds) && col < len(g.kinds[row]) && g.kinds[row][col] != CellEmpty {
		return Cell{Kind: g.kinds[row][col], Text: value}, true
	}
	return classify(value), true
}

func (g *SliceGrid) RowCount() int {
	return len(g.rows)
}

func (g *SliceGrid) ColCount(row int) int {
	if row < 0 || row >= len(g.rows) {
		return 0
	}
	return len(g.rows[row])
}

func classify(value string) Cell {
	if value == "" {
		return Cell{Kind: CellEmpty}
	}
	if _, err := strconv.ParseFloat(value, 64); err == nil {
		return Cell{Kind: CellNumber, Text: value}
	}
	return Cell{Kind: CellText, Text: value}
}

// cellValue returns the text of a text or numeric cell; rooms are often typed as numbers.
func cellValue(grid CellGrid, row, col int) (string, bool) {
	cell, ok := grid.Cell(row, col)
	if !ok || (cell.Kind != CellText && cell.Kind != CellNumber) {
		return "", false
	}
	return cell.Text, true
}

// cellText returns the text of a text cell.
func cellText(grid CellGrid, row, col int) (string, bool) {
	cell, ok := grid.Cell(row, col)
	if !ok || !cell.IsText() {
		return "", false
	}
	return cell.Text, true
}
