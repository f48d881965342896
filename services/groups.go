package services

import (
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"timetable-api/models"
)

// DiscoverGroups finds group columns in the header row: text cells whose
// length equals the group name width, e.g. "ИНБО-15-20".
func DiscoverGroups(grid CellGrid, headerRow, nameWidth int) ([]models.Group, error) {
	if grid == nil || headerRow >= grid.RowCount() {
		return nil, fmt.Errorf("header row %d missing: %w", headerRow, ErrEmptyGrid)
	}

	groups := make([]models.Group, 0)
	for col := 0; col < grid.ColCount(headerRow); col++ {
		cell, ok := grid.Cell(headerRow, col)
		if !ok || cell.Kind == CellEmpty {
			continue
		}
		if !cell.IsText() {
			log.Printf("Колонка %d пропущена: %v", col, fmt.Errorf("%q: %w", cell.Text, ErrUnparsableHeaderCell))
			continue
		}
		name := strings.TrimSpace(cell.Text)
		if utf8.RuneCountInString(name) != nameWidth {
			continue
		}
		if !ValidGroupName(name) {
			log.Printf("Колонка %d пропущена: %v", col, fmt.Errorf("%q: %w", name, ErrUnparsableHeaderCell))
			continue
		}
		groups = append(groups, models.Group{Name: name, Column: col})
	}

	return groups, nil
}

// ValidGroupName reports whether a group name is safe to use as a file or object name.
func ValidGroupName(name string) bool {
	return name != "" && !strings.ContainsAny(name, `/\`) && !strings.Contains(name, "..")
}
