package services

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"timetable-api/models"
)

// Колонки рядом с названием предмета
const (
	activityTypeOffset = 1
	teacherOffset      = 2
	roomOffset         = 3
)

var ellipsisMarkers = []string{"…", "..."}

// BuildSchedule walks the timetable body of one group's column and collects
// its lessons by week. Rows that fail to parse are skipped and recorded in
// the schedule warnings; only a missing grid is an error.
func BuildSchedule(grid CellGrid, group models.Group) (*models.GroupSchedule, error) {
	if grid == nil || grid.RowCount() == 0 {
		return nil, fmt.Errorf("group %q: %w", group.Name, ErrEmptyGrid)
	}

	schedule := models.NewGroupSchedule(group.Name)
	for row := FirstBodyRow; row <= LastBodyRow; row++ {
		raw, ok := cellText(grid, row, group.Column)
		if !ok || isPlaceholder(raw) {
			continue
		}
		schedule.Stats.Rows++

		extraction, err := ExtractLessons(raw,
			rowLines(grid, row, group.Column+activityTypeOffset),
			teacherLines(grid, row, group.Column+teacherOffset),
			rowLines(grid, row, group.Column+roomOffset),
			row,
		)
		if err != nil {
			rowErr := &RowError{Group: group.Name, Row: row, Raw: raw, Err: err}
			log.Printf("Ошибка разбора строки: %v", rowErr)
			schedule.Warnings = append(schedule.Warnings, models.RowWarning{
				Row:   row,
				Raw:   raw,
				Error: err.Error(),
			})
			if extraction == nil || len(extraction.Lessons) == 0 {
				schedule.Stats.SkippedRows++
				continue
			}
		}

		schedule.Stats.Overflows += extraction.Overflows
		weeks := make([]int, 0, len(extraction.Lessons))
		for week := range extraction.Lessons {
			weeks = append(weeks, week)
		}
		sort.Ints(weeks)
		for _, week := range weeks {
			schedule.Weeks[week] = append(schedule.Weeks[week], extraction.Lessons[week])
			schedule.Stats.Lessons++
		}
	}

	return schedule, nil
}

func isPlaceholder(raw string) bool {
	for _, marker := range ellipsisMarkers {
		if strings.Contains(raw, marker) {
			return true
		}
	}
	return false
}

func rowLines(grid CellGrid, row, col int) []string {
	value, ok := cellValue(grid, row, col)
	if !ok {
		return nil
	}
	return SplitLines(value)
}

// Преподаватель есть только в текстовой ячейке
func teacherLines(grid CellGrid, row, col int) []string {
	value, ok := cellText(grid, row, col)
	if !ok {
		return []string{NoTeacher}
	}
	return SplitLines(value)
}
