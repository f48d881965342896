package services

import (
	"fmt"

	"timetable-api/models"
)

const (
	FirstBodyRow = 3
	LastBodyRow  = 74
	rowsPerDay   = 12
	rowsPerSlot  = 2
)

type rowRange struct {
	from, to int
}

// Дни: 3-14, 15-26, ..., 63-74
var dayRanges = func() map[models.Day]rowRange {
	ranges := make(map[models.Day]rowRange, 6)
	for d := models.Monday; d <= models.Saturday; d++ {
		from := FirstBodyRow + int(d-models.Monday)*rowsPerDay
		ranges[d] = rowRange{from: from, to: from + rowsPerDay - 1}
	}
	return ranges
}()

// Каждая пара занимает две строки в блоке дня: нечетная неделя и четная
var slotAnchors = func() map[models.LessonSlot][2]int {
	anchors := make(map[models.LessonSlot][2]int, 6)
	for s := models.FirstSlot; s <= models.SixthSlot; s++ {
		first := FirstBodyRow + int(s-models.FirstSlot)*rowsPerSlot
		anchors[s] = [2]int{first, first + 1}
	}
	return anchors
}()

// ResolveTimeslot returns the day and lesson slot a timetable row belongs to.
func ResolveTimeslot(row int) (models.Day, models.LessonSlot, error) {
	if row < FirstBodyRow || row > LastBodyRow {
		return 0, 0, fmt.Errorf("row %d: %w", row, ErrOutOfRangeRow)
	}

	var day models.Day
	for d := models.Monday; d <= models.Saturday; d++ {
		if r := dayRanges[d]; row >= r.from && row <= r.to {
			day = d
			break
		}
	}

	var slot models.LessonSlot
	for s := models.FirstSlot; s <= models.SixthSlot; s++ {
		if onProgression(row, slotAnchors[s][0]) || onProgression(row, slotAnchors[s][1]) {
			slot = s
			break
		}
	}

	return day, slot, nil
}

func onProgression(row, anchor int) bool {
	return row >= anchor && (row-anchor)%rowsPerDay == 0
}

// DefaultWeeks returns the weeks a row covers when its cell has no week qualifier:
// even rows hold even weeks, odd rows hold odd weeks.
func DefaultWeeks(row int) []int {
	first := models.FirstWeek
	if row%2 == 0 {
		first++
	}
	weeks := make([]int, 0, (models.LastWeek-models.FirstWeek)/2+1)
	for w := first; w <= models.LastWeek; w += 2 {
		weeks = append(weeks, w)
	}
	return weeks
}
