package services

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"timetable-api/models"
)

// Диапазон дальше двух семестров считаем опечаткой
const maxRangeWeek = 2 * models.LastWeek

const (
	exceptionMarker = "кр"
	weekMarker      = "н."
)

var digitsPattern = regexp.MustCompile(`\d+`)

// ResolveWeeks turns a week qualifier such as "2,6,10,14", "3-17", "3-7,10,12-14"
// or "кр. 4" into the sorted set of weeks it denotes. An empty qualifier means
// every week of the row's parity.
//
// Only a dash range with a non-numeric endpoint is an error; unparsable list
// items are dropped.
func ResolveWeeks(raw string, row int) ([]int, error) {
	spec := strings.TrimSpace(raw)
	spec = strings.TrimSpace(strings.TrimSuffix(spec, weekMarker))

	switch {
	case spec == "":
		return DefaultWeeks(row), nil
	case strings.Contains(spec, exceptionMarker):
		return exceptWeeks(spec, row), nil
	case strings.Contains(spec, "-") && !strings.Contains(spec, ","):
		return weekRange(spec)
	case strings.Contains(spec, ",") && !strings.Contains(spec, "-"):
		return weekList(spec), nil
	case strings.Contains(spec, ","):
		return mixedWeeks(spec)
	default:
		return digitRuns(spec), nil
	}
}

// кр. 4, 8 - все недели четности строки, кроме перечисленных
func exceptWeeks(spec string, row int) []int {
	excluded := make(map[int]bool)
	for _, match := range digitsPattern.FindAllString(spec, -1) {
		if week, err := strconv.Atoi(match); err == nil {
			excluded[week] = true
		}
	}

	weeks := make([]int, 0)
	for _, week := range DefaultWeeks(row) {
		if !excluded[week] {
			weeks = append(weeks, week)
		}
	}
	return weeks
}

// 3-17 - с шагом в две недели
func weekRange(spec string) ([]int, error) {
	from, to, _ := strings.Cut(spec, "-")
	start, err := strconv.Atoi(strings.TrimSpace(from))
	if err != nil {
		return nil, fmt.Errorf("%q: %w", spec, ErrMalformedWeekSpec)
	}
	end, err := strconv.Atoi(strings.TrimSpace(to))
	if err != nil {
		return nil, fmt.Errorf("%q: %w", spec, ErrMalformedWeekSpec)
	}
	if start > maxRangeWeek || end > maxRangeWeek {
		return nil, fmt.Errorf("%q: week past %d: %w", spec, maxRangeWeek, ErrMalformedWeekSpec)
	}

	weeks := make([]int, 0)
	for week := start; week <= end; week += 2 {
		weeks = append(weeks, week)
	}
	return weeks, nil
}

func weekList(spec string) []int {
	set := make(map[int]bool)
	for _, token := range strings.Split(spec, ",") {
		if week, err := strconv.Atoi(strings.TrimSpace(token)); err == nil {
			set[week] = true
		}
	}
	return sortedWeeks(set)
}

func mixedWeeks(spec string) ([]int, error) {
	set := make(map[int]bool)
	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)
		if week, err := strconv.Atoi(token); err == nil {
			set[week] = true
			continue
		}
		weeks, err := weekRange(token)
		if err != nil {
			return nil, err
		}
		for _, week := range weeks {
			set[week] = true
		}
	}
	return sortedWeeks(set), nil
}

func digitRuns(spec string) []int {
	set := make(map[int]bool)
	for _, match := range digitsPattern.FindAllString(spec, -1) {
		if week, err := strconv.Atoi(match); err == nil {
			set[week] = true
		}
	}
	return sortedWeeks(set)
}

func sortedWeeks(set map[int]bool) []int {
	weeks := make([]int, 0, len(set))
	for week := range set {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)
	return weeks
}
