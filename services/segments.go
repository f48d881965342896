package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"timetable-api/models"
)

// "2,6,10,14 н. Курс А (1 п/г) 4,8,12,16 н. Курс А (2 п/г)" -> две части
var segmentPattern = regexp.MustCompile(` ?(?P<weeks>[кр.\- \d,]*) н. ?(?P<title>[\p{L} ()-]*(?:\(?[1-9] ?п/г\)?)?)`)

// Заголовок жадно съедает "кр" следующей части: "Физика кр. 4 н. Химия"
var trailingExceptionMarker = regexp.MustCompile(`\s+кр$`)

var (
	weeksGroup = segmentPattern.SubexpIndex("weeks")
	titleGroup = segmentPattern.SubexpIndex("title")
)

// NoTeacher is used when the teacher cell of a row is not text.
const NoTeacher = "Не указан"

// Segment is one sub-lesson of a cell: its week qualifier and title.
type Segment struct {
	Weeks string
	Title string
}

// SplitSegments splits a cell into sub-lessons. A cell without any week
// marker is a single segment with an empty qualifier.
func SplitSegments(raw string) []Segment {
	matches := segmentPattern.FindAllStringSubmatch(raw, -1)
	if len(matches) == 0 {
		return []Segment{{Title: strings.TrimSpace(raw)}}
	}

	segments := make([]Segment, 0, len(matches))
	for _, match := range matches {
		segments = append(segments, Segment{
			Weeks: strings.TrimSpace(match[weeksGroup]),
			Title: strings.TrimSpace(match[titleGroup]),
		})
	}

	for i := 0; i+1 < len(segments); i++ {
		loc := trailingExceptionMarker.FindStringIndex(segments[i].Title)
		if loc == nil || !strings.HasPrefix(segments[i+1].Weeks, ".") {
			continue
		}
		segments[i].Title = strings.TrimSpace(segments[i].Title[:loc[0]])
		segments[i+1].Weeks = exceptionMarker + segments[i+1].Weeks
	}
	return segments
}

// CellExtraction is the per-week result of one timetable cell.
type CellExtraction struct {
	Lessons map[int]models.Lesson
	// Overflows counts lookups past the end of the activity/teacher/room lists
	// that fell back to the list's last line.
	Overflows int
}

// ExtractLessons builds lessons for every week mentioned by a cell. The i-th
// segment takes the i-th line of activityTypes, teachers and rooms, or the
// last line when a list is shorter. Segments with a malformed week range are
// dropped and reported in the returned error while the rest of the cell is kept.
func ExtractLessons(raw string, activityTypes, teachers, rooms []string, row int) (*CellExtraction, error) {
	day, slot, err := ResolveTimeslot(row)
	if err != nil {
		return nil, err
	}

	result := &CellExtraction{Lessons: make(map[int]models.Lesson)}
	var errs []error

	for i, segment := range SplitSegments(raw) {
		weeks, err := ResolveWeeks(segment.Weeks, row)
		if err != nil {
			errs = append(errs, fmt.Errorf("segment %d: %w", i, err))
			continue
		}

		activityType, overflow := alignedLine(activityTypes, i)
		result.countOverflow(overflow)
		teacher, overflow := alignedLine(teachers, i)
		result.countOverflow(overflow)
		room, overflow := alignedLine(rooms, i)
		result.countOverflow(overflow)

		for _, week := range weeks {
			result.Lessons[week] = models.Lesson{
				Name:         segment.Title,
				Day:          day,
				LessonInDay:  slot,
				ActivityType: activityType,
				Teacher:      teacher,
				Room:         room,
			}
		}
	}

	return result, errors.Join(errs...)
}

func (r *CellExtraction) countOverflow(overflow bool) {
	if overflow {
		r.Overflows++
	}
}

func alignedLine(lines []string, i int) (string, bool) {
	if len(lines) == 0 {
		return "", false
	}
	if i < len(lines) {
		return lines[i], false
	}
	return lines[len(lines)-1], true
}

// SplitLines splits a multi-line cell into its lines.
func SplitLines(value string) []string {
	value = strings.TrimSpace(strings.ReplaceAll(value, "\r\n", "\n"))
	if value == "" {
		return nil
	}
	lines := strings.Split(value, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return lines
}
