package services

import (
	"errors"
	"reflect"
	"testing"

	"timetable-api/models"
)

const testGroup = "ИНБО-15-20"

// newTestRows returns an empty timetable with one group in column 1.
func newTestRows() [][]string {
	rows := make([][]string, LastBodyRow+1)
	for i := range rows {
		rows[i] = make([]string, 5)
	}
	rows[1][1] = testGroup
	return rows
}

func setLesson(rows [][]string, row int, title, activity, teacher, room string) {
	rows[row][1] = title
	rows[row][2] = activity
	rows[row][3] = teacher
	rows[row][4] = room
}

func TestBuildScheduleEndToEnd(t *testing.T) {
	rows := newTestRows()
	setLesson(rows, 5, twoSubgroups, "Лекция\nЛекция", "Иванов\nПетров", "101\n102")

	schedule, err := BuildSchedule(NewSliceGrid(rows), models.Group{Name: testGroup, Column: 1})
	if err != nil {
		t.Fatalf("BuildSchedule failed: %v", err)
	}

	expectedWeeks := []int{2, 4, 6, 8, 10, 12, 14, 16}
	if got := schedule.SortedWeeks(); !reflect.DeepEqual(got, expectedWeeks) {
		t.Fatalf("weeks = %v, expected %v", got, expectedWeeks)
	}

	week2 := schedule.Week(2)
	if len(week2) != 1 {
		t.Fatalf("week 2 has %d lessons, expected 1", len(week2))
	}
	if week2[0].Name != "Курс А (1 п/г)" || week2[0].Teacher != "Иванов" || week2[0].Room != "101" || week2[0].ActivityType != "Лекция" {
		t.Errorf("week 2 lesson = %+v", week2[0])
	}
	if week2[0].Day != models.Monday || week2[0].LessonInDay != models.SecondSlot {
		t.Errorf("week 2 timeslot = %v %v", week2[0].Day, week2[0].LessonInDay)
	}

	week4 := schedule.Week(4)
	if len(week4) != 1 || week4[0].Name != "Курс А (2 п/г)" || week4[0].Teacher != "Петров" || week4[0].Room != "102" {
		t.Errorf("week 4 lessons = %+v", week4)
	}

	if schedule.Stats.Rows != 1 || schedule.Stats.Lessons != 8 || len(schedule.Warnings) != 0 {
		t.Errorf("stats = %+v, warnings = %v", schedule.Stats, schedule.Warnings)
	}
}

func TestBuildScheduleRowOrder(t *testing.T) {
	rows := newTestRows()
	setLesson(rows, 15, "Химия", "Практика", "Сидоров", "201")
	setLesson(rows, 3, "Физика", "Лекция", "Иванов", "101")

	schedule, err := BuildSchedule(NewSliceGrid(rows), models.Group{Name: testGroup, Column: 1})
	if err != nil {
		t.Fatalf("BuildSchedule failed: %v", err)
	}

	week1 := schedule.Week(1)
	if len(week1) != 2 {
		t.Fatalf("week 1 has %d lessons, expected 2", len(week1))
	}
	if week1[0].Name != "Физика" || week1[1].Name != "Химия" {
		t.Errorf("week 1 order = %q, %q", week1[0].Name, week1[1].Name)
	}
	if week1[1].Day != models.Tuesday {
		t.Errorf("row 15 day = %v, expected Tuesday", week1[1].Day)
	}
	if len(schedule.Week(2)) != 0 {
		t.Errorf("odd rows must not fill even weeks: %+v", schedule.Week(2))
	}
}

func TestBuildScheduleSkipsPlaceholdersAndNonText(t *testing.T) {
	rows := newTestRows()
	setLesson(rows, 3, "…", "", "", "")
	setLesson(rows, 4, "...", "", "", "")
	setLesson(rows, 5, "42", "", "", "")

	schedule, err := BuildSchedule(NewSliceGrid(rows), models.Group{Name: testGroup, Column: 1})
	if err != nil {
		t.Fatalf("BuildSchedule failed: %v", err)
	}
	if len(schedule.Weeks) != 0 || schedule.Stats.Rows != 0 {
		t.Errorf("expected empty schedule, got %+v", schedule)
	}
}

func TestBuildScheduleTeacherPlaceholder(t *testing.T) {
	rows := newTestRows()
	setLesson(rows, 3, "Физика", "Лекция", "", "101")

	schedule, err := BuildSchedule(NewSliceGrid(rows), models.Group{Name: testGroup, Column: 1})
	if err != nil {
		t.Fatalf("BuildSchedule failed: %v", err)
	}
	lesson := schedule.Week(1)[0]
	if lesson.Teacher != NoTeacher {
		t.Errorf("teacher = %q, expected %q", lesson.Teacher, NoTeacher)
	}
	// Номер аудитории числом все равно попадает в занятие
	if lesson.Room != "101" {
		t.Errorf("room = %q, expected 101", lesson.Room)
	}
}

func TestBuildScheduleRecordsMalformedRows(t *testing.T) {
	rows := newTestRows()
	setLesson(rows, 3, "3-5-7 н. Физика", "Лекция", "Иванов", "101")
	setLesson(rows, 4, "Химия", "Лекция", "Петров", "102")

	schedule, err := BuildSchedule(NewSliceGrid(rows), models.Group{Name: testGroup, Column: 1})
	if err != nil {
		t.Fatalf("BuildSchedule failed: %v", err)
	}

	if schedule.Stats.SkippedRows != 1 {
		t.Errorf("skipped rows = %d, expected 1", schedule.Stats.SkippedRows)
	}
	if len(schedule.Warnings) != 1 || schedule.Warnings[0].Row != 3 || schedule.Warnings[0].Raw != "3-5-7 н. Физика" {
		t.Errorf("warnings = %+v", schedule.Warnings)
	}
	if len(schedule.Week(2)) != 1 {
		t.Errorf("valid row must still be parsed, week 2 = %+v", schedule.Week(2))
	}
}

func TestBuildScheduleIdempotent(t *testing.T) {
	rows := newTestRows()
	setLesson(rows, 5, twoSubgroups, "Лекция", "Иванов\nПетров", "101")
	setLesson(rows, 20, "кр. 4 н. Физика", "Практика", "Сидоров", "201")
	grid := NewSliceGrid(rows)
	group := models.Group{Name: testGroup, Column: 1}

	first, err := BuildSchedule(grid, group)
	if err != nil {
		t.Fatalf("BuildSchedule failed: %v", err)
	}
	second, err := BuildSchedule(grid, group)
	if err != nil {
		t.Fatalf("BuildSchedule failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("schedules differ:\n%+v\n%+v", first, second)
	}
	if first.Stats.Overflows != 2 {
		t.Errorf("overflows = %d, expected 2", first.Stats.Overflows)
	}
}

func TestBuildScheduleEmptyGrid(t *testing.T) {
	if _, err := BuildSchedule(NewSliceGrid(nil), models.Group{Name: testGroup}); !errors.Is(err, ErrEmptyGrid) {
		t.Errorf("error = %v, expected ErrEmptyGrid", err)
	}
	if _, err := BuildSchedule(nil, models.Group{Name: testGroup}); !errors.Is(err, ErrEmptyGrid) {
		t.Errorf("error = %v, expected ErrEmptyGrid", err)
	}
}
