package models

import "sort"

// Day день недели, Monday = 1
type Day int

const (
	Monday Day = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var dayNames = [...]string{"", "Понедельник", "Вторник", "Среда", "Четверг", "Пятница", "Суббота"}

func (d Day) String() string {
	if d < Monday || d > Saturday {
		return "Unknown"
	}
	return dayNames[d]
}

// LessonSlot номер пары в дне, 1..6
type LessonSlot int

const (
	FirstSlot LessonSlot = iota + 1
	SecondSlot
	ThirdSlot
	FourthSlot
	FifthSlot
	SixthSlot
)

func (s LessonSlot) String() string {
	if s < FirstSlot || s > SixthSlot {
		return "Unknown"
	}
	return [...]string{"", "1 пара", "2 пара", "3 пара", "4 пара", "5 пара", "6 пара"}[s]
}

const (
	FirstWeek = 1
	LastWeek  = 18
)

type Group struct {
	Name   string `json:"name"`
	Column int    `json:"column"`
}

type Lesson struct {
	Name         string     `json:"name"`
	Day          Day        `json:"day"`
	LessonInDay  LessonSlot `json:"lessonInDay"`
	ActivityType string     `json:"activityType"`
	Teacher      string     `json:"teacher"`
	Room         string     `json:"room"`
}

// RowWarning строка таблицы, которая не попала в расписание
type RowWarning struct {
	Row   int    `json:"row"`
	Raw   string `json:"raw"`
	Error string `json:"error"`
}

type BuildStats struct {
	Rows        int `json:"rows"`
	SkippedRows int `json:"skippedRows"`
	Lessons     int `json:"lessons"`
	Overflows   int `json:"overflows"`
}

// GroupSchedule расписание одной группы по учебным неделям
type GroupSchedule struct {
	Group    string           `json:"group"`
	Weeks    map[int][]Lesson `json:"weeks"`
	Warnings []RowWarning     `json:"warnings,omitempty"`
	Stats    BuildStats       `json:"stats"`
}

func NewGroupSchedule(group string) *GroupSchedule {
	return &GroupSchedule{
		Group: group,
		Weeks: make(map[int][]Lesson),
	}
}

// Week возвращает занятия недели в порядке строк таблицы
func (s *GroupSchedule) Week(week int) []Lesson {
	return s.Weeks[week]
}

// SortedWeeks возвращает номера недель, в которых есть занятия
func (s *GroupSchedule) SortedWeeks() []int {
	weeks := make([]int, 0, len(s.Weeks))
	for week := range s.Weeks {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)
	return weeks
}
