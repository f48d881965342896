package services

import (
	"errors"
	"reflect"
	"testing"

	"timetable-api/models"
)

func TestDiscoverGroups(t *testing.T) {
	header := []string{"День", "ИНБО-15-20", "Вид", "ФИО", "Ауд", "ИКБО-01-21", "12345", "Группа ИНБО"}
	grid := NewSliceGrid([][]string{{"Расписание"}, header})

	groups, err := DiscoverGroups(grid, 1, 10)
	if err != nil {
		t.Fatalf("DiscoverGroups failed: %v", err)
	}

	expected := []models.Group{
		{Name: "ИНБО-15-20", Column: 1},
		{Name: "ИКБО-01-21", Column: 5},
	}
	if !reflect.DeepEqual(groups, expected) {
		t.Errorf("groups = %+v, expected %+v", groups, expected)
	}
}

func TestDiscoverGroupsSkipsPathLikeNames(t *testing.T) {
	header := []string{"", "../../x/ab", `ИНБО\15-20`, "ИНБО..5-20", "ИНБО-15-20"}
	groups, err := DiscoverGroups(NewSliceGrid([][]string{{}, header}), 1, 10)
	if err != nil {
		t.Fatalf("DiscoverGroups failed: %v", err)
	}
	if len(groups) != 1 || groups[0].Name != "ИНБО-15-20" {
		t.Errorf("groups = %+v, expected only ИНБО-15-20", groups)
	}
}

func TestDiscoverGroupsMissingHeader(t *testing.T) {
	if _, err := DiscoverGroups(NewSliceGrid([][]string{{"x"}}), 1, 10); !errors.Is(err, ErrEmptyGrid) {
		t.Errorf("error = %v, expected ErrEmptyGrid", err)
	}
}
