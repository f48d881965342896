package services

import (
	"errors"
	"reflect"
	"testing"
)

const (
	evenRow = 4
	oddRow  = 5
)

func TestResolveWeeks(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		row      int
		expected []int
	}{
		{"dash range steps by two", "3-17", evenRow, []int{3, 5, 7, 9, 11, 13, 15, 17}},
		{"dash range ignores row parity", "2-8", oddRow, []int{2, 4, 6, 8}},
		{"dash range with spaces", "3 - 7", evenRow, []int{3, 5, 7}},
		{"exception on even row", "кр. 4", evenRow, []int{2, 6, 8, 10, 12, 14, 16, 18}},
		{"exception on odd row", "кр. 1, 17", oddRow, []int{3, 5, 7, 9, 11, 13, 15}},
		{"exception with week marker", "кр. 4 н.", evenRow, []int{2, 6, 8, 10, 12, 14, 16, 18}},
		{"comma list", "2,6,10,14", evenRow, []int{2, 6, 10, 14}},
		{"comma list drops junk", "2, x, 6,", evenRow, []int{2, 6}},
		{"mixed list", "3-7,10,12-14", evenRow, []int{3, 5, 7, 10, 12, 14}},
		{"single week", "5", evenRow, []int{5}},
		{"fallback digit runs", "5 и 9", evenRow, []int{5, 9}},
		{"empty means row parity", "", oddRow, []int{1, 3, 5, 7, 9, 11, 13, 15, 17}},
		{"out of range passes through", "20,22", evenRow, []int{20, 22}},
		{"range up to the limit", "33-36", evenRow, []int{33, 35}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveWeeks(tt.raw, tt.row)
			if err != nil {
				t.Fatalf("ResolveWeeks(%q, %d) failed: %v", tt.raw, tt.row, err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ResolveWeeks(%q, %d) = %v, expected %v", tt.raw, tt.row, got, tt.expected)
			}
		})
	}
}

func TestResolveWeeksMalformedRange(t *testing.T) {
	for _, raw := range []string{"3-", "-5", "3-5-7", "1,3-x", "1-20000001", "1-2000000000", "9223372036854775806-9223372036854775807", "1,3-100"} {
		if _, err := ResolveWeeks(raw, evenRow); !errors.Is(err, ErrMalformedWeekSpec) {
			t.Errorf("ResolveWeeks(%q) error = %v, expected ErrMalformedWeekSpec", raw, err)
		}
	}
}

// A bad item in a plain list is dropped, a bad range endpoint fails the whole qualifier.
func TestResolveWeeksParseFailureAsymmetry(t *testing.T) {
	got, err := ResolveWeeks("3,x", evenRow)
	if err != nil || !reflect.DeepEqual(got, []int{3}) {
		t.Errorf("ResolveWeeks(\"3,x\") = %v, %v; expected [3], nil", got, err)
	}
	if _, err := ResolveWeeks("3-x", evenRow); err == nil {
		t.Error("ResolveWeeks(\"3-x\") expected error")
	}
}

func TestResolveWeeksDegenerate(t *testing.T) {
	got, err := ResolveWeeks("без недель", evenRow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no weeks, got %v", got)
	}
}
