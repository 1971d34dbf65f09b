package face

import (
	"reflect"
	"testing"
)

func TestDefaultSchedule(t *testing.T) {
	s := DefaultSchedule()

	want := []int{0, 3, 4, 11, 15, 19, 26, 30, 34, 41, 45, 49, 56}
	if !reflect.DeepEqual(s.Minutes, want) {
		t.Errorf("Minutes = %v, want %v", s.Minutes, want)
	}
	if s.Hour != 0 {
		t.Errorf("Hour = %d, want 0", s.Hour)
	}
	if s.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", s.Len(), len(want))
	}
}

func TestSchedule_NextWraps(t *testing.T) {
	s := &Schedule{Hour: 5, Minutes: []int{10, 20}}

	for i, want := range []int{10, 20, 10} {
		hour, minute := s.Next()
		if hour != 5 || minute != want {
			t.Errorf("Next() #%d = %d:%d, want 5:%d", i, hour, minute, want)
		}
	}
}

func TestSchedule_Empty(t *testing.T) {
	s := &Schedule{Hour: 7}
	if hour, minute := s.Next(); hour != 7 || minute != 0 {
		t.Errorf("Next() = %d:%d, want 7:0", hour, minute)
	}
}
