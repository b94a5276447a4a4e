package appointment

import (
	"testing"
	"time"
)

func TestParseHM(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"13:30", 810, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"9h30", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseHM(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseHM(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHM(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseHM(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatHM(t *testing.T) {
	if got := FormatHM(540); got != "09:00" {
		t.Errorf("FormatHM(540) = %q, want 09:00", got)
	}
	if got := FormatHM(1439); got != "23:59" {
		t.Errorf("FormatHM(1439) = %q, want 23:59", got)
	}
}

func TestDayState(t *testing.T) {
	var empty WeekSchedule
	if _, state := empty.Day(1); state != DayNotConfigured {
		t.Errorf("empty schedule: state = %v, want DayNotConfigured", state)
	}

	week := testWeek()

	if _, state := week.Day(1); state != DayOpen {
		t.Errorf("monday: state = %v, want DayOpen", state)
	}
	if _, state := week.Day(2); state != DayClosed {
		t.Errorf("tuesday: state = %v, want DayClosed", state)
	}
	if _, state := week.Day(3); state != DayNotConfigured {
		t.Errorf("wednesday: state = %v, want DayNotConfigured", state)
	}

	// horário vazio conta como fechado, não como ausência de configuração
	week.Days[4] = DayHours{Start: "", End: ""}
	if _, state := week.Day(4); state != DayClosed {
		t.Errorf("blank hours: state = %v, want DayClosed", state)
	}
}

func TestWithinWorkingHours(t *testing.T) {
	week := testWeek()

	slot := func(startHM, endHM string) (time.Time, time.Time) {
		t.Helper()
		return at(t, startHM), at(t, endHM)
	}

	cases := []struct {
		name   string
		start  string
		end    string
		within bool
	}{
		{"inside", "10:00", "11:00", true},
		{"at opening", "09:00", "10:00", true},
		{"ends at closing", "16:00", "17:00", true},
		{"before opening", "08:30", "09:30", false},
		{"past closing", "16:30", "17:30", false},
		{"into break", "12:30", "13:30", false},
		{"inside break", "13:00", "14:00", false},
		{"abuts break start", "12:00", "13:00", true},
		{"abuts break end", "14:00", "15:00", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := slot(tc.start, tc.end)
			if got := WithinWorkingHours(week, start, end); got != tc.within {
				t.Errorf("WithinWorkingHours(%s-%s) = %v, want %v", tc.start, tc.end, got, tc.within)
			}
		})
	}

	// dia fechado nunca aceita horário
	tuesday := at(t, "10:00").AddDate(0, 0, 1)
	if WithinWorkingHours(week, tuesday, tuesday.Add(time.Hour)) {
		t.Error("closed day accepted a slot")
	}
}
