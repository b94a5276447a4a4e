package appointment

import "time"

// WithinWorkingHours valida se um intervalo cabe no expediente do dia,
// sem invadir nenhuma pausa (regra de domínio, semânticas meio-abertas).
func WithinWorkingHours(week WeekSchedule, start, end time.Time) bool {
	day, state := week.Day(int(start.Weekday()))
	if state != DayOpen {
		return false
	}

	openMin, err := ParseHM(day.Start)
	if err != nil {
		return false
	}
	closeMin, err := ParseHM(day.End)
	if err != nil {
		return false
	}

	startMin := start.Hour()*60 + start.Minute()
	endMin := end.Hour()*60 + end.Minute()
	if endMin == 0 && end.Day() != start.Day() {
		endMin = 24 * 60
	}

	if startMin < openMin || endMin > closeMin {
		return false
	}

	for _, br := range day.Breaks {
		bs, err1 := ParseHM(br.Start)
		be, err2 := ParseHM(br.End)
		if err1 != nil || err2 != nil {
			continue
		}
		if overlapsMin(startMin, endMin, bs, be) {
			return false
		}
	}

	return true
}
