package appointment

import (
	"fmt"
	"strconv"
	"strings"
)

// ======================================================
// Expediente semanal (domínio puro, sem I/O)
// ======================================================

type BreakWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type DayHours struct {
	Closed bool          `json:"closed"`
	Start  string        `json:"start"` // "HH:MM"
	End    string        `json:"end"`   // "HH:MM"
	Breaks []BreakWindow `json:"breaks"`
}

type WeekSchedule struct {
	Timezone    string           `json:"timezone"`
	SlotStepMin int              `json:"slot_step_min"`
	Days        map[int]DayHours `json:"days"` // 0=domingo .. 6=sábado
}

// DayState diferencia "nunca configurado" de "fechado hoje":
// os dois rendem zero slots, mas a mensagem ao cliente é outra.
type DayState int

const (
	DayNotConfigured DayState = iota
	DayClosed
	DayOpen
)

func (w WeekSchedule) Day(weekday int) (DayHours, DayState) {
	if len(w.Days) == 0 {
		return DayHours{}, DayNotConfigured
	}

	day, ok := w.Days[weekday]
	if !ok {
		return DayHours{}, DayNotConfigured
	}

	if day.Closed || day.Start == "" || day.End == "" {
		return day, DayClosed
	}

	return day, DayOpen
}

// ParseHM converte "HH:MM" em minutos desde a meia-noite.
func ParseHM(hm string) (int, error) {
	parts := strings.SplitN(hm, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", hm)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", hm)
	}

	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", hm)
	}

	return h*60 + m, nil
}

func FormatHM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
