package appointment

import (
	"errors"
	"time"
)

// ======================================================
// Motor de disponibilidade
// ======================================================

var (
	ErrInvalidSlotStep = errors.New("slot step must be positive")
	ErrInvalidDuration = errors.New("service duration must be positive")
)

type BlockReason string

const (
	BlockNone  BlockReason = ""
	BlockBreak BlockReason = "break"
	BlockPast  BlockReason = "past"
	BlockBusy  BlockReason = "busy"
)

type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type Slot struct {
	StartAt time.Time   `json:"start_at"`
	EndAt   time.Time   `json:"end_at"`
	Label   string      `json:"label"`
	Blocked BlockReason `json:"blocked_reason,omitempty"`
}

func (s Slot) Bookable() bool {
	return s.Blocked == BlockNone
}

// Overlaps aplica o teste de intervalo meio-aberto [start,end):
// encostar no fim do outro NÃO é conflito.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

func overlapsMin(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// GenerateSlots monta a grade completa de slots do dia para um barbeiro.
//
// A grade nunca descarta slot: todo candidato aparece, bloqueado ou não,
// com o motivo (break | past | busy) para a UI desabilitar a célula.
// Dia fechado ou sem configuração rende grade vazia sem erro; use
// WeekSchedule.Day para diferenciar os dois casos na mensagem.
func GenerateSlots(
	week WeekSchedule,
	date time.Time,
	durationMin int,
	busy []TimeRange,
	now time.Time,
) ([]Slot, error) {

	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}

	day, state := week.Day(int(date.Weekday()))
	if state != DayOpen {
		return []Slot{}, nil
	}

	step := week.SlotStepMin
	if step <= 0 {
		return nil, ErrInvalidSlotStep
	}

	openMin, err := ParseHM(day.Start)
	if err != nil {
		return []Slot{}, nil
	}
	closeMin, err := ParseHM(day.End)
	if err != nil || closeMin <= openMin {
		return []Slot{}, nil
	}

	type breakMin struct{ start, end int }
	var breaks []breakMin
	for _, br := range day.Breaks {
		bs, err1 := ParseHM(br.Start)
		be, err2 := ParseHM(br.End)
		if err1 != nil || err2 != nil {
			continue
		}
		breaks = append(breaks, breakMin{bs, be})
	}

	loc := date.Location()
	localNow := now.In(loc)
	isToday := date.Year() == localNow.Year() &&
		date.Month() == localNow.Month() &&
		date.Day() == localNow.Day()

	slots := []Slot{}

	// nenhum slot pode passar do fechamento, mesmo parcialmente
	for m := openMin; m+durationMin <= closeMin; m += step {
		slotStart := time.Date(
			date.Year(), date.Month(), date.Day(),
			m/60, m%60, 0, 0,
			loc,
		)
		slotEnd := slotStart.Add(time.Duration(durationMin) * time.Minute)

		slot := Slot{
			StartAt: slotStart,
			EndAt:   slotEnd,
			Label:   FormatHM(m),
		}

		inBreak := false
		for _, br := range breaks {
			if overlapsMin(m, m+durationMin, br.start, br.end) {
				inBreak = true
				break
			}
		}

		switch {
		case inBreak:
			slot.Blocked = BlockBreak

		case isToday && !slotStart.After(localNow):
			slot.Blocked = BlockPast

		default:
			for _, b := range busy {
				if Overlaps(slotStart, slotEnd, b.Start, b.End) {
					slot.Blocked = BlockBusy
					break
				}
			}
		}

		slots = append(slots, slot)
	}

	return slots, nil
}
