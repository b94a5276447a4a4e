package audit

import "log"

// fila em memória: auditoria nunca pode segurar a resposta HTTP
const queueSize = 100

type Event struct {
	BarbershopID uint
	UserID       *uint
	Action       string
	Entity       string
	EntityID     *uint
	Metadata     any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, queueSize),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		err := d.logger.Log(
			ev.BarbershopID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		)
		if err != nil {
			log.Printf("audit: failed to persist %q event: %v", ev.Action, err)
		}
	}
}

// Dispatch enfileira sem bloquear; fila cheia descarta o evento.
// Perder auditoria é aceitável, quebrar a API não é.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Printf("audit: queue full, dropping %q event", ev.Action)
	}
}
