package notify

import (
	"go.uber.org/zap"
)

// Event is what the core emits after a successful booking,
// cancellation, reschedule or status transition. Delivery is the
// notification subsystem's concern; the dispatcher only records and
// fans out.
type Event struct {
	Entity        string
	EntityID      uint
	Transition    string
	TraineeID     *uint
	InterviewerID *uint
	Metadata      any
}

type Dispatcher struct {
	recorder *Recorder
	logger   *zap.Logger
	queue    chan Event
}

func NewDispatcher(recorder *Recorder, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		recorder: recorder,
		logger:   logger,
		queue:    make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.recorder.Record(ev); err != nil {
			d.logger.Error("notify record failed",
				zap.String("entity", ev.Entity),
				zap.Uint("entity_id", ev.EntityID),
				zap.String("transition", ev.Transition),
				zap.Error(err),
			)
		}
	}
}

// Dispatch is fire-and-forget: a full queue drops the event rather
// than blocking a booking request.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.logger.Warn("notify queue full, dropping event",
			zap.String("entity", ev.Entity),
			zap.Uint("entity_id", ev.EntityID),
			zap.String("transition", ev.Transition),
		)
	}
}
