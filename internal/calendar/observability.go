package calendar

import (
	"fmt"
	"io"
	"time"
)

// CallEvent describes one completed remote calendar call.
type CallEvent struct {
	Operation string
	Calendar  string
	LatencyMs int64
	Err       error
}

// Observer receives call events from the CalDAV client. Implementations must
// be cheap; they run inline on the request path.
type Observer interface {
	OnCallComplete(ev CallEvent)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}

// LogObserver writes one line per remote call, for debugging connectivity.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates a LogObserver writing to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(ev CallEvent) {
	status := "ok"
	if ev.Err != nil {
		status = "error: " + ev.Err.Error()
	}
	fmt.Fprintf(o.w, "[caldav] %s calendar=%s %dms %s\n", ev.Operation, ev.Calendar, ev.LatencyMs, status)
}

func observe(obs Observer, op, cal string, start time.Time, err error) {
	obs.OnCallComplete(CallEvent{
		Operation: op,
		Calendar:  cal,
		LatencyMs: time.Since(start).Milliseconds(),
		Err:       err,
	})
}
