// Package export renders a reconciled agenda as an iCalendar document, for
// import into any calendar application without a CalDAV round trip.
package export

import (
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/alexanderramin/cadence/internal/agenda"
	"github.com/alexanderramin/cadence/internal/domain"
)

const prodID = "-//cadence//agenda export//EN"

// Options controls what ends up in the exported calendar.
type Options struct {
	// IncludeExisting also emits the events already on the remote calendar,
	// so the export stands alone as a full agenda.
	IncludeExisting bool
	// Name becomes the calendar's X-WR-CALNAME when set.
	Name string
}

// ICS serializes the proposal's suggestions (and optionally the existing
// events) as an iCalendar document.
func ICS(p *agenda.Proposal, now time.Time, opts Options) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(prodID)
	if opts.Name != "" {
		cal.SetXWRCalName(opts.Name)
	}

	for _, ev := range p.AllEvents() {
		if !opts.IncludeExisting && ev.Kind == domain.KindExisting {
			continue
		}
		addEvent(cal, ev, now)
	}
	return cal.Serialize()
}

func addEvent(cal *ics.Calendar, ev agenda.Event, now time.Time) {
	e := cal.AddEvent(uuid.NewString() + "@cadence")
	e.SetDtStampTime(now.UTC())
	e.SetStartAt(ev.Start)
	e.SetEndAt(ev.End)
	e.SetSummary(ev.Title)

	if desc := description(ev); desc != "" {
		e.SetDescription(desc)
	}
	if ev.HasConflict {
		// TENTATIVE signals "kept in place despite a collision" to clients.
		e.SetStatus(ics.ObjectStatusTentative)
	} else {
		e.SetStatus(ics.ObjectStatusConfirmed)
	}
}

func description(ev agenda.Event) string {
	var parts []string
	if ev.Policy != "" {
		parts = append(parts, "Policy: "+string(ev.Policy))
	}
	if ev.Source != "" {
		parts = append(parts, "Calendar: "+ev.Source)
	}
	parts = append(parts, ev.Notes...)
	return strings.Join(parts, "\n")
}
