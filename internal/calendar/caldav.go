package calendar

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-webdav/caldav"
	"github.com/google/uuid"

	"github.com/alexanderramin/cadence/internal/agenda"
	"github.com/alexanderramin/cadence/internal/domain"
)

// CalDAVConfig holds the connection settings for a CalDAV account.
type CalDAVConfig struct {
	Endpoint   string
	Username   string
	Password   string
	CalendarID string // calendar collection path; discovered when empty
}

// Configured reports whether credentials are present.
func (c CalDAVConfig) Configured() bool {
	return c.Endpoint != "" && c.Username != ""
}

// CalDAVClient implements EventSource and the committer's EventCreator
// against a CalDAV server.
type CalDAVClient struct {
	cfg      CalDAVConfig
	observer Observer

	client *caldav.Client
}

// NewCalDAVClient creates a client for the configured account. The nil
// observer defaults to a no-op.
func NewCalDAVClient(cfg CalDAVConfig, observer Observer) *CalDAVClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &CalDAVClient{cfg: cfg, observer: observer}
}

// basicAuthTransport adds Basic Auth to every request.
type basicAuthTransport struct {
	username string
	password string
}

func (t *basicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.SetBasicAuth(t.username, t.password)
	return http.DefaultTransport.RoundTrip(req)
}

func (c *CalDAVClient) connect() (*caldav.Client, error) {
	if c.client != nil {
		return c.client, nil
	}

	httpClient := &http.Client{
		Transport: &basicAuthTransport{username: c.cfg.Username, password: c.cfg.Password},
		Timeout:   30 * time.Second,
	}
	client, err := caldav.NewClient(httpClient, c.cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("connecting to CalDAV server: %w", err)
	}
	c.client = client
	return client, nil
}

// calendarPath resolves the target collection, discovering the first
// calendar in the account's home set when none is configured.
func (c *CalDAVClient) calendarPath(ctx context.Context) (string, error) {
	if c.cfg.CalendarID != "" {
		return c.cfg.CalendarID, nil
	}

	client, err := c.connect()
	if err != nil {
		return "", err
	}
	principal, err := client.FindCurrentUserPrincipal(ctx)
	if err != nil {
		return "", fmt.Errorf("finding principal: %w", err)
	}
	homeSet, err := client.FindCalendarHomeSet(ctx, principal)
	if err != nil {
		return "", fmt.Errorf("finding calendar home set: %w", err)
	}
	cals, err := client.FindCalendars(ctx, homeSet)
	if err != nil {
		return "", fmt.Errorf("listing calendars: %w", err)
	}
	if len(cals) == 0 {
		return "", fmt.Errorf("account has no calendars")
	}
	c.cfg.CalendarID = cals[0].Path
	return c.cfg.CalendarID, nil
}

// Events queries the configured calendar for VEVENTs in the range and maps
// them into domain existing events. Instants come back timezone-aware (UTC).
func (c *CalDAVClient) Events(ctx context.Context, rng domain.DateRange) ([]domain.ExistingEvent, error) {
	start := time.Now()

	path, err := c.calendarPath(ctx)
	if err != nil {
		observe(c.observer, "query", "", start, err)
		return nil, err
	}
	client, err := c.connect()
	if err != nil {
		observe(c.observer, "query", path, start, err)
		return nil, err
	}

	from := rng.Start
	to := rng.End.AddDate(0, 0, 1)
	query := &caldav.CalendarQuery{
		CompFilter: caldav.CompFilter{
			Name: ical.CompCalendar,
			Comps: []caldav.CompFilter{{
				Name:  ical.CompEvent,
				Start: from,
				End:   to,
			}},
		},
	}

	objects, err := client.QueryCalendar(ctx, path, query)
	if err != nil {
		observe(c.observer, "query", path, start, err)
		return nil, fmt.Errorf("querying calendar: %w", err)
	}

	var events []domain.ExistingEvent
	for i := range objects {
		ev, ok := parseCalendarObject(&objects[i], path)
		if !ok {
			continue
		}
		events = append(events, ev)
	}

	observe(c.observer, "query", path, start, nil)
	return events, nil
}

// CreateEvent creates one remote event and returns its UID. Not retried
// here; a PUT with the same UID is safe to repeat at the caller's
// discretion.
func (c *CalDAVClient) CreateEvent(ctx context.Context, in agenda.EventInput) (string, error) {
	start := time.Now()

	path := in.CalendarID
	if path == "" {
		var err error
		path, err = c.calendarPath(ctx)
		if err != nil {
			observe(c.observer, "create", "", start, err)
			return "", err
		}
	}
	client, err := c.connect()
	if err != nil {
		observe(c.observer, "create", path, start, err)
		return "", err
	}

	uid := uuid.NewString()
	cal := buildEventCalendar(uid, in)

	eventPath := path
	if !strings.HasSuffix(eventPath, "/") {
		eventPath += "/"
	}
	eventPath += uid + ".ics"

	if _, err := client.PutCalendarObject(ctx, eventPath, cal); err != nil {
		observe(c.observer, "create", path, start, err)
		return "", fmt.Errorf("creating event: %w", err)
	}

	observe(c.observer, "create", path, start, nil)
	return uid, nil
}

// parseCalendarObject maps the first VEVENT of a CalDAV object into an
// ExistingEvent. Objects without usable times are skipped.
func parseCalendarObject(obj *caldav.CalendarObject, calendarPath string) (domain.ExistingEvent, bool) {
	if obj.Data == nil {
		return domain.ExistingEvent{}, false
	}

	for _, comp := range obj.Data.Children {
		if comp.Name != ical.CompEvent {
			continue
		}

		ev := domain.ExistingEvent{CalendarID: calendarPath, CalendarName: calendarName(calendarPath)}
		if prop := comp.Props.Get(ical.PropSummary); prop != nil {
			ev.Summary = prop.Value
		}
		if prop := comp.Props.Get(ical.PropDateTimeStart); prop != nil {
			if t, err := prop.DateTime(time.UTC); err == nil {
				ev.Start = t
			}
		}
		if prop := comp.Props.Get(ical.PropDateTimeEnd); prop != nil {
			if t, err := prop.DateTime(time.UTC); err == nil {
				ev.End = t
			}
		}
		if ev.Start.IsZero() || ev.End.IsZero() {
			return domain.ExistingEvent{}, false
		}
		return ev, true
	}
	return domain.ExistingEvent{}, false
}

// buildEventCalendar wraps one VEVENT in a VCALENDAR for a PUT.
func buildEventCalendar(uid string, in agenda.EventInput) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//cadence//agenda//EN")

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, uid)
	event.Props.SetText(ical.PropSummary, in.Title)
	if in.Description != "" {
		event.Props.SetText(ical.PropDescription, in.Description)
	}
	event.Props.SetDateTime(ical.PropDateTimeStart, in.Start.UTC())
	event.Props.SetDateTime(ical.PropDateTimeEnd, in.End.UTC())
	event.Props.SetDateTime(ical.PropDateTimeStamp, time.Now().UTC())

	cal.Children = append(cal.Children, event.Component)
	return cal
}

func calendarName(path string) string {
	trimmed := strings.TrimSuffix(path, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}
