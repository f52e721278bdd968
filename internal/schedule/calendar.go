package schedule

import (
    "sort"
    "strings"

    "github.com/rafael-team/car-booking/internal/model"
)

// DateLayout is the calendar‑day form used by Calendar queries.
const DateLayout = "2006-01-02"

// DateOf returns the calendar‑date portion of a stored timestamp by
// truncating at the first 'T'.  This is a pure string operation, never a
// timezone‑aware parse: a timestamp without an offset must not be
// reinterpreted in some runtime's local zone, which would shift the date
// by one day near midnight.
func DateOf(ts string) string {
    if i := strings.IndexByte(ts, 'T'); i >= 0 {
        return ts[:i]
    }
    return ts
}

// Calendar indexes a booking list by calendar day.  It is rebuilt from a
// fresh fetch of the full list on every load; there is no caching and no
// mutation.  Bookings within a day keep the order the store returned them
// in (ascending by start_time).
type Calendar struct {
    byDay map[string][]model.Booking
}

// NewCalendar buckets bookings by the date portion of their start time.
func NewCalendar(bookings []model.Booking) *Calendar {
    byDay := make(map[string][]model.Booking, len(bookings))
    for _, b := range bookings {
        day := DateOf(b.StartTime)
        byDay[day] = append(byDay[day], b)
    }
    return &Calendar{byDay: byDay}
}

// IsDayBooked reports whether at least one booking starts on the given
// day (YYYY-MM-DD).
func (c *Calendar) IsDayBooked(day string) bool {
    return len(c.byDay[day]) > 0
}

// SchedulesForDate returns every booking whose start date matches the
// given day, in store order.  The result is never nil.
func (c *Calendar) SchedulesForDate(day string) []model.Booking {
    if bs, ok := c.byDay[day]; ok {
        return bs
    }
    return []model.Booking{}
}

// BookedDays returns every day that has at least one booking, ascending.
// Lexical order of YYYY-MM-DD strings is chronological order.
func (c *Calendar) BookedDays() []string {
    days := make([]string, 0, len(c.byDay))
    for d := range c.byDay {
        days = append(days, d)
    }
    sort.Strings(days)
    return days
}

// TimeRange renders "HH:mm - HH:mm" for display from two stored
// timestamps.  The time portion is extracted by truncation, stripping any
// trailing offset or Z marker, so the clock time shown is the clock time
// entered.
func TimeRange(start, end string) string {
    return extractTime(start) + " - " + extractTime(end)
}

func extractTime(ts string) string {
    i := strings.IndexByte(ts, 'T')
    if i < 0 {
        return ts
    }
    t := ts[i+1:]
    if j := strings.IndexAny(t, "+Z"); j >= 0 {
        t = t[:j]
    }
    if len(t) > 5 {
        t = t[:5]
    }
    return t
}
