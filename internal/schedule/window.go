// Package schedule contains the booking core: the time window model, the
// calendar day‑bucketing engine, the booking draft controller and the usage
// aggregator.  It is a pure library with no knowledge of HTTP or the
// database; stores are consumed through narrow interfaces so the package
// can be exercised in isolation.
//
// Booking timestamps are opaque local wall‑clock strings in the form
// YYYY-MM-DDTHH:mm[:ss].  The package never converts them between
// timezones: parsing is used only to compare two values in the same local
// frame, and calendar dates are obtained by string truncation.  Mixing a
// conversion‑based strategy into this package reintroduces off‑by‑one‑day
// bugs near midnight for clients west or east of the canonical timezone.
package schedule

import (
    "strings"
    "time"

    "github.com/rafael-team/car-booking/internal/model"
)

// Layouts accepted for booking timestamps.  Values carry no offset, so
// time.Parse never shifts them; it only yields something comparable.
const (
    layoutMinute = "2006-01-02T15:04"
    layoutSecond = "2006-01-02T15:04:05"
)

// Field keys used in Window, FieldErrors and Draft.SetField.
const (
    FieldUserName  = "user_name"
    FieldStartTime = "start_time"
    FieldEndTime   = "end_time"
    FieldPurpose   = "purpose"
    FieldNotes     = "notes"
)

// Window is one candidate reservation before it is submitted.  All fields
// are strings at this layer; nothing numeric or date‑typed is needed until
// formatting.
type Window struct {
    UserName  string `json:"user_name"`
    StartTime string `json:"start_time"`
    EndTime   string `json:"end_time"`
    Purpose   string `json:"purpose"`
    Notes     string `json:"notes"`
}

// FieldErrors maps a field key to the message rendered inline next to it.
// An empty map means the window may be submitted.
type FieldErrors map[string]string

// ParseLocal parses a wall‑clock timestamp with or without seconds.  No
// timezone conversion is applied; both operands of any comparison are
// assumed to be in the same local frame.
func ParseLocal(s string) (time.Time, error) {
    if t, err := time.Parse(layoutSecond, s); err == nil {
        return t, nil
    }
    return time.Parse(layoutMinute, s)
}

// Normalize brings a minute‑precision timestamp (as produced by a
// datetime‑local input) to full seconds precision for storage.  Anything
// else is returned unchanged.
func Normalize(s string) string {
    if len(s) == len(layoutMinute) {
        return s + ":00"
    }
    return s
}

// Validate checks the window against the validation contract and returns
// every violation at once rather than stopping at the first.  The directory
// check is a case‑insensitive exact match against the provided team member
// list.  Unparseable timestamps are rejected here as well: the original
// form control made them unreachable, an API cannot assume that.
func (w Window) Validate(members []model.TeamMember) FieldErrors {
    errs := FieldErrors{}

    name := strings.TrimSpace(w.UserName)
    if name == "" {
        errs[FieldUserName] = "Name is required"
    } else if !nameInDirectory(name, members) {
        errs[FieldUserName] = "Please select a name from the list"
    }
    if w.StartTime == "" {
        errs[FieldStartTime] = "Start time is required"
    }
    if w.EndTime == "" {
        errs[FieldEndTime] = "End time is required"
    }
    if strings.TrimSpace(w.Purpose) == "" {
        errs[FieldPurpose] = "Purpose is required"
    }

    if w.StartTime != "" && w.EndTime != "" {
        start, startErr := ParseLocal(w.StartTime)
        end, endErr := ParseLocal(w.EndTime)
        if startErr != nil {
            errs[FieldStartTime] = "Start time is invalid"
        }
        if endErr != nil {
            errs[FieldEndTime] = "End time is invalid"
        }
        if startErr == nil && endErr == nil && !end.After(start) {
            errs[FieldEndTime] = "End time must be after start time"
        }
    }
    return errs
}

// nameInDirectory reports whether name matches a team member name exactly,
// ignoring case.
func nameInDirectory(name string, members []model.TeamMember) bool {
    for _, m := range members {
        if strings.EqualFold(m.Name, name) {
            return true
        }
    }
    return false
}
