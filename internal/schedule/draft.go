package schedule

import (
    "context"
    "errors"
    "strings"

    "github.com/rafael-team/car-booking/internal/model"
)

// State enumerates the lifecycle of a booking draft.
type State int

const (
    StateClosed State = iota // no draft in progress
    StateDrafting            // draft open, fields editable
    StateSubmitting          // store call in flight
)

// String returns a readable state name for logs and errors.
func (s State) String() string {
    switch s {
    case StateClosed:
        return "closed"
    case StateDrafting:
        return "drafting"
    case StateSubmitting:
        return "submitting"
    }
    return "unknown"
}

// ErrValidation is returned by Submit when the draft fails validation.
// The per‑field messages are available via Errors(); no store call has
// been made.
var ErrValidation = errors.New("booking draft failed validation")

// ErrNotDrafting is returned by Submit when no draft is open.
var ErrNotDrafting = errors.New("no booking draft in progress")

// BookingStore is the narrow store contract the draft controller needs.
// The repository layer satisfies it; tests substitute a mock.
type BookingStore interface {
    Create(ctx context.Context, w Window) (model.Booking, error)
}

// Draft owns the lifecycle of a single in‑progress booking across
// open → edit → validate → submit → reset.
//
// Transitions:
//   Closed    --Open(day)-->              Drafting (09:00–17:00 defaults)
//   Drafting  --SetField-->               Drafting (clears that field's error)
//   Drafting  --Submit, invalid-->        Drafting (errors set, no store call)
//   Drafting  --Submit, store fails-->    Drafting (draft retained for retry)
//   Drafting  --Submit, store ok-->       Closed  (draft reset)
//   any       --Cancel-->                 Closed  (draft discarded)
type Draft struct {
    state  State
    window Window
    errors FieldErrors
}

// NewDraft returns a closed draft.
func NewDraft() *Draft {
    return &Draft{state: StateClosed, errors: FieldErrors{}}
}

// Open starts a draft for the selected calendar day (YYYY-MM-DD) with the
// window defaulted to 09:00–17:00 on that day and all other fields empty.
func (d *Draft) Open(day string) {
    d.window = Window{
        StartTime: day + "T09:00",
        EndTime:   day + "T17:00",
    }
    d.errors = FieldErrors{}
    d.state = StateDrafting
}

// SetField updates one field of the open draft and clears any error
// recorded for that field only.  Edits outside the Drafting state and
// unknown field keys are ignored.
func (d *Draft) SetField(field, value string) {
    if d.state != StateDrafting {
        return
    }
    switch field {
    case FieldUserName:
        d.window.UserName = value
    case FieldStartTime:
        d.window.StartTime = value
    case FieldEndTime:
        d.window.EndTime = value
    case FieldPurpose:
        d.window.Purpose = value
    case FieldNotes:
        d.window.Notes = value
    default:
        return
    }
    delete(d.errors, field)
}

// Submit validates the draft and, if it passes, creates the booking
// through the store.  On validation failure ErrValidation is returned,
// the error set is populated and the store is not called.  On store
// failure the draft (including the user's input) is retained so the
// submission can be retried.  On success the draft resets to Closed and
// the created booking is returned.
func (d *Draft) Submit(ctx context.Context, members []model.TeamMember, store BookingStore) (model.Booking, error) {
    if d.state != StateDrafting {
        return model.Booking{}, ErrNotDrafting
    }

    w := d.window
    w.StartTime = Normalize(w.StartTime)
    w.EndTime = Normalize(w.EndTime)
    w.UserName = strings.TrimSpace(w.UserName)
    w.Purpose = strings.TrimSpace(w.Purpose)

    if errs := w.Validate(members); len(errs) > 0 {
        d.errors = errs
        return model.Booking{}, ErrValidation
    }

    d.state = StateSubmitting
    booking, err := store.Create(ctx, w)
    if err != nil {
        d.state = StateDrafting // keep the draft for retry
        return model.Booking{}, err
    }

    d.state = StateClosed
    d.window = Window{}
    d.errors = FieldErrors{}
    return booking, nil
}

// Cancel discards the draft and closes it from any state.
func (d *Draft) Cancel() {
    d.state = StateClosed
    d.window = Window{}
    d.errors = FieldErrors{}
}

// State returns the current lifecycle state.
func (d *Draft) State() State { return d.state }

// Window returns the draft's current field values.
func (d *Draft) Window() Window { return d.window }

// Errors returns the per‑field messages from the last failed Submit.
func (d *Draft) Errors() FieldErrors { return d.errors }
