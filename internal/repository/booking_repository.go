package repository

import (
    "context"
    "database/sql"
    "strings"

    "github.com/google/uuid"

    "github.com/rafael-team/car-booking/internal/model"
    "github.com/rafael-team/car-booking/internal/schedule"
)

// BookingRepo provides CRUD operations for car bookings.  Start and end
// times are stored in a VARCHAR column exactly as validated, never as
// DATETIME: the value a user entered is the value every client gets back,
// with no driver or server timezone interpretation in between.  Lexical
// ordering of the YYYY-MM-DDTHH:mm:ss form is chronological, so the store
// can still sort on the column.
type BookingRepo struct {
    db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingColumns = `id, user_name, start_time, end_time, purpose, notes, created_at, updated_at`

// List returns every booking ascending by start time.  When there are no
// bookings an empty slice is returned.
func (r *BookingRepo) List(ctx context.Context) ([]model.Booking, error) {
    const q = `SELECT ` + bookingColumns + ` FROM car_bookings ORDER BY start_time ASC`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    bookings := make([]model.Booking, 0)
    for rows.Next() {
        b, err := scanBooking(rows)
        if err != nil {
            return nil, err
        }
        bookings = append(bookings, b)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return bookings, nil
}

// GetByID returns a single booking or ErrBookingNotFound.
func (r *BookingRepo) GetByID(ctx context.Context, id string) (model.Booking, error) {
    const q = `SELECT ` + bookingColumns + ` FROM car_bookings WHERE id = ?`
    b, err := scanBooking(r.db.QueryRowContext(ctx, q, id))
    if err == sql.ErrNoRows {
        return model.Booking{}, ErrBookingNotFound
    }
    return b, err
}

// Create inserts a booking from a validated time window, assigning a UUID
// and reading the row back so the caller sees the store-assigned
// timestamps.  It satisfies schedule.BookingStore.  There is deliberately
// no overlap check here: overlapping bookings are allowed.
func (r *BookingRepo) Create(ctx context.Context, w schedule.Window) (model.Booking, error) {
    id := uuid.NewString()
    var notes interface{}
    if w.Notes != "" {
        notes = w.Notes
    }
    const q = `INSERT INTO car_bookings (id, user_name, start_time, end_time, purpose, notes)
               VALUES (?, ?, ?, ?, ?, ?)`
    if _, err := r.db.ExecContext(ctx, q, id, w.UserName, w.StartTime, w.EndTime, w.Purpose, notes); err != nil {
        return model.Booking{}, err
    }
    return r.GetByID(ctx, id)
}

// BookingUpdate carries the fields of a partial update.  Nil pointers
// leave the column untouched; a pointer to the empty string clears notes.
type BookingUpdate struct {
    UserName  *string
    StartTime *string
    EndTime   *string
    Purpose   *string
    Notes     *string
}

// Update applies a partial update to a booking and returns the updated
// row.  An update with no fields set returns the row unchanged.
func (r *BookingRepo) Update(ctx context.Context, id string, upd BookingUpdate) (model.Booking, error) {
    sets := make([]string, 0, 5)
    args := make([]interface{}, 0, 6)
    add := func(col string, v *string) {
        if v != nil {
            sets = append(sets, col+" = ?")
            args = append(args, *v)
        }
    }
    add("user_name", upd.UserName)
    add("start_time", upd.StartTime)
    add("end_time", upd.EndTime)
    add("purpose", upd.Purpose)
    if upd.Notes != nil {
        if *upd.Notes == "" {
            sets = append(sets, "notes = NULL")
        } else {
            sets = append(sets, "notes = ?")
            args = append(args, *upd.Notes)
        }
    }
    if len(sets) == 0 {
        return r.GetByID(ctx, id)
    }
    args = append(args, id)
    q := `UPDATE car_bookings SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`
    if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
        return model.Booking{}, err
    }
    // RowsAffected is 0 both for an unknown id and for a no-op update;
    // the read-back distinguishes the two.
    return r.GetByID(ctx, id)
}

// Delete removes a booking by id, returning ErrBookingNotFound when no
// row matched.
func (r *BookingRepo) Delete(ctx context.Context, id string) error {
    const q = `DELETE FROM car_bookings WHERE id = ?`
    res, err := r.db.ExecContext(ctx, q, id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrBookingNotFound
    }
    return nil
}

// rowScanner lets scanBooking work with both *sql.Row and *sql.Rows.
type rowScanner interface {
    Scan(dest ...interface{}) error
}

func scanBooking(s rowScanner) (model.Booking, error) {
    var b model.Booking
    var notes sql.NullString
    err := s.Scan(&b.ID, &b.UserName, &b.StartTime, &b.EndTime, &b.Purpose, &notes, &b.CreatedAt, &b.UpdatedAt)
    if err != nil {
        return model.Booking{}, err
    }
    if notes.Valid {
        n := notes.String
        b.Notes = &n
    }
    return b, nil
}
