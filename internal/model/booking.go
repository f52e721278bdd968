package model

import "time"

// Booking records a reservation of the shared car for a window of time.
// Start and end times are opaque local wall‑clock strings in the form
// YYYY-MM-DDTHH:mm:ss.  They are stored and returned verbatim: the
// application never converts them between timezones, so the date and
// time a user entered is exactly the date and time everyone else sees.
//
// Fields:
//  ID        – primary key identifier (UUID assigned by the store).
//  UserName  – denormalized copy of the team member's name.  Deleting
//              the member later does not affect past bookings.
//  StartTime – local wall‑clock start of the booking window.
//  EndTime   – local wall‑clock end; strictly after StartTime for any
//              booking accepted by validation.
//  Purpose   – free‑text reason for the trip.
//  Notes     – optional free‑text notes.
//  CreatedAt – creation timestamp, store‑assigned.
//  UpdatedAt – last update timestamp, store‑assigned.
type Booking struct {
    ID        string    `json:"id"`         // car_bookings.id
    UserName  string    `json:"user_name"`  // car_bookings.user_name
    StartTime string    `json:"start_time"` // car_bookings.start_time
    EndTime   string    `json:"end_time"`   // car_bookings.end_time
    Purpose   string    `json:"purpose"`    // car_bookings.purpose
    Notes     *string   `json:"notes"`      // car_bookings.notes (nullable)
    CreatedAt time.Time `json:"created_at"` // car_bookings.created_at
    UpdatedAt time.Time `json:"updated_at"` // car_bookings.updated_at
}
