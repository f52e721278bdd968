// Package queue defines message payloads exchanged over the message broker.
package queue

// Actions carried by a BookingEvent.
const (
    ActionCreated = "created"
    ActionDeleted = "deleted"
)

// BookingQueueName is the durable queue booking events are published to.
const BookingQueueName = "booking.events"

// BookingEvent is published when a booking is created or deleted.  It
// carries enough information for downstream consumers to log or notify
// without querying the primary database.
type BookingEvent struct {
    Action     string `json:"action"` // "created" or "deleted"
    BookingID  string `json:"booking_id"`
    UserName   string `json:"user_name"`
    StartTime  string `json:"start_time"`
    EndTime    string `json:"end_time"`
    Purpose    string `json:"purpose"`
    OccurredAt string `json:"occurred_at"`
}
