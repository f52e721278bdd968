package handler

import (
    "testing"

    "github.com/stretchr/testify/assert"

    "github.com/rafael-team/car-booking/internal/model"
    "github.com/rafael-team/car-booking/internal/repository"
)

func strptr(s string) *string { return &s }

func storedBooking() model.Booking {
    return model.Booking{
        ID:        "b-1",
        UserName:  "Alice",
        StartTime: "2025-03-10T09:00:00",
        EndTime:   "2025-03-10T17:00:00",
        Purpose:   "errand",
    }
}

func TestMergedWindowOrderedEndOnly(t *testing.T) {
    // Moving only the end before the stored start must be rejected.
    upd := repository.BookingUpdate{EndTime: strptr("2025-03-10T08:00:00")}
    assert.False(t, mergedWindowOrdered(storedBooking(), upd))

    upd = repository.BookingUpdate{EndTime: strptr("2025-03-10T09:00:00")}
    assert.False(t, mergedWindowOrdered(storedBooking(), upd))

    upd = repository.BookingUpdate{EndTime: strptr("2025-03-10T18:00:00")}
    assert.True(t, mergedWindowOrdered(storedBooking(), upd))
}

func TestMergedWindowOrderedStartOnly(t *testing.T) {
    // Moving only the start past the stored end must be rejected.
    upd := repository.BookingUpdate{StartTime: strptr("2025-03-10T17:30:00")}
    assert.False(t, mergedWindowOrdered(storedBooking(), upd))

    upd = repository.BookingUpdate{StartTime: strptr("2025-03-10T10:00:00")}
    assert.True(t, mergedWindowOrdered(storedBooking(), upd))
}

func TestMergedWindowOrderedBothBounds(t *testing.T) {
    upd := repository.BookingUpdate{
        StartTime: strptr("2025-03-11T09:00:00"),
        EndTime:   strptr("2025-03-11T08:00:00"),
    }
    assert.False(t, mergedWindowOrdered(storedBooking(), upd))

    upd = repository.BookingUpdate{
        StartTime: strptr("2025-03-11T09:00:00"),
        EndTime:   strptr("2025-03-11T11:00:00"),
    }
    assert.True(t, mergedWindowOrdered(storedBooking(), upd))
}

func TestMergedWindowOrderedNoTimeChange(t *testing.T) {
    upd := repository.BookingUpdate{UserName: strptr("Bob")}
    assert.True(t, mergedWindowOrdered(storedBooking(), upd))
}

func TestMergedWindowOrderedUnparseableStoredBound(t *testing.T) {
    // A stored bound that no longer parses does not block the edit.
    b := storedBooking()
    b.EndTime = "garbage"
    upd := repository.BookingUpdate{StartTime: strptr("2025-03-10T10:00:00")}
    assert.True(t, mergedWindowOrdered(b, upd))
}
