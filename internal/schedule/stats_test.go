package schedule

import (
    "fmt"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/rafael-team/car-booking/internal/model"
)

// 2025-03-20 is a Thursday; the stats week runs Sunday 2025-03-16 through
// Saturday 2025-03-22.
var statsNow = time.Date(2025, time.March, 20, 12, 0, 0, 0, time.UTC)

func usageBooking(user, start, end string, created time.Time) model.Booking {
    return model.Booking{
        ID:        user + start,
        UserName:  user,
        StartTime: start,
        EndTime:   end,
        Purpose:   "errand",
        CreatedAt: created,
    }
}

func TestComputeUsageEmpty(t *testing.T) {
    u := ComputeUsage(statsNow, nil)

    assert.Zero(t, u.TotalBookings)
    assert.Zero(t, u.ThisMonthBookings)
    assert.Zero(t, u.ThisWeekBookings)
    assert.Zero(t, u.TotalHours)
    assert.Zero(t, u.AverageBookingDuration)
    assert.NotNil(t, u.TopUsers)
    assert.Empty(t, u.TopUsers)
    assert.NotNil(t, u.RecentActivity)
    assert.Empty(t, u.RecentActivity)
}

func TestComputeUsageCountsAndHours(t *testing.T) {
    created := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
    bookings := []model.Booking{
        // in week and month, 2h
        usageBooking("Alice", "2025-03-17T09:00:00", "2025-03-17T11:00:00", created),
        // in month only, 3.5h
        usageBooking("Bob", "2025-03-03T10:00:00", "2025-03-03T13:30:00", created),
        // previous month, 1h
        usageBooking("Alice", "2025-02-10T08:00:00", "2025-02-10T09:00:00", created),
    }

    u := ComputeUsage(statsNow, bookings)

    assert.Equal(t, 3, u.TotalBookings)
    assert.Equal(t, 2, u.ThisMonthBookings)
    assert.Equal(t, 1, u.ThisWeekBookings)
    assert.InDelta(t, 6.5, u.TotalHours, 0.001)
    // Average is total hours over total bookings, rounded to one decimal.
    assert.InDelta(t, 2.2, u.AverageBookingDuration, 0.001)
}

func TestComputeUsageWeekStartsOnSunday(t *testing.T) {
    created := time.Now()
    bookings := []model.Booking{
        usageBooking("Alice", "2025-03-15T09:00:00", "2025-03-15T10:00:00", created), // Saturday before
        usageBooking("Bob", "2025-03-16T09:00:00", "2025-03-16T10:00:00", created),   // Sunday, week start
        usageBooking("Carol", "2025-03-22T09:00:00", "2025-03-22T10:00:00", created), // Saturday, week end
        usageBooking("Dave", "2025-03-23T09:00:00", "2025-03-23T10:00:00", created),  // Sunday after
    }

    u := ComputeUsage(statsNow, bookings)
    assert.Equal(t, 2, u.ThisWeekBookings)
}

func TestComputeUsageTopUsers(t *testing.T) {
    created := time.Now()
    var bookings []model.Booking
    add := func(user string, n int) {
        for i := 0; i < n; i++ {
            start := fmt.Sprintf("2025-01-%02dT09:00:00", i+1)
            end := fmt.Sprintf("2025-01-%02dT10:00:00", i+1)
            bookings = append(bookings, usageBooking(user, start, end, created))
        }
    }
    add("Alice", 7)
    add("Bob", 3)
    add("Carol", 5)

    u := ComputeUsage(statsNow, bookings)

    require.Len(t, u.TopUsers, 3)
    assert.Equal(t, UserCount{Name: "Alice", Count: 7}, u.TopUsers[0])
    assert.Equal(t, UserCount{Name: "Carol", Count: 5}, u.TopUsers[1])
    assert.Equal(t, UserCount{Name: "Bob", Count: 3}, u.TopUsers[2])
}

func TestComputeUsageTopUsersCappedAtFive(t *testing.T) {
    created := time.Now()
    var bookings []model.Booking
    for i := 0; i < 7; i++ {
        user := fmt.Sprintf("user-%d", i)
        bookings = append(bookings, usageBooking(user, "2025-01-01T09:00:00", "2025-01-01T10:00:00", created))
    }

    u := ComputeUsage(statsNow, bookings)

    require.Len(t, u.TopUsers, 5)
    for i := 1; i < len(u.TopUsers); i++ {
        assert.GreaterOrEqual(t, u.TopUsers[i-1].Count, u.TopUsers[i].Count)
    }
    // Ties keep first-encounter order.
    assert.Equal(t, "user-0", u.TopUsers[0].Name)
}

func TestComputeUsageRecentActivity(t *testing.T) {
    base := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
    var bookings []model.Booking
    for i := 0; i < 7; i++ {
        b := usageBooking(fmt.Sprintf("user-%d", i), "2025-03-01T09:00:00", "2025-03-01T10:00:00", base.Add(time.Duration(i)*time.Hour))
        bookings = append(bookings, b)
    }

    u := ComputeUsage(statsNow, bookings)

    require.Len(t, u.RecentActivity, 5)
    assert.Equal(t, "user-6", u.RecentActivity[0].UserName) // newest first
    assert.Equal(t, "user-2", u.RecentActivity[4].UserName)
}

func TestComputeUsageUnparseableTimestamps(t *testing.T) {
    created := time.Now()
    bookings := []model.Booking{
        usageBooking("Alice", "garbage", "2025-03-17T11:00:00", created),
        usageBooking("Bob", "2025-03-17T09:00:00", "2025-03-17T11:00:00", created),
    }

    u := ComputeUsage(statsNow, bookings)

    // The broken row still counts toward totals but contributes no hours.
    assert.Equal(t, 2, u.TotalBookings)
    assert.InDelta(t, 2.0, u.TotalHours, 0.001)
    assert.InDelta(t, 1.0, u.AverageBookingDuration, 0.001)
}
