package schedule

import (
    "math"
    "sort"
    "time"

    "github.com/rafael-team/car-booking/internal/model"
)

// UserCount pairs a team member name with how many bookings they made.
type UserCount struct {
    Name  string `json:"name"`
    Count int    `json:"count"`
}

// Usage is the statistics summary derived from the full booking list.
// It is recomputed from a fresh fetch on every load of the stats view;
// nothing here is persisted or cached.
type Usage struct {
    TotalBookings          int             `json:"total_bookings"`
    ThisMonthBookings      int             `json:"this_month_bookings"`
    ThisWeekBookings       int             `json:"this_week_bookings"`
    TotalHours             float64         `json:"total_hours"`
    AverageBookingDuration float64         `json:"average_booking_duration"`
    TopUsers               []UserCount     `json:"top_users"`
    RecentActivity         []model.Booking `json:"recent_activity"`
}

// ComputeUsage derives a Usage summary from the booking list at the given
// instant.  Month and week membership are judged on the booking's start
// time; the week starts on Sunday.  Hours are rounded to one decimal.
// Bookings whose timestamps fail to parse contribute zero hours but still
// count toward totals.
func ComputeUsage(now time.Time, bookings []model.Booking) Usage {
    u := Usage{
        TotalBookings:  len(bookings),
        TopUsers:       []UserCount{},
        RecentActivity: []model.Booking{},
    }

    // Week bounds anchored to midnight in the same frame ParseLocal uses,
    // so comparisons stay within one local frame.
    today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
    weekStart := today.AddDate(0, 0, -int(today.Weekday()))
    weekEnd := weekStart.AddDate(0, 0, 7)

    counts := map[string]int{}
    order := []string{} // first-encountered order, for stable ties

    var totalHours float64
    for _, b := range bookings {
        start, startErr := ParseLocal(b.StartTime)
        end, endErr := ParseLocal(b.EndTime)

        if startErr == nil {
            if start.Year() == now.Year() && start.Month() == now.Month() {
                u.ThisMonthBookings++
            }
            if !start.Before(weekStart) && start.Before(weekEnd) {
                u.ThisWeekBookings++
            }
        }
        if startErr == nil && endErr == nil {
            totalHours += end.Sub(start).Hours()
        }

        if _, seen := counts[b.UserName]; !seen {
            order = append(order, b.UserName)
        }
        counts[b.UserName]++
    }

    u.TotalHours = round1(totalHours)
    if len(bookings) > 0 {
        u.AverageBookingDuration = round1(totalHours / float64(len(bookings)))
    }

    top := make([]UserCount, 0, len(order))
    for _, name := range order {
        top = append(top, UserCount{Name: name, Count: counts[name]})
    }
    sort.SliceStable(top, func(i, j int) bool { return top[i].Count > top[j].Count })
    if len(top) > 5 {
        top = top[:5]
    }
    u.TopUsers = top

    recent := make([]model.Booking, len(bookings))
    copy(recent, bookings)
    sort.SliceStable(recent, func(i, j int) bool {
        return recent[i].CreatedAt.After(recent[j].CreatedAt)
    })
    if len(recent) > 5 {
        recent = recent[:5]
    }
    u.RecentActivity = recent

    return u
}

func round1(x float64) float64 {
    return math.Round(x*10) / 10
}
