package handler

import (
    "context"
    "errors"
    "log"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/rafael-team/car-booking/internal/model"
    "github.com/rafael-team/car-booking/internal/queue"
    "github.com/rafael-team/car-booking/internal/repository"
    "github.com/rafael-team/car-booking/internal/schedule"
    queuepublisher "github.com/rafael-team/car-booking/internal/service"
)

// BookingHandler bundles dependencies for booking endpoints.
type BookingHandler struct {
    Bookings *repository.BookingRepo
    Members  *repository.TeamMemberRepo
    Settings *repository.SettingsRepo
}

func NewBookingHandler(b *repository.BookingRepo, m *repository.TeamMemberRepo, s *repository.SettingsRepo) *BookingHandler {
    return &BookingHandler{Bookings: b, Members: m, Settings: s}
}

// ----- DTOs -----

type bookingUpdateReq struct {
    UserName  *string `json:"user_name"`
    StartTime *string `json:"start_time"`
    EndTime   *string `json:"end_time"`
    Purpose   *string `json:"purpose"`
    Notes     *string `json:"notes"`
}

// List returns all bookings ordered by start time.  With ?date=YYYY-MM-DD
// the response narrows to that calendar day and reports whether the day
// has any booking at all.
func (h *BookingHandler) List(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    bookings, err := h.Bookings.List(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
    }

    date := strings.TrimSpace(c.QueryParam("date"))
    if date == "" {
        return c.JSON(http.StatusOK, echo.Map{"bookings": bookings})
    }
    if _, err := time.Parse(schedule.DateLayout, date); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
    }

    cal := schedule.NewCalendar(bookings)
    return c.JSON(http.StatusOK, echo.Map{
        "date":     date,
        "booked":   cal.IsDayBooked(date),
        "bookings": cal.SchedulesForDate(date),
    })
}

// Calendar returns the sorted list of days that have at least one booking,
// optionally narrowed to ?month=YYYY-MM.
func (h *BookingHandler) Calendar(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    bookings, err := h.Bookings.List(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
    }

    days := schedule.NewCalendar(bookings).BookedDays()

    month := strings.TrimSpace(c.QueryParam("month"))
    if month != "" {
        if _, err := time.Parse("2006-01", month); err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "month must be YYYY-MM"})
        }
        filtered := make([]string, 0, len(days))
        for _, d := range days {
            if strings.HasPrefix(d, month+"-") {
                filtered = append(filtered, d)
            }
        }
        days = filtered
    }

    return c.JSON(http.StatusOK, echo.Map{"days": days})
}

// Create runs the submitted fields through a booking draft: validation
// failures come back as a per-field error map with HTTP 422 and nothing is
// written.  On success the created booking is returned together with the
// stored key location so the caller can tell the driver where the key is.
func (h *BookingHandler) Create(c echo.Context) error {
    var req schedule.Window
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    members, err := h.Members.List(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load team members"})
    }

    draft := schedule.NewDraft()
    draft.Open(schedule.DateOf(schedule.Normalize(req.StartTime)))
    draft.SetField(schedule.FieldUserName, req.UserName)
    draft.SetField(schedule.FieldStartTime, req.StartTime)
    draft.SetField(schedule.FieldEndTime, req.EndTime)
    draft.SetField(schedule.FieldPurpose, req.Purpose)
    draft.SetField(schedule.FieldNotes, req.Notes)

    booking, err := draft.Submit(ctx, members, h.Bookings)
    if err != nil {
        if errors.Is(err, schedule.ErrValidation) {
            return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": draft.Errors()})
        }
        log.Printf("booking create failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create booking"})
    }

    // Best effort: a booking must succeed even when the broker is down.
    publishBookingEvent(queue.ActionCreated, booking)

    // The key location is advisory; a missing setting is not an error.
    keyLocation, _ := h.Settings.Get(ctx, settingKeyLocation)

    return c.JSON(http.StatusCreated, echo.Map{
        "booking":      booking,
        "key_location": keyLocation,
    })
}

// Update partially edits a booking (admin only).  Provided time fields are
// normalized to the seconds form; editing either bound re-checks the whole
// window against the stored row so the end always stays after the start.
func (h *BookingHandler) Update(c echo.Context) error {
    id := c.Param("id")

    var req bookingUpdateReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }

    upd := repository.BookingUpdate{
        UserName: req.UserName,
        Purpose:  req.Purpose,
        Notes:    req.Notes,
    }
    if req.StartTime != nil {
        s := schedule.Normalize(strings.TrimSpace(*req.StartTime))
        if _, err := schedule.ParseLocal(s); err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_time is invalid"})
        }
        upd.StartTime = &s
    }
    if req.EndTime != nil {
        e := schedule.Normalize(strings.TrimSpace(*req.EndTime))
        if _, err := schedule.ParseLocal(e); err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_time is invalid"})
        }
        upd.EndTime = &e
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    // Changing either bound must keep the whole window ordered, including
    // the bound that stays on the stored row.
    if upd.StartTime != nil || upd.EndTime != nil {
        current, err := h.Bookings.GetByID(ctx, id)
        if err != nil {
            if errors.Is(err, repository.ErrBookingNotFound) {
                return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
            }
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
        }
        if !mergedWindowOrdered(current, upd) {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_time must be after start_time"})
        }
    }

    booking, err := h.Bookings.Update(ctx, id, upd)
    if err != nil {
        if errors.Is(err, repository.ErrBookingNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update booking"})
    }
    return c.JSON(http.StatusOK, echo.Map{"booking": booking})
}

// Delete removes a booking (admin only) and publishes a deleted event.
func (h *BookingHandler) Delete(c echo.Context) error {
    id := c.Param("id")

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    booking, err := h.Bookings.GetByID(ctx, id)
    if err != nil {
        if errors.Is(err, repository.ErrBookingNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }

    if err := h.Bookings.Delete(ctx, id); err != nil {
        if errors.Is(err, repository.ErrBookingNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete booking"})
    }

    publishBookingEvent(queue.ActionDeleted, booking)
    return c.NoContent(http.StatusNoContent)
}

// mergedWindowOrdered applies a partial update to the stored window and
// reports whether the resulting end still falls after the start.  A stored
// bound that no longer parses does not block the edit; the edit may be the
// fix for it.
func mergedWindowOrdered(current model.Booking, upd repository.BookingUpdate) bool {
    startStr, endStr := current.StartTime, current.EndTime
    if upd.StartTime != nil {
        startStr = *upd.StartTime
    }
    if upd.EndTime != nil {
        endStr = *upd.EndTime
    }
    start, startErr := schedule.ParseLocal(startStr)
    end, endErr := schedule.ParseLocal(endStr)
    if startErr != nil || endErr != nil {
        return true
    }
    return end.After(start)
}

// publishBookingEvent fires an event at the broker without blocking the
// request; publish failures are logged inside the publisher and ignored.
func publishBookingEvent(action string, b model.Booking) {
    ev := queue.BookingEvent{
        Action:     action,
        BookingID:  b.ID,
        UserName:   b.UserName,
        StartTime:  b.StartTime,
        EndTime:    b.EndTime,
        Purpose:    b.Purpose,
        OccurredAt: time.Now().UTC().Format(time.RFC3339),
    }
    go func() {
        ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
        defer cancel()
        _ = queuepublisher.PublishBookingEvent(ctx, ev)
    }()
}
