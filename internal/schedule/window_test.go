package schedule

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/rafael-team/car-booking/internal/model"
)

func directory(names ...string) []model.TeamMember {
    members := make([]model.TeamMember, 0, len(names))
    for _, n := range names {
        members = append(members, model.TeamMember{ID: "id-" + n, Name: n})
    }
    return members
}

func TestValidateAccumulatesAllErrors(t *testing.T) {
    w := Window{
        StartTime: "2025-03-10T09:00:00",
        EndTime:   "2025-03-10T17:00:00",
    }
    errs := w.Validate(directory("Alice"))

    require.Len(t, errs, 2)
    assert.Equal(t, "Name is required", errs[FieldUserName])
    assert.Equal(t, "Purpose is required", errs[FieldPurpose])
}

func TestValidateNameMustBeInDirectory(t *testing.T) {
    w := Window{
        UserName:  "Mallory",
        StartTime: "2025-03-10T09:00:00",
        EndTime:   "2025-03-10T17:00:00",
        Purpose:   "site visit",
    }
    errs := w.Validate(directory("Alice", "Bob"))

    require.Len(t, errs, 1)
    assert.Equal(t, "Please select a name from the list", errs[FieldUserName])
}

func TestValidateNameMatchIgnoresCase(t *testing.T) {
    w := Window{
        UserName:  "alice",
        StartTime: "2025-03-10T09:00:00",
        EndTime:   "2025-03-10T17:00:00",
        Purpose:   "site visit",
    }
    assert.Empty(t, w.Validate(directory("Alice")))
}

func TestValidateRequiredTimes(t *testing.T) {
    w := Window{UserName: "Alice", Purpose: "site visit"}
    errs := w.Validate(directory("Alice"))

    require.Len(t, errs, 2)
    assert.Equal(t, "Start time is required", errs[FieldStartTime])
    assert.Equal(t, "End time is required", errs[FieldEndTime])
}

func TestValidateEndMustBeAfterStart(t *testing.T) {
    w := Window{
        UserName:  "Alice",
        StartTime: "2025-03-10T09:00:00",
        EndTime:   "2025-03-10T09:00:00",
        Purpose:   "site visit",
    }
    errs := w.Validate(directory("Alice"))
    require.Len(t, errs, 1)
    assert.Equal(t, "End time must be after start time", errs[FieldEndTime])

    w.EndTime = "2025-03-10T08:30:00"
    errs = w.Validate(directory("Alice"))
    require.Len(t, errs, 1)
    assert.Equal(t, "End time must be after start time", errs[FieldEndTime])
}

func TestValidateUnparseableTimestamps(t *testing.T) {
    w := Window{
        UserName:  "Alice",
        StartTime: "yesterday",
        EndTime:   "2025-03-10T17:00",
        Purpose:   "site visit",
    }
    errs := w.Validate(directory("Alice"))

    require.Len(t, errs, 1)
    assert.Equal(t, "Start time is invalid", errs[FieldStartTime])
}

func TestValidateAcceptsMinuteAndSecondPrecision(t *testing.T) {
    w := Window{
        UserName:  "Alice",
        StartTime: "2025-03-10T09:00",
        EndTime:   "2025-03-10T17:00:00",
        Purpose:   "site visit",
    }
    assert.Empty(t, w.Validate(directory("Alice")))
}

func TestNormalize(t *testing.T) {
    assert.Equal(t, "2025-03-10T09:00:00", Normalize("2025-03-10T09:00"))
    assert.Equal(t, "2025-03-10T09:00:30", Normalize("2025-03-10T09:00:30"))
    assert.Equal(t, "", Normalize(""))
    assert.Equal(t, "garbage", Normalize("garbage"))
}

func TestParseLocalComparesWithinOneFrame(t *testing.T) {
    start, err := ParseLocal("2025-03-10T09:00")
    require.NoError(t, err)
    end, err := ParseLocal("2025-03-10T17:30:00")
    require.NoError(t, err)

    assert.True(t, end.After(start))
    assert.InDelta(t, 8.5, end.Sub(start).Hours(), 0.001)
}
