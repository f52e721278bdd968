package schedule

import (
    "context"
    "errors"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/rafael-team/car-booking/internal/model"
)

// fakeStore records Create calls so tests can assert whether and with what
// window the draft reached the store.
type fakeStore struct {
    calls int
    last  Window
    err   error
}

func (f *fakeStore) Create(ctx context.Context, w Window) (model.Booking, error) {
    f.calls++
    f.last = w
    if f.err != nil {
        return model.Booking{}, f.err
    }
    return model.Booking{
        ID:        "b-1",
        UserName:  w.UserName,
        StartTime: w.StartTime,
        EndTime:   w.EndTime,
        Purpose:   w.Purpose,
    }, nil
}

func TestOpenDefaultsWorkdayWindow(t *testing.T) {
    d := NewDraft()
    d.Open("2025-03-10")

    assert.Equal(t, StateDrafting, d.State())
    assert.Equal(t, "2025-03-10T09:00", d.Window().StartTime)
    assert.Equal(t, "2025-03-10T17:00", d.Window().EndTime)
    assert.Empty(t, d.Window().UserName)
    assert.Empty(t, d.Errors())
}

func TestSetFieldClearsOnlyThatError(t *testing.T) {
    d := NewDraft()
    d.Open("2025-03-10")

    _, err := d.Submit(context.Background(), directory("Alice"), &fakeStore{})
    require.ErrorIs(t, err, ErrValidation)
    require.Len(t, d.Errors(), 2) // name and purpose missing

    d.SetField(FieldUserName, "Alice")
    assert.Len(t, d.Errors(), 1)
    assert.Contains(t, d.Errors(), FieldPurpose)
    assert.Equal(t, StateDrafting, d.State())
}

func TestSetFieldIgnoredWhenClosed(t *testing.T) {
    d := NewDraft()
    d.SetField(FieldUserName, "Alice")
    assert.Empty(t, d.Window().UserName)
    assert.Equal(t, StateClosed, d.State())
}

func TestSubmitValidationFailureSkipsStore(t *testing.T) {
    store := &fakeStore{}
    d := NewDraft()
    d.Open("2025-03-10")
    d.SetField(FieldUserName, "Mallory") // not in the directory

    _, err := d.Submit(context.Background(), directory("Alice"), store)

    require.ErrorIs(t, err, ErrValidation)
    assert.Zero(t, store.calls)
    assert.Equal(t, StateDrafting, d.State())
    assert.Equal(t, "Please select a name from the list", d.Errors()[FieldUserName])
}

func TestSubmitNormalizesBeforeStore(t *testing.T) {
    store := &fakeStore{}
    d := NewDraft()
    d.Open("2025-03-10")
    d.SetField(FieldUserName, "  Alice  ")
    d.SetField(FieldPurpose, " supply run ")

    booking, err := d.Submit(context.Background(), directory("Alice"), store)

    require.NoError(t, err)
    require.Equal(t, 1, store.calls)
    assert.Equal(t, "Alice", store.last.UserName)
    assert.Equal(t, "supply run", store.last.Purpose)
    assert.Equal(t, "2025-03-10T09:00:00", store.last.StartTime)
    assert.Equal(t, "2025-03-10T17:00:00", store.last.EndTime)
    assert.Equal(t, "b-1", booking.ID)
}

func TestSubmitStoreFailureKeepsDraft(t *testing.T) {
    store := &fakeStore{err: errors.New("connection reset")}
    d := NewDraft()
    d.Open("2025-03-10")
    d.SetField(FieldUserName, "Alice")
    d.SetField(FieldPurpose, "supply run")

    _, err := d.Submit(context.Background(), directory("Alice"), store)

    require.Error(t, err)
    assert.NotErrorIs(t, err, ErrValidation)
    assert.Equal(t, StateDrafting, d.State())
    assert.Equal(t, "Alice", d.Window().UserName) // input retained for retry

    // Retry against a healthy store succeeds with the same draft.
    store.err = nil
    _, err = d.Submit(context.Background(), directory("Alice"), store)
    require.NoError(t, err)
    assert.Equal(t, StateClosed, d.State())
}

func TestSubmitSuccessResetsDraft(t *testing.T) {
    d := NewDraft()
    d.Open("2025-03-10")
    d.SetField(FieldUserName, "Alice")
    d.SetField(FieldPurpose, "supply run")

    _, err := d.Submit(context.Background(), directory("Alice"), &fakeStore{})

    require.NoError(t, err)
    assert.Equal(t, StateClosed, d.State())
    assert.Equal(t, Window{}, d.Window())
    assert.Empty(t, d.Errors())
}

func TestSubmitWithoutOpenDraft(t *testing.T) {
    d := NewDraft()
    _, err := d.Submit(context.Background(), directory("Alice"), &fakeStore{})
    assert.ErrorIs(t, err, ErrNotDrafting)
}

func TestIdenticalWindowsBothAccepted(t *testing.T) {
    store := &fakeStore{}
    members := directory("Alice", "Bob")

    for _, name := range []string{"Alice", "Bob"} {
        d := NewDraft()
        d.Open("2025-03-10")
        d.SetField(FieldUserName, name)
        d.SetField(FieldPurpose, "supply run")
        _, err := d.Submit(context.Background(), members, store)
        require.NoError(t, err)
    }
    // No double-booking rule: both submissions reach the store.
    assert.Equal(t, 2, store.calls)
}

func TestCancelDiscardsDraft(t *testing.T) {
    d := NewDraft()
    d.Open("2025-03-10")
    d.SetField(FieldUserName, "Alice")

    d.Cancel()

    assert.Equal(t, StateClosed, d.State())
    assert.Equal(t, Window{}, d.Window())
}
