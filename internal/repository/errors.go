// Package repository defines the data access layer over MySQL along with
// sentinel error values reused across repositories.  Handlers use the
// sentinels to map failures to HTTP responses; everything else is surfaced
// as a generic store error with the diagnostic detail logged server-side.
package repository

import "errors"

// ErrBookingNotFound is returned when a booking id does not exist.
var ErrBookingNotFound = errors.New("booking not found")

// ErrMemberNotFound is returned when a team member id does not exist.
var ErrMemberNotFound = errors.New("team member not found")

// ErrNameExists is returned when creating a team member whose name is
// already taken, compared case-insensitively.
var ErrNameExists = errors.New("name already exists")

// ErrSettingNotFound is returned when a settings key is absent.
var ErrSettingNotFound = errors.New("setting not found")

// ErrLocationNotFound is returned when a car location id does not exist.
var ErrLocationNotFound = errors.New("car location not found")
