package model

import "time"

// TeamMember is an entry in the team directory.  Names are unique
// case‑insensitively and are used only to validate the UserName on a
// booking before submission; bookings store a copy of the name, not a
// foreign key.
//
// Fields:
//  ID        – primary key identifier (UUID assigned by the store).
//  Name      – member name, unique ignoring case.
//  CreatedAt – creation timestamp.
type TeamMember struct {
    ID        string    `json:"id"`         // team_members.id
    Name      string    `json:"name"`       // team_members.name
    CreatedAt time.Time `json:"created_at"` // team_members.created_at
}
