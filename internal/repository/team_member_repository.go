package repository

import (
    "context"
    "database/sql"
    "strings"

    "github.com/google/uuid"

    "github.com/rafael-team/car-booking/internal/model"
)

// TeamMemberRepo manages the team directory.  Names are unique ignoring
// case (enforced by a unique index over a case-insensitive collation);
// members are only ever created and deleted, never updated.
type TeamMemberRepo struct {
    db *sql.DB
}

// NewTeamMemberRepo returns a new TeamMemberRepo bound to the given database.
func NewTeamMemberRepo(db *sql.DB) *TeamMemberRepo { return &TeamMemberRepo{db: db} }

// List returns all team members ascending by name.
func (r *TeamMemberRepo) List(ctx context.Context) ([]model.TeamMember, error) {
    const q = `SELECT id, name, created_at FROM team_members ORDER BY name ASC`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    members := make([]model.TeamMember, 0)
    for rows.Next() {
        var m model.TeamMember
        if err := rows.Scan(&m.ID, &m.Name, &m.CreatedAt); err != nil {
            return nil, err
        }
        members = append(members, m)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return members, nil
}

// Create inserts a new team member and returns the stored row.  A
// duplicate name (case-insensitive) yields ErrNameExists.
func (r *TeamMemberRepo) Create(ctx context.Context, name string) (model.TeamMember, error) {
    id := uuid.NewString()
    const q = `INSERT INTO team_members (id, name) VALUES (?, ?)`
    if _, err := r.db.ExecContext(ctx, q, id, name); err != nil {
        // MySQL error 1062 = duplicate entry for a unique key
        if strings.Contains(strings.ToLower(err.Error()), "1062") {
            return model.TeamMember{}, ErrNameExists
        }
        return model.TeamMember{}, err
    }
    const sel = `SELECT id, name, created_at FROM team_members WHERE id = ?`
    var m model.TeamMember
    if err := r.db.QueryRowContext(ctx, sel, id).Scan(&m.ID, &m.Name, &m.CreatedAt); err != nil {
        return model.TeamMember{}, err
    }
    return m, nil
}

// Delete removes a team member by id, returning ErrMemberNotFound when no
// row matched.  Past bookings keep their denormalized copy of the name.
func (r *TeamMemberRepo) Delete(ctx context.Context, id string) error {
    const q = `DELETE FROM team_members WHERE id = ?`
    res, err := r.db.ExecContext(ctx, q, id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrMemberNotFound
    }
    return nil
}
