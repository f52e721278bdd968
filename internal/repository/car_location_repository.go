package repository

import (
    "context"
    "database/sql"

    "github.com/google/uuid"

    "github.com/rafael-team/car-booking/internal/model"
)

// CarLocationRepo stores dropped pins recording where the car was parked.
// The newest pin is the car's current location.
type CarLocationRepo struct {
    db *sql.DB
}

// NewCarLocationRepo returns a new CarLocationRepo bound to the given database.
func NewCarLocationRepo(db *sql.DB) *CarLocationRepo { return &CarLocationRepo{db: db} }

// List returns all recorded locations, newest first.
func (r *CarLocationRepo) List(ctx context.Context) ([]model.CarLocation, error) {
    const q = `SELECT id, latitude, longitude, description, created_at
               FROM car_locations ORDER BY created_at DESC`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    locations := make([]model.CarLocation, 0)
    for rows.Next() {
        var l model.CarLocation
        var desc sql.NullString
        if err := rows.Scan(&l.ID, &l.Latitude, &l.Longitude, &desc, &l.CreatedAt); err != nil {
            return nil, err
        }
        if desc.Valid {
            d := desc.String
            l.Description = &d
        }
        locations = append(locations, l)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return locations, nil
}

// Create records a new pin and returns the stored row.
func (r *CarLocationRepo) Create(ctx context.Context, lat, lng float64, description string) (model.CarLocation, error) {
    id := uuid.NewString()
    var desc interface{}
    if description != "" {
        desc = description
    }
    const q = `INSERT INTO car_locations (id, latitude, longitude, description) VALUES (?, ?, ?, ?)`
    if _, err := r.db.ExecContext(ctx, q, id, lat, lng, desc); err != nil {
        return model.CarLocation{}, err
    }
    const sel = `SELECT id, latitude, longitude, description, created_at FROM car_locations WHERE id = ?`
    var l model.CarLocation
    var stored sql.NullString
    if err := r.db.QueryRowContext(ctx, sel, id).Scan(&l.ID, &l.Latitude, &l.Longitude, &stored, &l.CreatedAt); err != nil {
        return model.CarLocation{}, err
    }
    if stored.Valid {
        d := stored.String
        l.Description = &d
    }
    return l, nil
}

// Delete removes a pin by id, returning ErrLocationNotFound when no row
// matched.
func (r *CarLocationRepo) Delete(ctx context.Context, id string) error {
    const q = `DELETE FROM car_locations WHERE id = ?`
    res, err := r.db.ExecContext(ctx, q, id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrLocationNotFound
    }
    return nil
}
