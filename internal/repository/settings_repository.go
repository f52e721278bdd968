package repository

import (
    "context"
    "database/sql"

    "github.com/rafael-team/car-booking/internal/model"
)

// SettingsRepo is the generic key/value settings store.  Values are opaque
// strings to this layer; known keys are documented on model.Setting.
type SettingsRepo struct {
    db *sql.DB
}

// NewSettingsRepo returns a new SettingsRepo bound to the given database.
func NewSettingsRepo(db *sql.DB) *SettingsRepo { return &SettingsRepo{db: db} }

// Get returns the value for a key or ErrSettingNotFound when absent.
func (r *SettingsRepo) Get(ctx context.Context, key string) (string, error) {
    const q = `SELECT value FROM app_settings WHERE ` + "`key`" + ` = ?`
    var value string
    err := r.db.QueryRowContext(ctx, q, key).Scan(&value)
    if err == sql.ErrNoRows {
        return "", ErrSettingNotFound
    }
    if err != nil {
        return "", err
    }
    return value, nil
}

// Set writes a value under a key, inserting or overwriting as needed.
func (r *SettingsRepo) Set(ctx context.Context, key, value string) error {
    const q = `INSERT INTO app_settings (` + "`key`" + `, value) VALUES (?, ?)
               ON DUPLICATE KEY UPDATE value = ?`
    _, err := r.db.ExecContext(ctx, q, key, value, value)
    return err
}

// List returns every setting ascending by key.
func (r *SettingsRepo) List(ctx context.Context) ([]model.Setting, error) {
    const q = `SELECT ` + "`key`" + `, value FROM app_settings ORDER BY ` + "`key`" + ` ASC`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    settings := make([]model.Setting, 0)
    for rows.Next() {
        var s model.Setting
        if err := rows.Scan(&s.Key, &s.Value); err != nil {
            return nil, err
        }
        settings = append(settings, s)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return settings, nil
}
