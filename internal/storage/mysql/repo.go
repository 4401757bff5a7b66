package mysql

import (
	"context"
	"database/sql"
	"errors"
)

// SettingsRepo persists UI settings in the settings table.
type SettingsRepo struct{ db *sql.DB }

func New(db *sql.DB) *SettingsRepo { return &SettingsRepo{db: db} }

func (r *SettingsRepo) Get(ctx context.Context, key string) (string, bool, error) {
	var v sql.NullString
	if err := r.db.QueryRowContext(ctx, getSettingSQL, key).Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return v.String, true, nil
}

func (r *SettingsRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, upsertSettingSQL, key, value)
	return err
}

func (r *SettingsRepo) Del(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, deleteSettingSQL, key)
	return err
}
