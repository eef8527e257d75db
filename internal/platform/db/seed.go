package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"hrtracker/internal/platform/config"
)

// Seed inserts a default schedule template so a fresh install has something
// to assign. It never touches a non-empty table.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if !cfg.RunSeed {
		return nil
	}

	var templates int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM work_schedule_templates").Scan(&templates); err != nil {
		return err
	}
	if templates > 0 {
		return nil
	}

	_, err := pool.Exec(ctx, `
    INSERT INTO work_schedule_templates (name, description, check_in_time, check_out_time, is_active)
    VALUES ($1, $2, $3, $4, true)
  `, "Стандартный график", "Пятидневная неделя 09:00-18:00", "09:00", "18:00")
	return err
}
