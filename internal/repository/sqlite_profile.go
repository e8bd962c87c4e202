package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/cadence/internal/db"
	"github.com/alexanderramin/cadence/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
// The profile is a single row keyed by domain.DefaultProfileID; Get returns
// defaults when no row has been saved yet.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(dbtx db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: dbtx}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.UserProfile, error) {
	query := `SELECT id, timezone, workday_start_hour, workday_end_hour,
		preferred_duration_min, buffer_min, exclude_weekends
		FROM user_profile WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, domain.DefaultProfileID)

	var p domain.UserProfile
	var excludeWeekends int
	err := row.Scan(&p.ID, &p.Timezone, &p.WorkdayStartHour, &p.WorkdayEndHour,
		&p.PreferredDurationMin, &p.BufferMin, &excludeWeekends)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DefaultProfile(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	p.ExcludeWeekends = intToBool(excludeWeekends)
	return &p, nil
}

func (r *SQLiteProfileRepo) Save(ctx context.Context, p *domain.UserProfile) error {
	if p.ID == "" {
		p.ID = domain.DefaultProfileID
	}
	query := `INSERT INTO user_profile (id, timezone, workday_start_hour, workday_end_hour,
		preferred_duration_min, buffer_min, exclude_weekends)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			timezone = excluded.timezone,
			workday_start_hour = excluded.workday_start_hour,
			workday_end_hour = excluded.workday_end_hour,
			preferred_duration_min = excluded.preferred_duration_min,
			buffer_min = excluded.buffer_min,
			exclude_weekends = excluded.exclude_weekends`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Timezone, p.WorkdayStartHour, p.WorkdayEndHour,
		p.PreferredDurationMin, p.BufferMin, boolToInt(p.ExcludeWeekends))
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}
