package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/db"
	"github.com/alexanderramin/cadence/internal/domain"
)

const dateLayout = "2006-01-02"

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// activityColumns is the canonical SELECT column list for activities.
const activityColumns = `id, name, description, policy, archived_at,
		start_time, end_time, max_frequency_days, deadline,
		rec_frequency, rec_interval, rec_by_weekdays, rec_by_monthdays, rec_by_setpos,
		rec_start_date, rec_end_date, window_start_min, window_end_min,
		created_at, updated_at`

// SQLiteActivityRepo implements ActivityRepo using a SQLite database.
type SQLiteActivityRepo struct {
	db db.DBTX
}

// NewSQLiteActivityRepo creates a new SQLiteActivityRepo.
func NewSQLiteActivityRepo(dbtx db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: dbtx}
}

func (r *SQLiteActivityRepo) Create(ctx context.Context, a *domain.Activity) error {
	query := `INSERT INTO activities (` + activityColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, r.args(a)...)
	if err != nil {
		return fmt.Errorf("inserting activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) Update(ctx context.Context, a *domain.Activity) error {
	query := `UPDATE activities SET
		name = ?, description = ?, policy = ?, archived_at = ?,
		start_time = ?, end_time = ?, max_frequency_days = ?, deadline = ?,
		rec_frequency = ?, rec_interval = ?, rec_by_weekdays = ?, rec_by_monthdays = ?, rec_by_setpos = ?,
		rec_start_date = ?, rec_end_date = ?, window_start_min = ?, window_end_min = ?,
		created_at = ?, updated_at = ?
		WHERE id = ?`
	args := append(r.args(a)[1:], a.ID)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating activity: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating activity: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteActivityRepo) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanActivity(row)
}

func (r *SQLiteActivityRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities`
	if !includeArchived {
		query += ` WHERE archived_at IS NULL`
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	var out []*domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	return out, nil
}

func (r *SQLiteActivityRepo) Archive(ctx context.Context, id string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := r.db.ExecContext(ctx,
		`UPDATE activities SET archived_at = ?, updated_at = ? WHERE id = ? AND archived_at IS NULL`,
		now, now, id)
	if err != nil {
		return fmt.Errorf("archiving activity: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("archiving activity: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteActivityRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting activity: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting activity: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// args returns the insert argument list in activityColumns order.
func (r *SQLiteActivityRepo) args(a *domain.Activity) []any {
	var recFreq, recWeekdays, recMonthdays, recSetpos any
	var recInterval any
	var recStart, recEnd any
	if rec := a.Recurrence; rec != nil {
		recFreq = string(rec.Frequency)
		recInterval = rec.Interval
		recWeekdays = weekdaysToCSV(rec.ByWeekdays)
		recMonthdays = intsToCSV(rec.ByMonthDays)
		recSetpos = intsToCSV(rec.BySetPos)
		recStart = rec.StartDate.Format(dateLayout)
		recEnd = nullableTimeToString(rec.EndDate, dateLayout)
	}

	return []any{
		a.ID,
		a.Name,
		a.Description,
		string(a.Policy),
		nullableTimeToString(a.ArchivedAt, time.RFC3339),
		nullableTimeToString(a.StartTime, time.RFC3339),
		nullableTimeToString(a.EndTime, time.RFC3339),
		nullableIntToValue(a.MaxFrequencyDays),
		nullableTimeToString(a.Deadline, time.RFC3339),
		recFreq,
		recInterval,
		recWeekdays,
		recMonthdays,
		recSetpos,
		recStart,
		recEnd,
		nullableIntToValue(a.WindowStartMin),
		nullableIntToValue(a.WindowEndMin),
		a.CreatedAt.Format(time.RFC3339),
		a.UpdatedAt.Format(time.RFC3339),
	}
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanActivity(row rowScanner) (*domain.Activity, error) {
	var a domain.Activity
	var policy string
	var archivedAt, startTime, endTime, deadline sql.NullString
	var maxFreq, recInterval, winStart, winEnd sql.NullInt64
	var recFreq, recWeekdays, recMonthdays, recSetpos, recStart, recEnd sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(
		&a.ID, &a.Name, &a.Description, &policy, &archivedAt,
		&startTime, &endTime, &maxFreq, &deadline,
		&recFreq, &recInterval, &recWeekdays, &recMonthdays, &recSetpos,
		&recStart, &recEnd, &winStart, &winEnd,
		&createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning activity: %w", err)
	}

	a.Policy = domain.SchedulePolicy(policy)
	a.ArchivedAt = parseNullableTime(archivedAt, time.RFC3339)
	a.StartTime = parseNullableTime(startTime, time.RFC3339)
	a.EndTime = parseNullableTime(endTime, time.RFC3339)
	a.MaxFrequencyDays = nullableIntFromSQL(maxFreq)
	a.Deadline = parseNullableTime(deadline, time.RFC3339)
	a.WindowStartMin = nullableIntFromSQL(winStart)
	a.WindowEndMin = nullableIntFromSQL(winEnd)

	if recFreq.Valid && recFreq.String != "" {
		rec := &domain.RecurrenceRule{
			Frequency:   domain.Frequency(recFreq.String),
			ByWeekdays:  csvToWeekdays(recWeekdays.String),
			ByMonthDays: csvToInts(recMonthdays.String),
			BySetPos:    csvToInts(recSetpos.String),
		}
		if recInterval.Valid {
			rec.Interval = int(recInterval.Int64)
		}
		if t := parseNullableTime(recStart, dateLayout); t != nil {
			rec.StartDate = *t
		}
		rec.EndDate = parseNullableTime(recEnd, dateLayout)
		a.Recurrence = rec
	}

	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		a.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		a.UpdatedAt = t
	}
	return &a, nil
}
