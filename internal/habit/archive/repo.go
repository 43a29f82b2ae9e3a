package archive

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitpulse/fitpulse/internal/habit"
	"github.com/fitpulse/fitpulse/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrEntryNotFound = errors.New("activity entry not found")

type ListParams struct {
	From *time.Time
	To   *time.Time
	Page int
	Size int
}

// Repo mirrors activity log entries into postgres for history queries.
// One row per day - a later write for the same day replaces the earlier
// one, unlike the append-only snapshot log.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, entry habit.ActivityEntry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.habitarchive.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("entry.date", entry.Date))

	tag, err := r.db.Exec(
		ctx,
		`INSERT INTO activity
				(day, completed, exercise_count, duration_minutes, calories_burned, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (day) DO UPDATE SET
				completed = EXCLUDED.completed,
				exercise_count = EXCLUDED.exercise_count,
				duration_minutes = EXCLUDED.duration_minutes,
				calories_burned = EXCLUDED.calories_burned,
				created_at = EXCLUDED.created_at;`,
		entry.Date, entry.Completed, entry.ExerciseCount, entry.DurationMinutes, entry.CaloriesBurned, time.Now(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("unexpected error [no rows affected]")
	}

	return nil
}

func (r *Repo) Get(ctx context.Context, date string) (_ *habit.ActivityEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.habitarchive.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT day, completed, exercise_count, duration_minutes, calories_burned FROM activity WHERE day = $1;`,
		date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ErrEntryNotFound
	}

	var entry habit.ActivityEntry
	if err := rows.Scan(
		&entry.Date, &entry.Completed, &entry.ExerciseCount, &entry.DurationMinutes, &entry.CaloriesBurned,
	); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	return &entry, nil
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []habit.ActivityEntry, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.habitarchive.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("page", params.Page),
		attribute.Int("size", params.Size),
	)

	total, err = r.Count(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("count entries: %w", err)
	}

	limit := params.Size
	offset := (params.Page - 1) * params.Size

	query := `SELECT day, completed, exercise_count, duration_minutes, calories_burned FROM activity`
	whereClause, args := listWhereClause(params)
	query += whereClause
	query += fmt.Sprintf(" ORDER BY day DESC LIMIT %d OFFSET %d;", limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []habit.ActivityEntry
	for rows.Next() {
		var entry habit.ActivityEntry
		if err := rows.Scan(
			&entry.Date, &entry.Completed, &entry.ExerciseCount, &entry.DurationMinutes, &entry.CaloriesBurned,
		); err != nil {
			return nil, 0, fmt.Errorf("rows scan: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

func (r *Repo) Count(ctx context.Context, params ListParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.habitarchive.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := `SELECT COUNT(*) FROM activity`
	whereClause, args := listWhereClause(params)
	query += whereClause + ";"

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}

	return count, nil
}

func listWhereClause(params ListParams) (string, []any) {
	var conditions []string
	var args []any
	if params.From != nil {
		args = append(args, habit.DateKey(*params.From))
		conditions = append(conditions, fmt.Sprintf("day >= $%d", len(args)))
	}
	if params.To != nil {
		args = append(args, habit.DateKey(*params.To))
		conditions = append(conditions, fmt.Sprintf("day <= $%d", len(args)))
	}
	if len(conditions) == 0 {
		return "", nil
	}
	clause := " WHERE " + conditions[0]
	for _, c := range conditions[1:] {
		clause += " AND " + c
	}
	return clause, args
}
