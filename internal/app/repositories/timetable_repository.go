package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adeemchu/studentportal/internal/app/models"
	"github.com/adeemchu/studentportal/internal/pkg/apperrors"
	"github.com/adeemchu/studentportal/internal/pkg/dberrors"
	"github.com/adeemchu/studentportal/internal/pkg/logger"
)

const timetableColumns = "timetable_id, class_id, subject_id, teacher_id, day_of_week, start_time, end_time, room_number"

// TimetableRepository handles timetable database operations
type TimetableRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTimetableRepository creates a new TimetableRepository
func NewTimetableRepository(db *pgxpool.Pool) *TimetableRepository {
	return &TimetableRepository{db: db, sb: statementBuilder()}
}

func scanTimetable(row pgx.Row) (*models.Timetable, error) {
	entry := &models.Timetable{}
	err := row.Scan(
		&entry.TimetableID, &entry.ClassID, &entry.SubjectID, &entry.TeacherID,
		&entry.DayOfWeek, &entry.StartTime, &entry.EndTime, &entry.RoomNumber,
	)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Create inserts a timetable entry and returns the generated timetable_id.
func (r *TimetableRepository) Create(ctx context.Context, entry *models.Timetable) (int64, error) {
	sql, args, err := r.sb.Insert("timetable").
		Columns("class_id", "subject_id", "teacher_id", "day_of_week", "start_time", "end_time", "room_number").
		Values(entry.ClassID, entry.SubjectID, entry.TeacherID, entry.DayOfWeek,
			entry.StartTime, entry.EndTime, entry.RoomNumber).
		Suffix("RETURNING timetable_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create timetable query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrInvalidReference
		}
		logger.Error().Err(err).Msg("Error executing create timetable query")
		return 0, fmt.Errorf("error creating timetable entry: %w", err)
	}

	return id, nil
}

// GetByID retrieves a timetable entry by ID
func (r *TimetableRepository) GetByID(ctx context.Context, id int64) (*models.Timetable, error) {
	sql, args, err := r.sb.Select(timetableColumns).
		From("timetable").
		Where(squirrel.Eq{"timetable_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get timetable query: %w", err)
	}

	entry, err := scanTimetable(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTimetableNotFound
		}
		logger.Error().Err(err).Int64("timetableID", id).Msg("Error scanning timetable row")
		return nil, fmt.Errorf("error getting timetable entry by ID: %w", err)
	}

	return entry, nil
}

// GetAll retrieves all timetable entries
func (r *TimetableRepository) GetAll(ctx context.Context) ([]*models.Timetable, error) {
	sql, args, err := r.sb.Select(timetableColumns).
		From("timetable").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all timetable query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all timetable query")
		return nil, fmt.Errorf("error querying timetable: %w", err)
	}
	defer rows.Close()

	entries := []*models.Timetable{}
	for rows.Next() {
		entry, err := scanTimetable(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning timetable row: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating timetable rows: %w", err)
	}

	return entries, nil
}

// GetByClassName retrieves the enriched timetable for a class, sorted by day
// of week then start time. Rows come back as row-mappings so the joined
// subject and teacher columns flow through to the response unaltered.
func (r *TimetableRepository) GetByClassName(ctx context.Context, className string) ([]map[string]interface{}, error) {
	sql, args, err := classTimetableQuery(className)
	if err != nil {
		return nil, fmt.Errorf("failed to build class timetable query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("className", className).Msg("Error executing class timetable query")
		return nil, fmt.Errorf("error querying class timetable: %w", err)
	}

	entries, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("error collecting class timetable rows: %w", err)
	}

	return entries, nil
}

// classTimetableQuery builds the enriched class timetable select. The ORDER BY
// keeps entries grouped by day and chronological within each day.
func classTimetableQuery(className string) (string, []interface{}, error) {
	return statementBuilder().Select(
		"tt.timetable_id", "tt.class_id", "tt.subject_id", "tt.teacher_id", "tt.day_of_week",
		"to_char(tt.start_time, 'HH24:MI:SS') AS start_time",
		"to_char(tt.end_time, 'HH24:MI:SS') AS end_time",
		"tt.room_number",
		"s.subject_name",
		"t.first_name AS teacher_first_name",
		"t.last_name AS teacher_last_name",
	).
		From("timetable tt").
		Join("subjects s ON tt.subject_id = s.subject_id").
		Join("teachers t ON tt.teacher_id = t.teacher_id").
		Join("classes c ON tt.class_id = c.class_id").
		Where(squirrel.Eq{"c.class_name": className}).
		OrderBy("tt.day_of_week", "tt.start_time").
		ToSql()
}

// Update replaces all fields of an existing timetable entry.
func (r *TimetableRepository) Update(ctx context.Context, entry *models.Timetable) error {
	sql, args, err := r.sb.Update("timetable").
		SetMap(map[string]interface{}{
			"class_id":    entry.ClassID,
			"subject_id":  entry.SubjectID,
			"teacher_id":  entry.TeacherID,
			"day_of_week": entry.DayOfWeek,
			"start_time":  entry.StartTime,
			"end_time":    entry.EndTime,
			"room_number": entry.RoomNumber,
		}).
		Where(squirrel.Eq{"timetable_id": entry.TimetableID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update timetable query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrInvalidReference
		}
		logger.Error().Err(err).Int64("timetableID", entry.TimetableID).Msg("Error executing update timetable query")
		return fmt.Errorf("error updating timetable entry: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTimetableNotFound
	}

	return nil
}

// Delete removes a timetable entry by ID.
func (r *TimetableRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("timetable").
		Where(squirrel.Eq{"timetable_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete timetable query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("timetableID", id).Msg("Error executing delete timetable query")
		return fmt.Errorf("error deleting timetable entry: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTimetableNotFound
	}

	return nil
}
