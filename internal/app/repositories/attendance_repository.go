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

const attendanceColumns = "attendance_id, student_id, date, status, remarks, recorded_by"

// AttendanceRepository handles attendance database operations
type AttendanceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{db: db, sb: statementBuilder()}
}

func scanAttendance(row pgx.Row) (*models.Attendance, error) {
	att := &models.Attendance{}
	err := row.Scan(
		&att.AttendanceID, &att.StudentID, &att.Date,
		&att.Status, &att.Remarks, &att.RecordedBy,
	)
	if err != nil {
		return nil, err
	}
	return att, nil
}

// Create inserts an attendance row and returns the generated attendance_id.
func (r *AttendanceRepository) Create(ctx context.Context, att *models.Attendance) (int64, error) {
	sql, args, err := r.sb.Insert("attendance").
		Columns("student_id", "date", "status", "remarks", "recorded_by").
		Values(att.StudentID, att.Date, att.Status, att.Remarks, att.RecordedBy).
		Suffix("RETURNING attendance_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create attendance query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrInvalidReference
		}
		logger.Error().Err(err).Msg("Error executing create attendance query")
		return 0, fmt.Errorf("error creating attendance record: %w", err)
	}

	return id, nil
}

// GetByID retrieves an attendance record by ID
func (r *AttendanceRepository) GetByID(ctx context.Context, id int64) (*models.Attendance, error) {
	sql, args, err := r.sb.Select(attendanceColumns).
		From("attendance").
		Where(squirrel.Eq{"attendance_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get attendance query: %w", err)
	}

	att, err := scanAttendance(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAttendanceNotFound
		}
		logger.Error().Err(err).Int64("attendanceID", id).Msg("Error scanning attendance row")
		return nil, fmt.Errorf("error getting attendance by ID: %w", err)
	}

	return att, nil
}

// GetAll retrieves all attendance records
func (r *AttendanceRepository) GetAll(ctx context.Context) ([]*models.Attendance, error) {
	sql, args, err := r.sb.Select(attendanceColumns).
		From("attendance").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all attendance query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all attendance query")
		return nil, fmt.Errorf("error querying attendance: %w", err)
	}
	defer rows.Close()

	records := []*models.Attendance{}
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning attendance row: %w", err)
		}
		records = append(records, att)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance rows: %w", err)
	}

	return records, nil
}

// GetByStudent retrieves a student's attendance joined with the recording
// user, newest first, as row-mappings.
func (r *AttendanceRepository) GetByStudent(ctx context.Context, studentID int64) ([]map[string]interface{}, error) {
	sql, args, err := studentAttendanceQuery(studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to build student attendance query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing student attendance query")
		return nil, fmt.Errorf("error querying student attendance: %w", err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("error collecting student attendance rows: %w", err)
	}

	return records, nil
}

// studentAttendanceQuery builds the enriched student attendance select. The
// ORDER BY puts the most recent date first.
func studentAttendanceQuery(studentID int64) (string, []interface{}, error) {
	return statementBuilder().Select(
		"a.attendance_id", "a.student_id",
		"to_char(a.date, 'YYYY-MM-DD') AS date",
		"a.status", "a.remarks", "a.recorded_by",
		"u.full_name AS recorded_by_name",
	).
		From("attendance a").
		Join("users u ON a.recorded_by = u.user_id").
		Where(squirrel.Eq{"a.student_id": studentID}).
		OrderBy("a.date DESC").
		ToSql()
}

// Update replaces all fields of an existing attendance record.
func (r *AttendanceRepository) Update(ctx context.Context, att *models.Attendance) error {
	sql, args, err := r.sb.Update("attendance").
		SetMap(map[string]interface{}{
			"student_id":  att.StudentID,
			"date":        att.Date,
			"status":      att.Status,
			"remarks":     att.Remarks,
			"recorded_by": att.RecordedBy,
		}).
		Where(squirrel.Eq{"attendance_id": att.AttendanceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update attendance query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrInvalidReference
		}
		logger.Error().Err(err).Int64("attendanceID", att.AttendanceID).Msg("Error executing update attendance query")
		return fmt.Errorf("error updating attendance record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAttendanceNotFound
	}

	return nil
}

// Delete removes an attendance record by ID.
func (r *AttendanceRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("attendance").
		Where(squirrel.Eq{"attendance_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete attendance query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("attendanceID", id).Msg("Error executing delete attendance query")
		return fmt.Errorf("error deleting attendance record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAttendanceNotFound
	}

	return nil
}
