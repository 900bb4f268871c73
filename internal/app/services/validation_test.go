package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adeemchu/studentportal/internal/app/models"
	"github.com/adeemchu/studentportal/internal/pkg/apperrors"
)

func TestCreateExamRejectsPassingAboveTotal(t *testing.T) {
	svc := NewExamService(nil)

	_, err := svc.CreateExam(context.Background(), &models.Exam{
		ExamName:     "Midterm",
		ExamDate:     models.NewDate(2026, 3, 10),
		ClassID:      1,
		SubjectID:    1,
		TotalMarks:   100,
		PassingMarks: 120,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	assert.Contains(t, err.Error(), "passing_marks")
}

func TestUpdateExamRejectsPassingAboveTotal(t *testing.T) {
	svc := NewExamService(nil)

	err := svc.UpdateExam(context.Background(), &models.Exam{
		ExamID:       1,
		TotalMarks:   50,
		PassingMarks: 60,
	})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestCreateTimetableEntryRejectsInvertedTimes(t *testing.T) {
	svc := NewTimetableService(nil)

	_, err := svc.CreateEntry(context.Background(), &models.Timetable{
		ClassID:   1,
		SubjectID: 1,
		TeacherID: 1,
		DayOfWeek: "Monday",
		StartTime: models.NewTimeOfDay(10, 0, 0),
		EndTime:   models.NewTimeOfDay(9, 0, 0),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	assert.Contains(t, err.Error(), "end_time")
}

func TestCreateTimetableEntryRejectsEqualTimes(t *testing.T) {
	svc := NewTimetableService(nil)

	_, err := svc.CreateEntry(context.Background(), &models.Timetable{
		ClassID:   1,
		SubjectID: 1,
		TeacherID: 1,
		DayOfWeek: "Monday",
		StartTime: models.NewTimeOfDay(9, 0, 0),
		EndTime:   models.NewTimeOfDay(9, 0, 0),
	})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestCreatePaymentRequiresFamily(t *testing.T) {
	svc := NewFeePaymentService(nil)

	_, err := svc.CreatePayment(context.Background(), &models.FeePayment{
		FeeID:         1,
		AmountPaid:    500,
		PaymentDate:   models.NewDate(2026, 2, 1),
		PaymentMethod: "cash",
		ReceivedBy:    1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	assert.Contains(t, err.Error(), "family_id")
}
