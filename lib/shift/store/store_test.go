package shiftstore

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockStore(t *testing.T) (Provider, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	require.NoError(t, err)
	return NewInstance(gormDB), mock
}

func TestAssignedShiftAt(t *testing.T) {
	store, mock := newMockStore(t)

	// 06:55 arrival for a 07:00 shift: the window reaches to the end of
	// the day, not just shifts already in progress
	at := time.Date(2026, 3, 10, 6, 55, 0, 0, time.UTC)
	dayEnd := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM "shifts" JOIN shift_assignments ON shift_assignments\.shift_id = shifts\.id WHERE shift_assignments\.user_id = \$1 AND \(?shifts\.end_time >= \$2 AND shifts\.start_time < \$3\)? ORDER BY shifts\.start_time`).
		WithArgs("staff-1", at, dayEnd, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "job_name"}).
			AddRow("shift-1", "Nurse"))

	rec, err := store.AssignedShiftAt("staff-1", at)
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Equal(t, "Nurse", rec.JobName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignedShiftAtNone(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`FROM "shifts" JOIN shift_assignments`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	rec, err := store.AssignedShiftAt("staff-1", time.Now())
	require.NoError(t, err)
	require.Nil(t, rec)
	require.NoError(t, mock.ExpectationsWereMet())
}
