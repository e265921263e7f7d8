package timeentrystore

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

func TestGetByIDNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM "time_entries" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	rec, err := store.GetByID("entry-404")
	require.NoError(t, err)
	require.Nil(t, rec)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveByUser(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM "time_entries" WHERE user_id = \$1 AND status = \$2 ORDER BY clock_in DESC`).
		WithArgs("staff-1", "active", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "status"}).
			AddRow("entry-1", "staff-1", "active"))

	rec, err := store.GetActiveByUser("staff-1")
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Equal(t, "entry-1", rec.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "time_entries" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := store.Update("entry-404", map[string]interface{}{"break_minutes": 15})
	require.EqualError(t, err, "time entry not found")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveBefore(t *testing.T) {
	store, mock := newMockStore(t)

	cutoff := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT \* FROM "time_entries" WHERE status = \$1 AND clock_in < \$2`).
		WithArgs("active", cutoff).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "status"}).
			AddRow("entry-1", "staff-1", "active").
			AddRow("entry-2", "staff-2", "active"))

	list, err := store.ListActiveBefore(cutoff)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLockByIDs(t *testing.T) {
	store, mock := newMockStore(t)

	t.Run("no ids is a no-op", func(t *testing.T) {
		require.NoError(t, store.LockByIDs(nil))
	})

	t.Run("ids are locked in one statement", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "time_entries" SET "locked"=\$1`).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		require.NoError(t, store.LockByIDs([]string{"entry-1", "entry-2"}))
	})
	require.NoError(t, mock.ExpectationsWereMet())
}
