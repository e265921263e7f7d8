package timeentryhandler

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	audithandler "staffhub-backend/lib/audit"
	notificationhandler "staffhub-backend/lib/notification"
	settingshandler "staffhub-backend/lib/settings"
	shiftstore "staffhub-backend/lib/shift/store"
	usersstore "staffhub-backend/lib/users/store"
	"staffhub-backend/models"
	auditapimodels "staffhub-backend/models/api/audit"
	settingsapimodels "staffhub-backend/models/api/settings"
	timeapimodels "staffhub-backend/models/api/timeentry"
	userapimodels "staffhub-backend/models/api/users"
	dbmodels "staffhub-backend/models/db"
)

type fakeEntryStore struct {
	entries map[string]*dbmodels.TimeEntry
	nextID  int

	lastListFilter timeapimodels.EntryFilter
}

func newFakeEntryStore() *fakeEntryStore {
	return &fakeEntryStore{entries: map[string]*dbmodels.TimeEntry{}}
}

func (f *fakeEntryStore) Create(rec dbmodels.TimeEntry) (string, error) {
	f.nextID++
	rec.ID = fmt.Sprintf("entry-%d", f.nextID)
	f.entries[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeEntryStore) GetByID(id string) (*dbmodels.TimeEntry, error) {
	rec, ok := f.entries[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeEntryStore) GetActiveByUser(userID string) (*dbmodels.TimeEntry, error) {
	for _, rec := range f.entries {
		if rec.UserID == userID && rec.Status == models.TimeEntryActive {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeEntryStore) Update(id string, updMap map[string]interface{}) error {
	rec, ok := f.entries[id]
	if !ok {
		return fmt.Errorf("no entry %s", id)
	}
	for key, value := range updMap {
		switch key {
		case "clock_in":
			rec.ClockIn = value.(time.Time)
		case "clock_out":
			switch v := value.(type) {
			case time.Time:
				rec.ClockOut = &v
			case *time.Time:
				rec.ClockOut = v
			}
		case "status":
			rec.Status = value.(models.TimeEntryStatus)
		case "approval_status":
			rec.ApprovalStatus = value.(models.ApprovalStatus)
		case "break_minutes":
			rec.BreakMinutes = value.(int)
		case "photo_file_ids":
			rec.PhotoFileIDs = value.(dbmodels.StringList)
		case "original_clock_in":
			v := value.(time.Time)
			rec.OriginalClockIn = &v
		case "original_clock_out":
			rec.OriginalClockOut = value.(*time.Time)
		case "rejection_reason":
			rec.RejectionReason = value.(string)
		case "locked":
			rec.Locked = value.(bool)
		case "hourly_rate":
			rec.HourlyRate = value.(float64)
		case "job_name":
			rec.JobName = value.(string)
		case "program":
			rec.Program = value.(string)
		}
	}
	return nil
}

func (f *fakeEntryStore) Delete(id string) error {
	delete(f.entries, id)
	return nil
}

func (f *fakeEntryStore) List(filter timeapimodels.EntryFilter) ([]dbmodels.TimeEntry, error) {
	f.lastListFilter = filter
	list := []dbmodels.TimeEntry{}
	for _, rec := range f.entries {
		if filter.UserID != nil && rec.UserID != *filter.UserID {
			continue
		}
		list = append(list, *rec)
	}
	return list, nil
}

func (f *fakeEntryStore) ListCount(filter timeapimodels.EntryFilter) (int64, error) {
	list, _ := f.List(filter)
	return int64(len(list)), nil
}

func (f *fakeEntryStore) ListActiveBefore(cutoff time.Time) ([]dbmodels.TimeEntry, error) {
	list := []dbmodels.TimeEntry{}
	for _, rec := range f.entries {
		if rec.Status == models.TimeEntryActive && rec.ClockIn.Before(cutoff) {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (f *fakeEntryStore) ListForUserRange(userID string, from, to time.Time) ([]dbmodels.TimeEntry, error) {
	return nil, nil
}

func (f *fakeEntryStore) LockByIDs(ids []string) error {
	for _, id := range ids {
		if rec, ok := f.entries[id]; ok {
			rec.Locked = true
		}
	}
	return nil
}

type fakeUsersStore struct {
	usersstore.Provider
	users map[string]*dbmodels.User
}

func (f fakeUsersStore) GetByID(id string) (*dbmodels.User, error) {
	return f.users[id], nil
}

func (f fakeUsersStore) List(filter userapimodels.UserFilter) ([]dbmodels.User, error) {
	return nil, nil
}

type fakeShiftStore struct {
	shiftstore.Provider
	byID     map[string]*dbmodels.Shift
	assigned *dbmodels.Shift
}

func (f fakeShiftStore) GetByID(id string) (*dbmodels.Shift, error) {
	return f.byID[id], nil
}

// mirrors the store predicate: not ended yet, starts before the end of
// at's calendar day
func (f fakeShiftStore) AssignedShiftAt(userID string, at time.Time) (*dbmodels.Shift, error) {
	if f.assigned == nil {
		return nil, nil
	}
	dayEnd := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location()).AddDate(0, 0, 1)
	if f.assigned.EndTime.Before(at) || !f.assigned.StartTime.Before(dayEnd) {
		return nil, nil
	}
	return f.assigned, nil
}

type fakeAudit struct {
	actions []string
}

func (f *fakeAudit) Record(actorID, action, resourceType, resourceID string, phi bool, details map[string]interface{}) {
	f.actions = append(f.actions, action)
}

func (f *fakeAudit) List(filter auditapimodels.AuditLogFilter) ([]auditapimodels.AuditLogView, int64, error) {
	return nil, 0, nil
}

type fakeNotifier struct {
	adminNotices int
	userNotices  []models.NotificationKind
	cleared      int
}

func (f *fakeNotifier) Notify(userID string, kind models.NotificationKind, resourceType, resourceID, message string) {
	f.userNotices = append(f.userNotices, kind)
}

func (f *fakeNotifier) NotifyAdmins(kind models.NotificationKind, resourceType, resourceID, message string) {
	f.adminNotices++
}

func (f *fakeNotifier) ClearByResource(kind models.NotificationKind, resourceID string) {
	f.cleared++
}

func (f *fakeNotifier) ListByUser(userID string, unreadOnly bool) ([]dbmodels.Notification, error) {
	return nil, nil
}

func (f *fakeNotifier) MarkRead(userID, id string) error {
	return nil
}

type fakeSettings struct {
	photoRequired bool
	maxHours      int
}

func (f fakeSettings) List() ([]settingsapimodels.SettingView, error)  { return nil, nil }
func (f fakeSettings) Set(data settingsapimodels.SettingData) error    { return nil }
func (f fakeSettings) AutoClockOutMaxHours() int                       { return f.maxHours }
func (f fakeSettings) DocExpiryThresholdDays() int                     { return 30 }
func (f fakeSettings) ClockOutPhotoRequired() bool                     { return f.photoRequired }
func (f fakeSettings) KioskBaseURL() string                            { return "http://localhost:8080" }

type testEnv struct {
	handler  impl
	store    *fakeEntryStore
	shifts   *fakeShiftStore
	audit    *fakeAudit
	notifier *fakeNotifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		store: newFakeEntryStore(),
		shifts: &fakeShiftStore{
			byID: map[string]*dbmodels.Shift{},
		},
		audit:    &fakeAudit{},
		notifier: &fakeNotifier{},
	}
	users := fakeUsersStore{users: map[string]*dbmodels.User{
		"staff-1": {
			BaseModel: dbmodels.BaseModel{ID: "staff-1"},
			FirstName: "Dana",
			LastName:  "Reyes",
			Role:      models.StaffRole,
			IsActive:  true,
			Profile: dbmodels.ProfileDetails{
				DefaultHourlyRate: 20,
				JobRates: []dbmodels.JobRate{
					{JobName: "Nurse", HourlyRate: 35},
				},
			},
		},
	}}
	env.handler = impl{
		store:      env.store,
		usersStore: users,
		shiftStore: env.shifts,
	}
	audithandler.Instance = env.audit
	notificationhandler.Instance = env.notifier
	settingshandler.Instance = fakeSettings{photoRequired: true, maxHours: 14}
	return env
}

func (e *testEnv) seedEntry(t *testing.T, rec dbmodels.TimeEntry) string {
	t.Helper()
	id, err := e.store.Create(rec)
	require.Nil(t, err)
	return id
}

func TestClockIn(t *testing.T) {
	t.Run(`second active entry rejected`, func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.handler.ClockIn("staff-1", timeapimodels.ClockInRequest{})
		require.Nil(t, err)
		_, err = env.handler.ClockIn("staff-1", timeapimodels.ClockInRequest{})
		require.ErrorIs(t, err, ErrAlreadyClockedIn)
	})

	t.Run(`default rate without a shift`, func(t *testing.T) {
		env := newTestEnv(t)
		view, err := env.handler.ClockIn("staff-1", timeapimodels.ClockInRequest{})
		require.Nil(t, err)
		require.Equal(t, float64(20), view.HourlyRate)
		require.Equal(t, models.TimeEntryActive, view.Status)
		require.Equal(t, models.ApprovalApproved, view.ApprovalStatus)
	})

	t.Run(`explicit shift resolves job rate`, func(t *testing.T) {
		env := newTestEnv(t)
		env.shifts.byID["shift-1"] = &dbmodels.Shift{
			BaseModel: dbmodels.BaseModel{ID: "shift-1"},
			JobName:   "Nurse",
			Program:   "Mercy ICU",
		}
		view, err := env.handler.ClockIn("staff-1", timeapimodels.ClockInRequest{ShiftID: "shift-1"})
		require.Nil(t, err)
		require.Equal(t, "shift-1", view.ShiftID)
		require.Equal(t, "Nurse", view.JobName)
		require.Equal(t, float64(35), view.HourlyRate)
	})

	t.Run(`shift rate overrides job rate`, func(t *testing.T) {
		env := newTestEnv(t)
		env.shifts.byID["shift-1"] = &dbmodels.Shift{
			BaseModel:  dbmodels.BaseModel{ID: "shift-1"},
			JobName:    "Nurse",
			HourlyRate: 42,
		}
		view, err := env.handler.ClockIn("staff-1", timeapimodels.ClockInRequest{ShiftID: "shift-1"})
		require.Nil(t, err)
		require.Equal(t, float64(42), view.HourlyRate)
	})

	t.Run(`falls back to currently assigned shift`, func(t *testing.T) {
		env := newTestEnv(t)
		env.shifts.assigned = &dbmodels.Shift{
			BaseModel: dbmodels.BaseModel{ID: "shift-9"},
			JobName:   "Nurse",
			StartTime: time.Now().Add(-time.Hour),
			EndTime:   time.Now().Add(7 * time.Hour),
		}
		view, err := env.handler.ClockIn("staff-1", timeapimodels.ClockInRequest{})
		require.Nil(t, err)
		require.Equal(t, "shift-9", view.ShiftID)
		require.Equal(t, float64(35), view.HourlyRate)
	})

	t.Run(`early clock-in still resolves the upcoming shift`, func(t *testing.T) {
		env := newTestEnv(t)
		env.shifts.assigned = &dbmodels.Shift{
			BaseModel: dbmodels.BaseModel{ID: "shift-10"},
			JobName:   "Nurse",
			StartTime: time.Now().Add(5 * time.Minute),
			EndTime:   time.Now().Add(8 * time.Hour),
		}
		view, err := env.handler.ClockIn("staff-1", timeapimodels.ClockInRequest{})
		require.Nil(t, err)
		require.Equal(t, "shift-10", view.ShiftID)
		require.Equal(t, "Nurse", view.JobName)
		require.Equal(t, float64(35), view.HourlyRate)
	})
}

func TestClockOut(t *testing.T) {
	t.Run(`no active entry`, func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.handler.ClockOut("staff-1", timeapimodels.ClockOutRequest{})
		require.ErrorIs(t, err, ErrNoActiveEntry)
	})

	t.Run(`photo required by default`, func(t *testing.T) {
		env := newTestEnv(t)
		env.seedEntry(t, dbmodels.TimeEntry{
			UserID:         "staff-1",
			ClockIn:        time.Now().Add(-8 * time.Hour),
			Status:         models.TimeEntryActive,
			ApprovalStatus: models.ApprovalApproved,
			Program:        "Mercy ICU",
		})
		_, err := env.handler.ClockOut("staff-1", timeapimodels.ClockOutRequest{})
		require.ErrorIs(t, err, ErrPhotoRequired)
	})

	t.Run(`advent ipu program exempt from photo`, func(t *testing.T) {
		env := newTestEnv(t)
		env.seedEntry(t, dbmodels.TimeEntry{
			UserID:         "staff-1",
			ClockIn:        time.Now().Add(-8 * time.Hour),
			Status:         models.TimeEntryActive,
			ApprovalStatus: models.ApprovalApproved,
			Program:        "AdventHealth IPU East",
		})
		view, err := env.handler.ClockOut("staff-1", timeapimodels.ClockOutRequest{BreakMinutes: 30})
		require.Nil(t, err)
		require.Equal(t, models.TimeEntryCompleted, view.Status)
		require.Equal(t, 30, view.BreakMinutes)
		require.NotNil(t, view.ClockOut)
	})

	t.Run(`photo toggle off skips the check`, func(t *testing.T) {
		env := newTestEnv(t)
		settingshandler.Instance = fakeSettings{photoRequired: false, maxHours: 14}
		env.seedEntry(t, dbmodels.TimeEntry{
			UserID:         "staff-1",
			ClockIn:        time.Now().Add(-8 * time.Hour),
			Status:         models.TimeEntryActive,
			ApprovalStatus: models.ApprovalApproved,
			Program:        "Mercy ICU",
		})
		_, err := env.handler.ClockOut("staff-1", timeapimodels.ClockOutRequest{})
		require.Nil(t, err)
	})

	t.Run(`photo accepted`, func(t *testing.T) {
		env := newTestEnv(t)
		env.seedEntry(t, dbmodels.TimeEntry{
			UserID:         "staff-1",
			ClockIn:        time.Now().Add(-8 * time.Hour),
			Status:         models.TimeEntryActive,
			ApprovalStatus: models.ApprovalApproved,
			Program:        "Mercy ICU",
		})
		view, err := env.handler.ClockOut("staff-1", timeapimodels.ClockOutRequest{PhotoFileIDs: []string{"file-1"}})
		require.Nil(t, err)
		require.Equal(t, []string{"file-1"}, view.PhotoFileIDs)
	})
}

func TestSelfEdit(t *testing.T) {
	seedCompleted := func(env *testEnv, t *testing.T) string {
		clockOut := time.Date(2026, 8, 20, 17, 0, 0, 0, time.UTC)
		return env.seedEntry(t, dbmodels.TimeEntry{
			UserID:         "staff-1",
			ClockIn:        time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC),
			ClockOut:       &clockOut,
			Status:         models.TimeEntryCompleted,
			ApprovalStatus: models.ApprovalApproved,
		})
	}

	t.Run(`cannot edit another user's entry`, func(t *testing.T) {
		env := newTestEnv(t)
		id := seedCompleted(env, t)
		minutes := 15
		_, err := env.handler.Edit("staff-2", models.StaffRole, id, timeapimodels.EntryPatch{BreakMinutes: &minutes})
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run(`locked entry rejects self edit`, func(t *testing.T) {
		env := newTestEnv(t)
		id := seedCompleted(env, t)
		env.store.entries[id].Locked = true
		minutes := 15
		_, err := env.handler.Edit("staff-1", models.StaffRole, id, timeapimodels.EntryPatch{BreakMinutes: &minutes})
		require.ErrorIs(t, err, ErrLocked)
	})

	t.Run(`staff cannot set hourly rate or lock`, func(t *testing.T) {
		env := newTestEnv(t)
		id := seedCompleted(env, t)
		rate := 99.0
		_, err := env.handler.Edit("staff-1", models.StaffRole, id, timeapimodels.EntryPatch{HourlyRate: &rate})
		require.ErrorIs(t, err, ErrForbidden)
		locked := true
		_, err = env.handler.Edit("staff-1", models.StaffRole, id, timeapimodels.EntryPatch{Locked: &locked})
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run(`time edit snapshots once and goes pending`, func(t *testing.T) {
		env := newTestEnv(t)
		id := seedCompleted(env, t)
		originalClockIn := env.store.entries[id].ClockIn

		newClockIn := originalClockIn.Add(-time.Hour)
		view, err := env.handler.Edit("staff-1", models.StaffRole, id, timeapimodels.EntryPatch{ClockIn: &newClockIn})
		require.Nil(t, err)
		require.Equal(t, models.ApprovalPending, view.ApprovalStatus)
		require.Equal(t, 1, env.notifier.adminNotices)

		rec := env.store.entries[id]
		require.NotNil(t, rec.OriginalClockIn)
		require.Equal(t, originalClockIn, *rec.OriginalClockIn)

		// a second edit while pending keeps the first snapshot
		evenEarlier := newClockIn.Add(-time.Hour)
		_, err = env.handler.Edit("staff-1", models.StaffRole, id, timeapimodels.EntryPatch{ClockIn: &evenEarlier})
		require.Nil(t, err)
		require.Equal(t, originalClockIn, *env.store.entries[id].OriginalClockIn)
	})

	t.Run(`snapshot retaken after rejection`, func(t *testing.T) {
		env := newTestEnv(t)
		id := seedCompleted(env, t)
		originalClockIn := env.store.entries[id].ClockIn

		newClockIn := originalClockIn.Add(-time.Hour)
		_, err := env.handler.Edit("staff-1", models.StaffRole, id, timeapimodels.EntryPatch{ClockIn: &newClockIn})
		require.Nil(t, err)
		require.Nil(t, env.handler.Reject("admin-1", id, timeapimodels.RejectRequest{Reason: "wrong day"}))

		// reject reverted the times to the snapshot
		require.Equal(t, originalClockIn, env.store.entries[id].ClockIn)
		require.Equal(t, models.ApprovalRejected, env.store.entries[id].ApprovalStatus)

		// the next edit snapshots the reverted values again
		again := originalClockIn.Add(30 * time.Minute)
		_, err = env.handler.Edit("staff-1", models.StaffRole, id, timeapimodels.EntryPatch{ClockIn: &again})
		require.Nil(t, err)
		require.Equal(t, originalClockIn, *env.store.entries[id].OriginalClockIn)
		require.Equal(t, "", env.store.entries[id].RejectionReason)
	})

	t.Run(`break-only edit stays approved`, func(t *testing.T) {
		env := newTestEnv(t)
		id := seedCompleted(env, t)
		minutes := 45
		view, err := env.handler.Edit("staff-1", models.StaffRole, id, timeapimodels.EntryPatch{BreakMinutes: &minutes})
		require.Nil(t, err)
		require.Equal(t, models.ApprovalApproved, view.ApprovalStatus)
		require.Equal(t, 0, env.notifier.adminNotices)
	})
}

func TestAdminEdit(t *testing.T) {
	t.Run(`locked entry only accepts a solo unlock`, func(t *testing.T) {
		env := newTestEnv(t)
		clockOut := time.Now()
		id := env.seedEntry(t, dbmodels.TimeEntry{
			UserID:         "staff-1",
			ClockIn:        clockOut.Add(-8 * time.Hour),
			ClockOut:       &clockOut,
			Status:         models.TimeEntryCompleted,
			ApprovalStatus: models.ApprovalApproved,
			Locked:         true,
		})

		minutes := 15
		unlock := false
		_, err := env.handler.Edit("admin-1", models.AdminRole, id, timeapimodels.EntryPatch{BreakMinutes: &minutes})
		require.ErrorIs(t, err, ErrLocked)
		_, err = env.handler.Edit("admin-1", models.AdminRole, id, timeapimodels.EntryPatch{Locked: &unlock, BreakMinutes: &minutes})
		require.ErrorIs(t, err, ErrLocked)

		view, err := env.handler.Edit("admin-1", models.AdminRole, id, timeapimodels.EntryPatch{Locked: &unlock})
		require.Nil(t, err)
		require.Equal(t, false, view.Locked)
	})

	t.Run(`admin edit applies without approval flow`, func(t *testing.T) {
		env := newTestEnv(t)
		clockOut := time.Now()
		id := env.seedEntry(t, dbmodels.TimeEntry{
			UserID:         "staff-1",
			ClockIn:        clockOut.Add(-8 * time.Hour),
			ClockOut:       &clockOut,
			Status:         models.TimeEntryCompleted,
			ApprovalStatus: models.ApprovalApproved,
		})
		rate := 50.0
		view, err := env.handler.Edit("admin-1", models.AdminRole, id, timeapimodels.EntryPatch{HourlyRate: &rate})
		require.Nil(t, err)
		require.Equal(t, float64(50), view.HourlyRate)
		require.Equal(t, models.ApprovalApproved, view.ApprovalStatus)
		require.Equal(t, 0, env.notifier.adminNotices)
	})
}

func TestApprove(t *testing.T) {
	env := newTestEnv(t)
	clockOut := time.Now()
	id := env.seedEntry(t, dbmodels.TimeEntry{
		UserID:         "staff-1",
		ClockIn:        clockOut.Add(-8 * time.Hour),
		ClockOut:       &clockOut,
		Status:         models.TimeEntryCompleted,
		ApprovalStatus: models.ApprovalPending,
	})

	require.Nil(t, env.handler.Approve("admin-1", id))
	require.Equal(t, models.ApprovalApproved, env.store.entries[id].ApprovalStatus)
	require.Equal(t, 1, env.notifier.cleared)
	require.Equal(t, []models.NotificationKind{models.NotificationEditApproved}, env.notifier.userNotices)

	// approving twice is not a valid transition
	require.ErrorIs(t, env.handler.Approve("admin-1", id), ErrInvalidTransition)
}

func TestDelete(t *testing.T) {
	env := newTestEnv(t)
	id := env.seedEntry(t, dbmodels.TimeEntry{
		UserID: "staff-1",
		Status: models.TimeEntryCompleted,
		Locked: true,
	})
	require.ErrorIs(t, env.handler.Delete("admin-1", id), ErrLocked)

	env.store.entries[id].Locked = false
	require.Nil(t, env.handler.Delete("admin-1", id))
	require.ErrorIs(t, env.handler.Delete("admin-1", id), ErrNotFound)
}

func TestAutoClockOut(t *testing.T) {
	env := newTestEnv(t)
	staleClockIn := time.Now().Add(-20 * time.Hour)
	staleID := env.seedEntry(t, dbmodels.TimeEntry{
		UserID:         "staff-1",
		ClockIn:        staleClockIn,
		Status:         models.TimeEntryActive,
		ApprovalStatus: models.ApprovalApproved,
	})
	freshID := env.seedEntry(t, dbmodels.TimeEntry{
		UserID:         "staff-2",
		ClockIn:        time.Now().Add(-2 * time.Hour),
		Status:         models.TimeEntryActive,
		ApprovalStatus: models.ApprovalApproved,
	})

	result, err := env.handler.AutoClockOut("admin-1")
	require.Nil(t, err)
	require.Equal(t, 1, result.Affected)
	require.Equal(t, []string{staleID}, result.EntryIDs)

	stale := env.store.entries[staleID]
	require.Equal(t, models.TimeEntryAutoClockedOut, stale.Status)
	require.NotNil(t, stale.ClockOut)
	require.Equal(t, staleClockIn.Add(14*time.Hour), *stale.ClockOut)
	require.Equal(t, models.TimeEntryActive, env.store.entries[freshID].Status)

	// second sweep finds nothing
	result, err = env.handler.AutoClockOut("admin-1")
	require.Nil(t, err)
	require.Equal(t, 0, result.Affected)
}

func TestListVisibility(t *testing.T) {
	env := newTestEnv(t)
	env.seedEntry(t, dbmodels.TimeEntry{UserID: "staff-1", Status: models.TimeEntryCompleted})
	env.seedEntry(t, dbmodels.TimeEntry{UserID: "staff-2", Status: models.TimeEntryCompleted})

	t.Run(`staff filter clamped to own entries`, func(t *testing.T) {
		other := "staff-2"
		list, _, err := env.handler.List("staff-1", models.StaffRole, timeapimodels.EntryFilter{UserID: &other})
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "staff-1", list[0].UserID)
	})

	t.Run(`payroll sees everything`, func(t *testing.T) {
		list, rowCount, err := env.handler.List("payroll-1", models.PayrollRole, timeapimodels.EntryFilter{})
		require.Nil(t, err)
		require.Len(t, list, 2)
		require.Equal(t, int64(2), rowCount)
	})

	t.Run(`view rejected on foreign entry for staff`, func(t *testing.T) {
		ids := []string{}
		for id := range env.store.entries {
			ids = append(ids, id)
		}
		for _, id := range ids {
			rec := env.store.entries[id]
			if rec.UserID == "staff-2" {
				_, err := env.handler.GetByID("staff-1", models.StaffRole, id)
				require.ErrorIs(t, err, ErrForbidden)
				_, err = env.handler.GetByID("staff-1", models.ManagerRole, id)
				require.Nil(t, err)
			}
		}
	})
}
