package documenthandler

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	audithandler "staffhub-backend/lib/audit"
	notificationhandler "staffhub-backend/lib/notification"
	settingshandler "staffhub-backend/lib/settings"
	"staffhub-backend/models"
	auditapimodels "staffhub-backend/models/api/audit"
	docapimodels "staffhub-backend/models/api/document"
	settingsapimodels "staffhub-backend/models/api/settings"
	dbmodels "staffhub-backend/models/db"
)

type fakeDocStore struct {
	docs   map[string]*dbmodels.Document
	nextID int
}

func newFakeDocStore() *fakeDocStore {
	return &fakeDocStore{docs: map[string]*dbmodels.Document{}}
}

func (f *fakeDocStore) Create(rec dbmodels.Document) (string, error) {
	f.nextID++
	rec.ID = fmt.Sprintf("doc-%d", f.nextID)
	f.docs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeDocStore) GetByID(id string) (*dbmodels.Document, error) {
	rec, ok := f.docs[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeDocStore) Update(id string, updMap map[string]interface{}) error {
	rec, ok := f.docs[id]
	if !ok {
		return fmt.Errorf("no document %s", id)
	}
	for key, value := range updMap {
		switch key {
		case "status":
			rec.Status = value.(models.DocumentStatus)
		case "name":
			rec.Name = value.(string)
		case "document_type":
			rec.DocumentType = value.(string)
		case "file_id":
			rec.FileID = value.(string)
		case "expiry_date":
			rec.ExpiryDate = value.(*time.Time)
		case "reviewed_by":
			rec.ReviewedBy = value.(string)
		case "rejection_reason":
			rec.RejectionReason = value.(string)
		}
	}
	return nil
}

func (f *fakeDocStore) Delete(id string) error {
	delete(f.docs, id)
	return nil
}

func (f *fakeDocStore) List(filter docapimodels.DocumentFilter) ([]dbmodels.Document, error) {
	list := []dbmodels.Document{}
	for _, rec := range f.docs {
		if filter.UserID != nil && rec.UserID != *filter.UserID {
			continue
		}
		list = append(list, *rec)
	}
	return list, nil
}

func (f *fakeDocStore) ListCount(filter docapimodels.DocumentFilter) (int64, error) {
	list, _ := f.List(filter)
	return int64(len(list)), nil
}

func (f *fakeDocStore) ListApprovedExpiringBy(deadline time.Time) ([]dbmodels.Document, error) {
	list := []dbmodels.Document{}
	for _, rec := range f.docs {
		if rec.Status != models.DocumentApproved || rec.ExpiryDate == nil {
			continue
		}
		if rec.ExpiryDate.After(deadline) {
			continue
		}
		list = append(list, *rec)
	}
	return list, nil
}

type fakeAudit struct{}

func (f fakeAudit) Record(actorID, action, resourceType, resourceID string, phi bool, details map[string]interface{}) {
}

func (f fakeAudit) List(filter auditapimodels.AuditLogFilter) ([]auditapimodels.AuditLogView, int64, error) {
	return nil, 0, nil
}

type fakeNotifier struct {
	notified []string
}

func (f *fakeNotifier) Notify(userID string, kind models.NotificationKind, resourceType, resourceID, message string) {
	f.notified = append(f.notified, userID)
}

func (f *fakeNotifier) NotifyAdmins(kind models.NotificationKind, resourceType, resourceID, message string) {
}
func (f *fakeNotifier) ClearByResource(kind models.NotificationKind, resourceID string) {}
func (f *fakeNotifier) ListByUser(userID string, unreadOnly bool) ([]dbmodels.Notification, error) {
	return nil, nil
}
func (f *fakeNotifier) MarkRead(userID, id string) error { return nil }

type fakeSettings struct{}

func (f fakeSettings) List() ([]settingsapimodels.SettingView, error) { return nil, nil }
func (f fakeSettings) Set(data settingsapimodels.SettingData) error   { return nil }
func (f fakeSettings) AutoClockOutMaxHours() int                      { return 14 }
func (f fakeSettings) DocExpiryThresholdDays() int                    { return 30 }
func (f fakeSettings) ClockOutPhotoRequired() bool                    { return true }
func (f fakeSettings) KioskBaseURL() string                           { return "http://localhost:8080" }

func newTestHandler(t *testing.T) (impl, *fakeDocStore, *fakeNotifier) {
	t.Helper()
	store := newFakeDocStore()
	notifier := &fakeNotifier{}
	audithandler.Instance = fakeAudit{}
	notificationhandler.Instance = notifier
	settingshandler.Instance = fakeSettings{}
	return impl{store: store}, store, notifier
}

func TestCheckExpiry(t *testing.T) {
	handler, store, notifier := newTestHandler(t)

	soon := time.Now().AddDate(0, 0, 10)
	far := time.Now().AddDate(0, 0, 90)
	soonID, _ := store.Create(dbmodels.Document{
		UserID: "staff-1", Name: "RN License", Status: models.DocumentApproved, ExpiryDate: &soon,
	})
	store.Create(dbmodels.Document{
		UserID: "staff-2", Name: "CPR Card", Status: models.DocumentApproved, ExpiryDate: &far,
	})
	store.Create(dbmodels.Document{
		UserID: "staff-3", Name: "TB Test", Status: models.DocumentPending, ExpiryDate: &soon,
	})

	result, err := handler.CheckExpiry("admin-1", 0)
	require.Nil(t, err)
	require.Equal(t, 1, result.Affected)
	require.Equal(t, []string{soonID}, result.DocumentIDs)
	require.Equal(t, models.DocumentExpiring, store.docs[soonID].Status)
	require.Equal(t, []string{"staff-1"}, notifier.notified)

	// expiring rows are no longer approved, so a second sweep is a no-op
	result, err = handler.CheckExpiry("admin-1", 0)
	require.Nil(t, err)
	require.Equal(t, 0, result.Affected)
}

func TestDocumentAccess(t *testing.T) {
	handler, store, _ := newTestHandler(t)
	id, _ := store.Create(dbmodels.Document{
		UserID: "staff-1", Name: "RN License", Status: models.DocumentPending,
	})

	t.Run(`owner and hr can read, others cannot`, func(t *testing.T) {
		_, err := handler.GetByID("staff-1", models.StaffRole, id)
		require.Nil(t, err)
		_, err = handler.GetByID("hr-1", models.HRRole, id)
		require.Nil(t, err)
		_, err = handler.GetByID("staff-2", models.StaffRole, id)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run(`staff cannot create for someone else`, func(t *testing.T) {
		_, err := handler.Create("staff-1", models.StaffRole, docapimodels.DocumentData{
			UserID: "staff-2", Name: "License", DocumentType: "license",
		})
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run(`review flow`, func(t *testing.T) {
		require.Nil(t, handler.Approve("hr-1", id))
		require.Equal(t, models.DocumentApproved, store.docs[id].Status)

		// re-submission resets the review
		require.Nil(t, handler.Submit("staff-1", models.StaffRole, id))
		require.Equal(t, models.DocumentPending, store.docs[id].Status)

		require.Nil(t, handler.Reject("hr-1", id, "photo unreadable"))
		require.Equal(t, models.DocumentRejected, store.docs[id].Status)
		require.Equal(t, "photo unreadable", store.docs[id].RejectionReason)
	})
}
