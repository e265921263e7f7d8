package documenthandler

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"staffhub-backend/db"
	audithandler "staffhub-backend/lib/audit"
	documentstore "staffhub-backend/lib/document/store"
	notificationhandler "staffhub-backend/lib/notification"
	settingshandler "staffhub-backend/lib/settings"
	"staffhub-backend/models"
	docapimodels "staffhub-backend/models/api/document"
	dbmodels "staffhub-backend/models/db"
)

type Provider interface {
	Create(actorID string, actorRole models.UserRole, data docapimodels.DocumentData) (view docapimodels.DocumentView, err error)
	GetByID(actorID string, actorRole models.UserRole, id string) (view docapimodels.DocumentView, err error)
	List(actorID string, actorRole models.UserRole, filter docapimodels.DocumentFilter) (list []docapimodels.DocumentView, rowCount int64, err error)
	Update(actorID string, actorRole models.UserRole, id string, data docapimodels.DocumentData) error
	Delete(actorID string, actorRole models.UserRole, id string) error
	Submit(actorID string, actorRole models.UserRole, id string) error
	Approve(actorID, id string) error
	Reject(actorID, id string, reason string) error
	CheckExpiry(actorID string, thresholdDays int) (result docapimodels.CheckExpiryResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: documentstore.NewInstance(db.DB),
	}
}

type impl struct {
	store documentstore.Provider
}

var (
	ErrNotFound  = errors.New("document not found")
	ErrForbidden = errors.New("operation not permitted on this document")
)

func canManage(role models.UserRole) bool {
	return role.IsAdminLevel() || role == models.HRRole
}

func (i impl) Create(actorID string, actorRole models.UserRole, data docapimodels.DocumentData) (docapimodels.DocumentView, error) {
	ownerID := actorID
	if data.UserID != "" && data.UserID != actorID {
		if !canManage(actorRole) {
			return docapimodels.DocumentView{}, ErrForbidden
		}
		ownerID = data.UserID
	}
	rec := dbmodels.Document{
		UserID:       ownerID,
		Name:         data.Name,
		DocumentType: data.DocumentType,
		FileID:       data.FileID,
		ExpiryDate:   data.ExpiryDate,
		Status:       models.DocumentPending,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return docapimodels.DocumentView{}, err
	}
	rec.ID = id
	audithandler.Instance.Record(actorID, "document.create", "document", id, true, map[string]interface{}{
		"document_type": data.DocumentType,
		"owner_id":      ownerID,
	})
	return rec.ToModel(), nil
}

func (i impl) GetByID(actorID string, actorRole models.UserRole, id string) (docapimodels.DocumentView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return docapimodels.DocumentView{}, err
	}
	if rec == nil {
		return docapimodels.DocumentView{}, ErrNotFound
	}
	if !canManage(actorRole) && rec.UserID != actorID {
		return docapimodels.DocumentView{}, ErrForbidden
	}
	return rec.ToModel(), nil
}

func (i impl) List(actorID string, actorRole models.UserRole, filter docapimodels.DocumentFilter) ([]docapimodels.DocumentView, int64, error) {
	if !canManage(actorRole) {
		filter.UserID = &actorID
	}
	rowCount, err := i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	recs, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	list := make([]docapimodels.DocumentView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, rowCount, nil
}

func (i impl) Update(actorID string, actorRole models.UserRole, id string, data docapimodels.DocumentData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	if !canManage(actorRole) && rec.UserID != actorID {
		return ErrForbidden
	}
	updMap := map[string]interface{}{
		"name":          data.Name,
		"document_type": data.DocumentType,
		"expiry_date":   data.ExpiryDate,
	}
	if data.FileID != "" {
		updMap["file_id"] = data.FileID
		// A replaced file goes back through review.
		updMap["status"] = models.DocumentPending
		updMap["rejection_reason"] = ""
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	audithandler.Instance.Record(actorID, "document.update", "document", id, true, nil)
	return nil
}

func (i impl) Delete(actorID string, actorRole models.UserRole, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	if !canManage(actorRole) && rec.UserID != actorID {
		return ErrForbidden
	}
	audithandler.Instance.Record(actorID, "document.delete", "document", id, true, map[string]interface{}{
		"owner_id":      rec.UserID,
		"document_type": rec.DocumentType,
	})
	return i.store.Delete(id)
}

// Submit puts a rejected or expiring document back into review.
func (i impl) Submit(actorID string, actorRole models.UserRole, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	if !canManage(actorRole) && rec.UserID != actorID {
		return ErrForbidden
	}
	err = i.store.Update(id, map[string]interface{}{
		"status":           models.DocumentPending,
		"rejection_reason": "",
	})
	if err != nil {
		return err
	}
	audithandler.Instance.Record(actorID, "document.submit", "document", id, true, nil)
	return nil
}

func (i impl) Approve(actorID, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	now := time.Now()
	err = i.store.Update(id, map[string]interface{}{
		"status":      models.DocumentApproved,
		"reviewed_by": actorID,
		"reviewed_at": now,
	})
	if err != nil {
		return err
	}
	notificationhandler.Instance.Notify(rec.UserID, models.NotificationDocumentStatus, "document", id,
		fmt.Sprintf("Your document %q was approved", rec.Name))
	audithandler.Instance.Record(actorID, "document.approve", "document", id, true, nil)
	return nil
}

func (i impl) Reject(actorID, id string, reason string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	now := time.Now()
	err = i.store.Update(id, map[string]interface{}{
		"status":           models.DocumentRejected,
		"reviewed_by":      actorID,
		"reviewed_at":      now,
		"rejection_reason": reason,
	})
	if err != nil {
		return err
	}
	notificationhandler.Instance.Notify(rec.UserID, models.NotificationDocumentStatus, "document", id,
		fmt.Sprintf("Your document %q was rejected: %s", rec.Name, reason))
	audithandler.Instance.Record(actorID, "document.reject", "document", id, true, map[string]interface{}{
		"reason": reason,
	})
	return nil
}

// CheckExpiry flips approved documents expiring within the threshold to
// `expiring` and notifies their owners. Only approved rows are scanned,
// so running the sweep twice is harmless.
func (i impl) CheckExpiry(actorID string, thresholdDays int) (docapimodels.CheckExpiryResponse, error) {
	if thresholdDays <= 0 {
		thresholdDays = settingshandler.Instance.DocExpiryThresholdDays()
	}
	deadline := time.Now().AddDate(0, 0, thresholdDays)
	recs, err := i.store.ListApprovedExpiringBy(deadline)
	if err != nil {
		return docapimodels.CheckExpiryResponse{}, err
	}
	result := docapimodels.CheckExpiryResponse{DocumentIDs: []string{}}
	for _, rec := range recs {
		err := i.store.Update(rec.ID, map[string]interface{}{
			"status": models.DocumentExpiring,
		})
		if err != nil {
			log.WithError(err).WithField("document_id", rec.ID).Error("expiry flag update failed")
			continue
		}
		notificationhandler.Instance.Notify(rec.UserID, models.NotificationDocumentStatus, "document", rec.ID,
			fmt.Sprintf("Your document %q expires on %s", rec.Name, rec.ExpiryDate.Format("2006-01-02")))
		result.Affected++
		result.DocumentIDs = append(result.DocumentIDs, rec.ID)
	}
	if result.Affected > 0 {
		audithandler.Instance.Record(actorID, "document.check_expiry", "document", "", false, map[string]interface{}{
			"affected":       result.Affected,
			"threshold_days": thresholdDays,
		})
	}
	log.WithField("affected", result.Affected).Info("document expiry sweep finished")
	return result, nil
}
