package notificationhandler

import (
	log "github.com/sirupsen/logrus"
	"staffhub-backend/db"
	notificationstore "staffhub-backend/lib/notification/store"
	"staffhub-backend/lib/smtp"
	usersstore "staffhub-backend/lib/users/store"
	"staffhub-backend/models"
	dbmodels "staffhub-backend/models/db"
)

type Provider interface {
	// Notify writes an in-app notification and sends a best-effort email.
	// Failures are logged, never returned.
	Notify(userID string, kind models.NotificationKind, resourceType, resourceID, message string)
	// NotifyAdmins notifies every active admin-level user.
	NotifyAdmins(kind models.NotificationKind, resourceType, resourceID, message string)
	ClearByResource(kind models.NotificationKind, resourceID string)
	ListByUser(userID string, unreadOnly bool) ([]dbmodels.Notification, error)
	MarkRead(userID, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:     notificationstore.NewInstance(db.DB),
		userStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store     notificationstore.Provider
	userStore usersstore.Provider
}

func (i impl) getLogger(userID string, kind models.NotificationKind) *log.Entry {
	return log.
		WithField("user_id", userID).
		WithField("kind", string(kind))
}

func (i impl) Notify(userID string, kind models.NotificationKind, resourceType, resourceID, message string) {
	logger := i.getLogger(userID, kind)
	_, err := i.store.Create(dbmodels.Notification{
		UserID:       userID,
		Kind:         kind,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Message:      message,
	})
	if err != nil {
		logger.WithError(err).Error("failed to create notification")
		return
	}
	user, err := i.userStore.GetByID(userID)
	if err != nil || user == nil {
		logger.WithError(err).Warn("notification email skipped, user lookup failed")
		return
	}
	if err = smtp.Instance.SendEMail(user.Email, kind.Subject(), message); err != nil {
		logger.WithError(err).Warn("notification email failed")
	}
}

func (i impl) NotifyAdmins(kind models.NotificationKind, resourceType, resourceID, message string) {
	admins, err := i.userStore.ListByRoles([]models.UserRole{models.OwnerRole, models.AdminRole})
	if err != nil {
		log.WithError(err).Error("failed to resolve admin recipients")
		return
	}
	for _, admin := range admins {
		i.Notify(admin.ID, kind, resourceType, resourceID, message)
	}
}

func (i impl) ClearByResource(kind models.NotificationKind, resourceID string) {
	if err := i.store.DeleteByResource(kind, resourceID); err != nil {
		log.WithError(err).
			WithField("resource_id", resourceID).
			Warn("failed to clear notifications")
	}
}

func (i impl) ListByUser(userID string, unreadOnly bool) ([]dbmodels.Notification, error) {
	return i.store.ListByUser(userID, unreadOnly)
}

func (i impl) MarkRead(userID, id string) error {
	return i.store.MarkRead(userID, id)
}
