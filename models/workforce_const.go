package models

type TimesheetStatus string

const (
	TimesheetDraft     TimesheetStatus = "draft"
	TimesheetSubmitted TimesheetStatus = "submitted"
	TimesheetApproved  TimesheetStatus = "approved"
	TimesheetRejected  TimesheetStatus = "rejected"
	TimesheetExported  TimesheetStatus = "exported"
)

type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "pending"
	DocumentApproved DocumentStatus = "approved"
	DocumentRejected DocumentStatus = "rejected"
	DocumentExpiring DocumentStatus = "expiring"
	DocumentExpired  DocumentStatus = "expired"
)

type PublishStatus string

const (
	PublishDraft     PublishStatus = "draft"
	PublishPublished PublishStatus = "published"
)

// Visibility controls who may read a knowledge article or announcement:
// everyone, or only the users/groups listed on the record.
type Visibility string

const (
	VisibilityAll           Visibility = "all"
	VisibilitySpecificUsers Visibility = "specific_users"
)

// AutoProgramGroupPrefix marks group tags derived from program
// memberships rather than synced from the external directory.
const AutoProgramGroupPrefix = "auto-program-"

type NotificationKind string

const (
	NotificationTimeEditRequest NotificationKind = "TIME_EDIT_REQUEST"
	NotificationEditApproved    NotificationKind = "TIME_EDIT_APPROVED"
	NotificationEditRejected    NotificationKind = "TIME_EDIT_REJECTED"
	NotificationShiftAssigned   NotificationKind = "SHIFT_ASSIGNED"
	NotificationDocumentStatus  NotificationKind = "DOCUMENT_STATUS"
	NotificationTimesheetStatus NotificationKind = "TIMESHEET_STATUS"
)

var notificationSubject = map[NotificationKind]string{
	NotificationTimeEditRequest: "Time entry edit awaiting review",
	NotificationEditApproved:    "Time entry edit approved",
	NotificationEditRejected:    "Time entry edit rejected",
	NotificationShiftAssigned:   "New shift assignment",
	NotificationDocumentStatus:  "Document status changed",
	NotificationTimesheetStatus: "Timesheet status changed",
}

func (k NotificationKind) Subject() string {
	if subject, exist := notificationSubject[k]; exist {
		return subject
	}
	return string(k)
}

// Settings keys stored in app_settings.
const (
	SettingAutoClockOutMaxHours  = "time.auto_clock_out_max_hours"
	SettingDocExpiryThresholdDay = "documents.expiry_threshold_days"
	SettingClockOutPhotoRequired = "time.clock_out_photo_required"
	SettingKioskBaseURL          = "time.kiosk_base_url"
)
