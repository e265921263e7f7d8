package models

type RbacFunc func(userID string, role UserRole, path string) bool

type Module string

const (
	UsersModule        Module = "USERS"
	TimeModule         Module = "TIME"
	ScheduleModule     Module = "SCHEDULE"
	ShiftModule        Module = "SHIFT"
	AvailabilityModule Module = "AVAILABILITY"
	TimesheetModule    Module = "TIMESHEET"
	DocumentModule     Module = "DOCUMENT"
	KnowledgeModule    Module = "KNOWLEDGE"
	UpdatesModule      Module = "UPDATES"
	SettingsModule     Module = "SETTINGS"
	AuditModule        Module = "AUDIT"
	FilesModule        Module = "FILES"
	ProfileModule      Module = "PROFILE"
)

type Permission string

const (
	CreatePermission  Permission = "CREATE"
	EditPermission    Permission = "EDIT"
	ViewPermission    Permission = "VIEW"
	ManagePermission  Permission = "MANAGE"
	ApprovePermission Permission = "APPROVE"
	ExportPermission  Permission = "EXPORT"
	FilesPermission   Permission = "FILES"
)
