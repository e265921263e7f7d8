package rbac

import (
	"staffhub-backend/models"
)

var (
	AdminLevelRoleSet = []models.UserRole{models.OwnerRole, models.AdminRole}
	TimeViewRoleSet   = []models.UserRole{models.OwnerRole, models.AdminRole, models.HRRole, models.ManagerRole, models.PayrollRole}
	SchedulingRoleSet = []models.UserRole{models.OwnerRole, models.AdminRole, models.SchedulerRole, models.ManagerRole}
	PayrollRoleSet    = []models.UserRole{models.OwnerRole, models.AdminRole, models.PayrollRole}
	HRManageRoleSet   = []models.UserRole{models.OwnerRole, models.AdminRole, models.HRRole}
	AllRoles          = []models.UserRole{
		models.OwnerRole, models.AdminRole, models.HRRole, models.ManagerRole,
		models.SchedulerRole, models.PayrollRole, models.StaffRole,
	}
)

func (i *impl) initRules() {
	i.addTimeRbac()
	i.addUsersRbac()
	i.addSchedulingRbac()
	i.addTimesheetRbac()
	i.addDocumentRbac()
	i.addKnowledgeRbac()
	i.addUpdatesRbac()
	i.addSettingsRbac()
	i.addAuditRbac()
	i.addFilesRbac()
}

func (i *impl) addTimeRbac() {
	// any role can track own time; per-row visibility is clamped in the handler
	i.RegisterRule(models.TimeModule, models.CreatePermission, AllRoles, "/api/v1/time/clock-in [post]", nil)
	i.RegisterRule(models.TimeModule, models.CreatePermission, AllRoles, "/api/v1/time/clock-out [post]", nil)
	i.RegisterRule(models.TimeModule, models.ViewPermission, AllRoles, "/api/v1/time/active [get]", nil)
	i.RegisterRule(models.TimeModule, models.ViewPermission, AllRoles, "/api/v1/time/entries/list [post]", nil)
	i.RegisterRule(models.TimeModule, models.ViewPermission, AllRoles, "/api/v1/time/entries/{id} [get]", nil)
	i.RegisterRule(models.TimeModule, models.EditPermission, AllRoles, "/api/v1/time/entries/{id} [patch]", nil)
	// privileged lifecycle operations
	i.RegisterRule(models.TimeModule, models.ManagePermission, AdminLevelRoleSet, "/api/v1/time/auto-clock-out [post]", nil)
	i.RegisterRule(models.TimeModule, models.ManagePermission, AdminLevelRoleSet, "/api/v1/time/entries/{id} [delete]", nil)
	i.RegisterRule(models.TimeModule, models.ApprovePermission, AdminLevelRoleSet, "/api/v1/time/entries/{id}/approve [post]", nil)
	i.RegisterRule(models.TimeModule, models.ApprovePermission, AdminLevelRoleSet, "/api/v1/time/entries/{id}/reject [post]", nil)
	i.RegisterRule(models.TimeModule, models.ViewPermission, AllRoles, "/api/v1/time/kiosk-qr [get]", nil)
}

func (i *impl) addUsersRbac() {
	//VIEW
	i.RegisterRule(models.UsersModule, models.ViewPermission, AllRoles, "/api/v1/users/list [post]", nil)
	i.RegisterRule(models.UsersModule, models.ViewPermission, AllRoles, "/api/v1/users/{id} [get]", nil)
	//MANAGE
	i.RegisterRule(models.UsersModule, models.ManagePermission, HRManageRoleSet, "/api/v1/users [post]", nil)
	i.RegisterRule(models.UsersModule, models.ManagePermission, HRManageRoleSet, "/api/v1/users/{id} [put]", nil)
	i.RegisterRule(models.UsersModule, models.ManagePermission, AdminLevelRoleSet, "/api/v1/users/{id} [delete]", nil)
	i.RegisterRule(models.UsersModule, models.ManagePermission, AdminLevelRoleSet, "/api/v1/users/{id}/groups [put]", nil)
	//PROFILE
	i.RegisterRule(models.ProfileModule, models.ViewPermission, AllRoles, "/api/v1/profile [get]", nil)
	i.RegisterRule(models.ProfileModule, models.EditPermission, AllRoles, "/api/v1/profile [put]", nil)
	i.RegisterRule(models.ProfileModule, models.ViewPermission, AllRoles, "/api/v1/notifications/list [post]", nil)
	i.RegisterRule(models.ProfileModule, models.EditPermission, AllRoles, "/api/v1/notifications/{id}/read [put]", nil)
}

func (i *impl) addSchedulingRbac() {
	//VIEW
	i.RegisterRule(models.ScheduleModule, models.ViewPermission, AllRoles, "/api/v1/schedules/list [post]", nil)
	i.RegisterRule(models.ScheduleModule, models.ViewPermission, AllRoles, "/api/v1/schedules/{id} [get]", nil)
	i.RegisterRule(models.ShiftModule, models.ViewPermission, AllRoles, "/api/v1/shifts/list [post]", nil)
	i.RegisterRule(models.ShiftModule, models.ViewPermission, AllRoles, "/api/v1/shifts/{id} [get]", nil)
	i.RegisterRule(models.ShiftModule, models.ViewPermission, AllRoles, "/api/v1/shift_templates/list [post]", nil)
	i.RegisterRule(models.ShiftModule, models.ViewPermission, AllRoles, "/api/v1/shift_assignments/list [post]", nil)
	//MANAGE
	i.RegisterRule(models.ScheduleModule, models.ManagePermission, SchedulingRoleSet, "/api/v1/schedules [post]", nil)
	i.RegisterRule(models.ScheduleModule, models.ManagePermission, SchedulingRoleSet, "/api/v1/schedules/{id} [put]", nil)
	i.RegisterRule(models.ScheduleModule, models.ManagePermission, SchedulingRoleSet, "/api/v1/schedules/{id} [delete]", nil)
	i.RegisterRule(models.ShiftModule, models.ManagePermission, SchedulingRoleSet, "/api/v1/shift_templates [post]", nil)
	i.RegisterRule(models.ShiftModule, models.ManagePermission, SchedulingRoleSet, "/api/v1/shift_templates/{id} [put]", nil)
	i.RegisterRule(models.ShiftModule, models.ManagePermission, SchedulingRoleSet, "/api/v1/shift_templates/{id} [delete]", nil)
	i.RegisterRule(models.ShiftModule, models.ManagePermission, SchedulingRoleSet, "/api/v1/shifts [post]", nil)
	i.RegisterRule(models.ShiftModule, models.ManagePermission, SchedulingRoleSet, "/api/v1/shifts/{id} [put]", nil)
	i.RegisterRule(models.ShiftModule, models.ManagePermission, SchedulingRoleSet, "/api/v1/shifts/{id} [delete]", nil)
	i.RegisterRule(models.ShiftModule, models.ManagePermission, SchedulingRoleSet, "/api/v1/shifts/{id}/assign [post]", nil)
	i.RegisterRule(models.ShiftModule, models.ManagePermission, SchedulingRoleSet, "/api/v1/shifts/{id}/assign [delete]", nil)
	i.RegisterRule(models.ShiftModule, models.ManagePermission, SchedulingRoleSet, "/api/v1/shifts/{id}/duplicate [post]", nil)
	i.RegisterRule(models.ShiftModule, models.FilesPermission, SchedulingRoleSet, "/api/v1/shifts/{id}/attachments [post]", nil)
	// staff confirm their own assignment; ownership checked in the handler
	i.RegisterRule(models.ShiftModule, models.EditPermission, AllRoles, "/api/v1/shift_assignments/{id}/confirm [put]", nil)
	//AVAILABILITY
	i.RegisterRule(models.AvailabilityModule, models.ViewPermission, AllRoles, "/api/v1/user_availability/list [post]", nil)
	i.RegisterRule(models.AvailabilityModule, models.EditPermission, AllRoles, "/api/v1/user_availability [post]", nil)
	i.RegisterRule(models.AvailabilityModule, models.EditPermission, AllRoles, "/api/v1/user_availability/{id} [put]", nil)
	i.RegisterRule(models.AvailabilityModule, models.EditPermission, AllRoles, "/api/v1/user_availability/{id} [delete]", nil)
}

func (i *impl) addTimesheetRbac() {
	//VIEW
	i.RegisterRule(models.TimesheetModule, models.ViewPermission, AllRoles, "/api/v1/timesheets/list [post]", nil)
	i.RegisterRule(models.TimesheetModule, models.ViewPermission, AllRoles, "/api/v1/timesheets/{id} [get]", nil)
	//FLOW
	i.RegisterRule(models.TimesheetModule, models.CreatePermission, PayrollRoleSet, "/api/v1/timesheets/generate [post]", nil)
	i.RegisterRule(models.TimesheetModule, models.EditPermission, AllRoles, "/api/v1/timesheets/{id}/submit [put]", nil)
	i.RegisterRule(models.TimesheetModule, models.ApprovePermission, PayrollRoleSet, "/api/v1/timesheets/{id}/approve [put]", nil)
	i.RegisterRule(models.TimesheetModule, models.ApprovePermission, PayrollRoleSet, "/api/v1/timesheets/{id}/reject [put]", nil)
	i.RegisterRule(models.TimesheetModule, models.ExportPermission, PayrollRoleSet, "/api/v1/timesheets/{id}/export [post]", nil)
}

func (i *impl) addDocumentRbac() {
	i.RegisterRule(models.DocumentModule, models.ViewPermission, AllRoles, "/api/v1/documents/list [post]", nil)
	i.RegisterRule(models.DocumentModule, models.ViewPermission, AllRoles, "/api/v1/documents/{id} [get]", nil)
	i.RegisterRule(models.DocumentModule, models.CreatePermission, AllRoles, "/api/v1/documents [post]", nil)
	i.RegisterRule(models.DocumentModule, models.EditPermission, AllRoles, "/api/v1/documents/{id} [put]", nil)
	i.RegisterRule(models.DocumentModule, models.EditPermission, AllRoles, "/api/v1/documents/{id}/submit [put]", nil)
	i.RegisterRule(models.DocumentModule, models.ManagePermission, HRManageRoleSet, "/api/v1/documents/{id} [delete]", nil)
	i.RegisterRule(models.DocumentModule, models.ApprovePermission, HRManageRoleSet, "/api/v1/documents/{id}/approve [put]", nil)
	i.RegisterRule(models.DocumentModule, models.ApprovePermission, HRManageRoleSet, "/api/v1/documents/{id}/reject [put]", nil)
	i.RegisterRule(models.DocumentModule, models.ManagePermission, HRManageRoleSet, "/api/v1/documents/check-expiry [post]", nil)
}

func (i *impl) addKnowledgeRbac() {
	i.RegisterRule(models.KnowledgeModule, models.ViewPermission, AllRoles, "/api/v1/knowledge/list [post]", nil)
	i.RegisterRule(models.KnowledgeModule, models.ViewPermission, AllRoles, "/api/v1/knowledge/{id} [get]", nil)
	i.RegisterRule(models.KnowledgeModule, models.ManagePermission, HRManageRoleSet, "/api/v1/knowledge [post]", nil)
	i.RegisterRule(models.KnowledgeModule, models.ManagePermission, HRManageRoleSet, "/api/v1/knowledge/{id} [put]", nil)
	i.RegisterRule(models.KnowledgeModule, models.ManagePermission, HRManageRoleSet, "/api/v1/knowledge/{id} [delete]", nil)
	i.RegisterRule(models.KnowledgeModule, models.FilesPermission, HRManageRoleSet, "/api/v1/knowledge/{id}/attachments [post]", nil)
}

func (i *impl) addUpdatesRbac() {
	i.RegisterRule(models.UpdatesModule, models.ViewPermission, AllRoles, "/api/v1/updates/list [post]", nil)
	i.RegisterRule(models.UpdatesModule, models.ViewPermission, AllRoles, "/api/v1/updates/{id} [get]", nil)
	i.RegisterRule(models.UpdatesModule, models.ManagePermission, HRManageRoleSet, "/api/v1/updates [post]", nil)
	i.RegisterRule(models.UpdatesModule, models.ManagePermission, HRManageRoleSet, "/api/v1/updates/{id} [put]", nil)
	i.RegisterRule(models.UpdatesModule, models.ManagePermission, HRManageRoleSet, "/api/v1/updates/{id} [delete]", nil)
	i.RegisterRule(models.UpdatesModule, models.FilesPermission, HRManageRoleSet, "/api/v1/updates/{id}/attachments [post]", nil)
	// social actions are open to every visible reader
	i.RegisterRule(models.UpdatesModule, models.EditPermission, AllRoles, "/api/v1/updates/{id}/like [put]", nil)
	i.RegisterRule(models.UpdatesModule, models.EditPermission, AllRoles, "/api/v1/updates/{id}/acknowledge [put]", nil)
	i.RegisterRule(models.UpdatesModule, models.EditPermission, AllRoles, "/api/v1/updates/{id}/comments [post]", nil)
}

func (i *impl) addSettingsRbac() {
	i.RegisterRule(models.SettingsModule, models.ViewPermission, AdminLevelRoleSet, "/api/v1/settings [get]", nil)
	i.RegisterRule(models.SettingsModule, models.EditPermission, AdminLevelRoleSet, "/api/v1/settings [put]", nil)
}

func (i *impl) addAuditRbac() {
	i.RegisterRule(models.AuditModule, models.ViewPermission, AdminLevelRoleSet, "/api/v1/audit_logs/list [post]", nil)
}

func (i *impl) addFilesRbac() {
	i.RegisterRule(models.FilesModule, models.FilesPermission, AllRoles, "/api/v1/files/upload [post]", nil)
	i.RegisterRule(models.FilesModule, models.ViewPermission, AllRoles, "/api/v1/files/{id} [get]", nil)
	i.RegisterRule(models.FilesModule, models.ManagePermission, AdminLevelRoleSet, "/api/v1/files/{id} [delete]", nil)
}
