package initializers

import (
	"context"

	"staffhub-backend/config"
	"staffhub-backend/fiberlog"
	audithandler "staffhub-backend/lib/audit"
	authhandler "staffhub-backend/lib/auth"
	availabilityhandler "staffhub-backend/lib/availability"
	documenthandler "staffhub-backend/lib/document"
	xlsexport "staffhub-backend/lib/export/xls"
	filestorage "staffhub-backend/lib/file-storage"
	knowledgehandler "staffhub-backend/lib/knowledge"
	notificationhandler "staffhub-backend/lib/notification"
	"staffhub-backend/lib/rbac"
	schedulehandler "staffhub-backend/lib/schedule"
	settingshandler "staffhub-backend/lib/settings"
	shifthandler "staffhub-backend/lib/shift"
	sweepworker "staffhub-backend/lib/sweep-worker"
	timeentryhandler "staffhub-backend/lib/timeentry"
	timesheethandler "staffhub-backend/lib/timesheet"
	updatehandler "staffhub-backend/lib/update"
	usershandler "staffhub-backend/lib/users"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	InitRedis(ctx)
	rbac.NewHandler()

	filestorage.NewHandler()
	settingshandler.NewHandler()
	audithandler.NewHandler(ctx)
	notificationhandler.NewHandler()
	usershandler.NewHandler()
	authhandler.NewHandler()
	xlsexport.NewHandler()
	schedulehandler.NewHandler()
	shifthandler.NewHandler()
	availabilityhandler.NewHandler()
	timeentryhandler.NewHandler()
	timesheethandler.NewHandler()
	documenthandler.NewHandler()
	knowledgehandler.NewHandler()
	updatehandler.NewHandler()

	sweepworker.StartWorker(ctx)
}
