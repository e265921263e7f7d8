package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "staffhub-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	migrations := []struct {
		name  string
		model interface{}
	}{
		{"User", &dbmodels.User{}},
		{"TimeEntry", &dbmodels.TimeEntry{}},
		{"Schedule", &dbmodels.Schedule{}},
		{"ShiftTemplate", &dbmodels.ShiftTemplate{}},
		{"Shift", &dbmodels.Shift{}},
		{"ShiftAssignment", &dbmodels.ShiftAssignment{}},
		{"UserAvailability", &dbmodels.UserAvailability{}},
		{"Timesheet", &dbmodels.Timesheet{}},
		{"Document", &dbmodels.Document{}},
		{"KnowledgeArticle", &dbmodels.KnowledgeArticle{}},
		{"Update", &dbmodels.Update{}},
		{"UpdateComment", &dbmodels.UpdateComment{}},
		{"UpdateLike", &dbmodels.UpdateLike{}},
		{"UpdateAck", &dbmodels.UpdateAck{}},
		{"Notification", &dbmodels.Notification{}},
		{"AuditLog", &dbmodels.AuditLog{}},
		{"AppSetting", &dbmodels.AppSetting{}},
		{"StoredFile", &dbmodels.StoredFile{}},
	}
	for _, m := range migrations {
		if err := DB.AutoMigrate(m.model); err != nil {
			return errors.Wrapf(err, "migration of %s failed", m.name)
		}
	}
	log.Info("migrations finished")
	return nil
}
