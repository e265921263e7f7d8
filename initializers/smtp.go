package initializers

import (
	log "github.com/sirupsen/logrus"

	"staffhub-backend/config"
	"staffhub-backend/lib/smtp"
)

func InitSmtp() {
	if config.Conf.Smtp.Host == "" {
		log.Warn("smtp host not configured, email notifications disabled")
		return
	}
	err := smtp.Connect(config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Smtp.Host, config.Conf.Smtp.Port, config.Conf.Smtp.FromEmail, *config.Conf.Smtp.TLSEnabled)
	if err != nil {
		panic(err.Error())
	}
}
