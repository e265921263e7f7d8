package settingshandler

import (
	"strconv"

	log "github.com/sirupsen/logrus"
	"staffhub-backend/config"
	"staffhub-backend/db"
	settingsstore "staffhub-backend/lib/settings/store"
	"staffhub-backend/models"
	settingsapimodels "staffhub-backend/models/api/settings"
)

type Provider interface {
	List() (list []settingsapimodels.SettingView, err error)
	Set(data settingsapimodels.SettingData) error

	// Typed getters fall back to the configured default when the key is
	// unset or unparsable.
	AutoClockOutMaxHours() int
	DocExpiryThresholdDays() int
	ClockOutPhotoRequired() bool
	KioskBaseURL() string
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: settingsstore.NewInstance(db.DB),
	}
}

type impl struct {
	store settingsstore.Provider
}

func (i impl) List() ([]settingsapimodels.SettingView, error) {
	recs, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list := make([]settingsapimodels.SettingView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, settingsapimodels.SettingView{Key: rec.Key, Value: rec.Value})
	}
	return list, nil
}

func (i impl) Set(data settingsapimodels.SettingData) error {
	return i.store.Set(data.Key, data.Value)
}

func (i impl) AutoClockOutMaxHours() int {
	return i.intSetting(models.SettingAutoClockOutMaxHours, config.Conf.Workforce.AutoClockOutMaxHours)
}

func (i impl) DocExpiryThresholdDays() int {
	return i.intSetting(models.SettingDocExpiryThresholdDay, config.Conf.Workforce.DocExpiryThresholdDays)
}

func (i impl) ClockOutPhotoRequired() bool {
	def := config.Conf.Workforce.ClockOutPhotoRequired == nil || *config.Conf.Workforce.ClockOutPhotoRequired
	value, found, err := i.store.Get(models.SettingClockOutPhotoRequired)
	if err != nil || !found {
		return def
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.WithField("value", value).Warn("unparsable boolean setting, using default")
		return def
	}
	return parsed
}

func (i impl) KioskBaseURL() string {
	value, found, err := i.store.Get(models.SettingKioskBaseURL)
	if err != nil || !found || value == "" {
		return config.Conf.Workforce.KioskBaseURL
	}
	return value
}

func (i impl) intSetting(key string, def int) int {
	value, found, err := i.store.Get(key)
	if err != nil {
		log.WithError(err).WithField("key", key).Warn("setting lookup failed, using default")
		return def
	}
	if !found {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		log.WithFields(log.Fields{"key": key, "value": value}).Warn("unparsable integer setting, using default")
		return def
	}
	return parsed
}
