package settingsapimodels

import (
	"github.com/pkg/errors"
)

type SettingView struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type SettingData struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (r SettingData) Validate() error {
	if r.Key == "" {
		return errors.New("setting key is required")
	}
	return nil
}
