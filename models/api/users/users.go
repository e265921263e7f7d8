package userapimodels

import (
	"strings"
	"time"

	"staffhub-backend/models"
	apimodels "staffhub-backend/models/api"

	"github.com/pkg/errors"
)

type UserView struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	PhoneNumber string          `json:"phone_number,omitempty"`
	Role        models.UserRole `json:"role"`
	RoleName    string          `json:"role_name"`
	IsActive    bool            `json:"is_active"`
	Groups      []string        `json:"groups,omitempty"`
	Profile     ProfileView     `json:"profile"`
}

type ProfileView struct {
	HireDate          *time.Time `json:"hire_date,omitempty"`
	Discipline        string     `json:"discipline,omitempty"`
	DefaultHourlyRate float64    `json:"default_hourly_rate,omitempty"`
	Programs          []string   `json:"programs,omitempty"`
	OnboardingDone    bool       `json:"onboarding_done"`
}

type UserData struct {
	Email       string          `json:"email"`
	Password    string          `json:"password,omitempty"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	PhoneNumber string          `json:"phone_number"`
	Role        models.UserRole `json:"role"`
	IsActive    *bool           `json:"is_active,omitempty"`
	Profile     *ProfileData    `json:"profile,omitempty"`
}

type ProfileData struct {
	HireDate          *time.Time        `json:"hire_date,omitempty"`
	Discipline        *string           `json:"discipline,omitempty"`
	DefaultHourlyRate *float64          `json:"default_hourly_rate,omitempty"`
	JobRates          []JobRateData     `json:"job_rates,omitempty"`
	Programs          []string          `json:"programs,omitempty"`
	Extra             map[string]string `json:"extra,omitempty"`
}

type JobRateData struct {
	JobName    string  `json:"job_name"`
	HourlyRate float64 `json:"hourly_rate"`
}

func (r UserData) Validate(isNew bool) error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email is required")
	}
	if isNew && len(r.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if !r.Role.IsValid() {
		return errors.Errorf("unknown role (%v)", r.Role)
	}
	return nil
}

type GroupsSyncRequest struct {
	Groups []string `json:"groups"`
}

func (r GroupsSyncRequest) Validate() error {
	for _, group := range r.Groups {
		if strings.TrimSpace(group) == "" {
			return errors.New("group id must not be blank")
		}
	}
	return nil
}

type UserFilter struct {
	apimodels.Pagination
	Search   *string          `json:"search,omitempty"`
	Role     *models.UserRole `json:"role,omitempty"`
	IsActive *bool            `json:"is_active,omitempty"`
}

func (r UserFilter) Validate() error {
	if r.Role != nil && !r.Role.IsValid() {
		return errors.Errorf("unknown role (%v)", *r.Role)
	}
	return nil
}
