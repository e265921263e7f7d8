package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"staffhub-backend/models"
	userapimodels "staffhub-backend/models/api/users"

	"github.com/pkg/errors"
)

type User struct {
	BaseModel
	Email        string `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(128)"`
	FirstName    string `gorm:"type:varchar(150)"`
	LastName     string `gorm:"type:varchar(150)"`
	PhoneNumber  string `gorm:"type:varchar(20)"`
	Role         models.UserRole `gorm:"type:varchar(20);index"`
	IsActive     bool
	LastLogin    time.Time

	// Profile holds the typed per-user attributes the HR side maintains
	// (rates, programs, onboarding). Groups is synced separately from the
	// external directory.
	Profile ProfileDetails `gorm:"type:jsonb"`
	Groups  StringList     `gorm:"type:jsonb"`
}

// ProfileDetails replaces the source system's free-form customFields
// blob with named optional fields. Extra is the escape hatch for
// attributes no field exists for yet.
type ProfileDetails struct {
	HireDate          *time.Time        `json:"hire_date,omitempty"`
	Discipline        string            `json:"discipline,omitempty"`
	DefaultHourlyRate float64           `json:"default_hourly_rate,omitempty"`
	JobRates          []JobRate         `json:"job_rates,omitempty"`
	Programs          []string          `json:"programs,omitempty"`
	OnboardingToken   string            `json:"onboarding_token,omitempty"`
	OnboardingDone    bool              `json:"onboarding_done,omitempty"`
	Extra             map[string]string `json:"extra,omitempty"`
}

type JobRate struct {
	JobName    string  `json:"job_name"`
	HourlyRate float64 `json:"hourly_rate"`
}

func (p ProfileDetails) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *ProfileDetails) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		if s, sok := value.(string); sok {
			b = []byte(s)
		} else {
			return errors.Errorf("unsupported profile column type %T", value)
		}
	}
	return json.Unmarshal(b, p)
}

// RateForJob resolves the hourly rate for a job name, falling back to the
// default rate when no per-job rate is configured.
func (p ProfileDetails) RateForJob(jobName string) float64 {
	for _, jr := range p.JobRates {
		if jr.JobName == jobName {
			return jr.HourlyRate
		}
	}
	return p.DefaultHourlyRate
}

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		if s, sok := value.(string); sok {
			b = []byte(s)
		} else {
			return errors.Errorf("unsupported list column type %T", value)
		}
	}
	return json.Unmarshal(b, l)
}

func (r User) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}

// GroupTags is the single membership model: directory-synced group IDs
// plus derived auto-program tags.
func (r User) GroupTags() []string {
	tags := make([]string, 0, len(r.Groups)+len(r.Profile.Programs))
	tags = append(tags, r.Groups...)
	for _, program := range r.Profile.Programs {
		tags = append(tags, models.AutoProgramGroupPrefix+program)
	}
	return tags
}

func (r User) ToModel() userapimodels.UserView {
	return userapimodels.UserView{
		ID:          r.ID,
		Email:       r.Email,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhoneNumber: r.PhoneNumber,
		Role:        r.Role,
		RoleName:    r.Role.ToHuman(),
		IsActive:    r.IsActive,
		Groups:      r.Groups,
		Profile: userapimodels.ProfileView{
			HireDate:          r.Profile.HireDate,
			Discipline:        r.Profile.Discipline,
			DefaultHourlyRate: r.Profile.DefaultHourlyRate,
			Programs:          r.Profile.Programs,
			OnboardingDone:    r.Profile.OnboardingDone,
		},
	}
}
