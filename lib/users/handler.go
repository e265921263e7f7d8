package usershandler

import (
	"github.com/pkg/errors"
	"staffhub-backend/db"
	audithandler "staffhub-backend/lib/audit"
	usersstore "staffhub-backend/lib/users/store"
	authutils "staffhub-backend/lib/utils/auth-utils"
	"staffhub-backend/models"
	userapimodels "staffhub-backend/models/api/users"
	dbmodels "staffhub-backend/models/db"
)

type Provider interface {
	Create(actorID string, data userapimodels.UserData) (id string, err error)
	GetByID(viewerID string, viewerRole models.UserRole, id string) (view userapimodels.UserView, err error)
	Update(actorID, id string, data userapimodels.UserData) error
	Delete(actorID, id string) error
	List(viewerID string, viewerRole models.UserRole, filter userapimodels.UserFilter) (list []userapimodels.UserView, rowCount int64, err error)
	SyncGroups(actorID, id string, groups []string) error
	GetProfile(userID string) (view userapimodels.UserView, err error)
	UpdateProfile(userID string, data userapimodels.ProfileData) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store usersstore.Provider
}

var ErrNotFound = errors.New("user not found")

func (i impl) Create(actorID string, data userapimodels.UserData) (id string, err error) {
	exist, err := i.store.ExistByEmail(data.Email)
	if err != nil {
		return "", err
	}
	if exist {
		return "", errors.New("a user with this email already exists")
	}
	hash, err := authutils.HashPassword(data.Password)
	if err != nil {
		return "", errors.Wrap(err, "password hashing failed")
	}
	isActive := true
	if data.IsActive != nil {
		isActive = *data.IsActive
	}
	rec := dbmodels.User{
		Email:        data.Email,
		PasswordHash: hash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		PhoneNumber:  data.PhoneNumber,
		Role:         data.Role,
		IsActive:     isActive,
		Profile:      profileFromData(dbmodels.ProfileDetails{}, data.Profile),
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	audithandler.Instance.Record(actorID, "user.create", "user", id, true, map[string]interface{}{
		"email": data.Email,
		"role":  string(data.Role),
	})
	return id, nil
}

func (i impl) GetByID(viewerID string, viewerRole models.UserRole, id string) (userapimodels.UserView, error) {
	// non-privileged viewers only see themselves, whatever id they ask for
	if !viewerRole.IsAdminLevel() && viewerRole != models.HRRole && viewerRole != models.ManagerRole {
		id = viewerID
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return userapimodels.UserView{}, err
	}
	if rec == nil {
		return userapimodels.UserView{}, ErrNotFound
	}
	return rec.ToModel(), nil
}

func (i impl) Update(actorID, id string, data userapimodels.UserData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	updMap := map[string]interface{}{
		"email":        data.Email,
		"first_name":   data.FirstName,
		"last_name":    data.LastName,
		"phone_number": data.PhoneNumber,
		"role":         data.Role,
	}
	if data.IsActive != nil {
		updMap["is_active"] = *data.IsActive
	}
	if data.Password != "" {
		hash, err := authutils.HashPassword(data.Password)
		if err != nil {
			return errors.Wrap(err, "password hashing failed")
		}
		updMap["password_hash"] = hash
	}
	if data.Profile != nil {
		updMap["profile"] = profileFromData(rec.Profile, data.Profile)
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	audithandler.Instance.Record(actorID, "user.update", "user", id, true, nil)
	return nil
}

func (i impl) Delete(actorID, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	err = i.store.Delete(id)
	if err != nil {
		return err
	}
	audithandler.Instance.Record(actorID, "user.delete", "user", id, true, map[string]interface{}{
		"email": rec.Email,
	})
	return nil
}

func (i impl) List(viewerID string, viewerRole models.UserRole, filter userapimodels.UserFilter) (list []userapimodels.UserView, rowCount int64, err error) {
	if !viewerRole.IsAdminLevel() && viewerRole != models.HRRole && viewerRole != models.ManagerRole {
		view, err := i.GetProfile(viewerID)
		if err != nil {
			return nil, 0, err
		}
		return []userapimodels.UserView{view}, 1, nil
	}
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	recs, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]userapimodels.UserView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, rowCount, nil
}

// SyncGroups replaces the directory-synced group IDs. Auto-program tags
// are derived from profile programs and never stored here.
func (i impl) SyncGroups(actorID, id string, groups []string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	err = i.store.Update(id, map[string]interface{}{
		"groups": dbmodels.StringList(groups),
	})
	if err != nil {
		return err
	}
	audithandler.Instance.Record(actorID, "user.groups_sync", "user", id, false, map[string]interface{}{
		"group_count": len(groups),
	})
	return nil
}

func (i impl) GetProfile(userID string) (userapimodels.UserView, error) {
	rec, err := i.store.GetByID(userID)
	if err != nil {
		return userapimodels.UserView{}, err
	}
	if rec == nil {
		return userapimodels.UserView{}, ErrNotFound
	}
	return rec.ToModel(), nil
}

func (i impl) UpdateProfile(userID string, data userapimodels.ProfileData) error {
	rec, err := i.store.GetByID(userID)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	// self-service profile edits never touch rates
	profile := rec.Profile
	if data.Discipline != nil {
		profile.Discipline = *data.Discipline
	}
	if data.Extra != nil {
		profile.Extra = data.Extra
	}
	return i.store.Update(userID, map[string]interface{}{
		"profile": profile,
	})
}

func profileFromData(current dbmodels.ProfileDetails, data *userapimodels.ProfileData) dbmodels.ProfileDetails {
	if data == nil {
		return current
	}
	if data.HireDate != nil {
		current.HireDate = data.HireDate
	}
	if data.Discipline != nil {
		current.Discipline = *data.Discipline
	}
	if data.DefaultHourlyRate != nil {
		current.DefaultHourlyRate = *data.DefaultHourlyRate
	}
	if data.JobRates != nil {
		rates := make([]dbmodels.JobRate, 0, len(data.JobRates))
		for _, jr := range data.JobRates {
			rates = append(rates, dbmodels.JobRate{JobName: jr.JobName, HourlyRate: jr.HourlyRate})
		}
		current.JobRates = rates
	}
	if data.Programs != nil {
		current.Programs = data.Programs
	}
	if data.Extra != nil {
		current.Extra = data.Extra
	}
	return current
}
