package availabilityhandler

import (
	"github.com/pkg/errors"

	"staffhub-backend/db"
	availabilitystore "staffhub-backend/lib/availability/store"
	"staffhub-backend/models"
	shiftapimodels "staffhub-backend/models/api/shift"
	dbmodels "staffhub-backend/models/db"
)

type Provider interface {
	Create(actorID string, data shiftapimodels.AvailabilityData) (view shiftapimodels.AvailabilityView, err error)
	ListByUser(actorID string, actorRole models.UserRole, userID string) (list []shiftapimodels.AvailabilityView, err error)
	Update(actorID, id string, data shiftapimodels.AvailabilityData) error
	Delete(actorID, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: availabilitystore.NewInstance(db.DB),
	}
}

type impl struct {
	store availabilitystore.Provider
}

var (
	ErrNotFound  = errors.New("availability slot not found")
	ErrForbidden = errors.New("operation not permitted on this availability slot")
)

func (i impl) Create(actorID string, data shiftapimodels.AvailabilityData) (shiftapimodels.AvailabilityView, error) {
	rec := dbmodels.UserAvailability{
		UserID:    actorID,
		DayOfWeek: data.DayOfWeek,
		StartTime: data.StartTime,
		EndTime:   data.EndTime,
		Available: data.Available,
		Note:      data.Note,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return shiftapimodels.AvailabilityView{}, err
	}
	rec.ID = id
	return rec.ToModel(), nil
}

func (i impl) ListByUser(actorID string, actorRole models.UserRole, userID string) ([]shiftapimodels.AvailabilityView, error) {
	if userID == "" {
		userID = actorID
	}
	canView := actorRole.IsAdminLevel() ||
		actorRole == models.SchedulerRole ||
		actorRole == models.ManagerRole
	if userID != actorID && !canView {
		return nil, ErrForbidden
	}
	recs, err := i.store.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	list := make([]shiftapimodels.AvailabilityView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) Update(actorID, id string, data shiftapimodels.AvailabilityData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	if rec.UserID != actorID {
		return ErrForbidden
	}
	return i.store.Update(id, map[string]interface{}{
		"day_of_week": data.DayOfWeek,
		"start_time":  data.StartTime,
		"end_time":    data.EndTime,
		"available":   data.Available,
		"note":        data.Note,
	})
}

func (i impl) Delete(actorID, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	if rec.UserID != actorID {
		return ErrForbidden
	}
	return i.store.Delete(id)
}
