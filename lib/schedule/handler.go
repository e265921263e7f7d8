package schedulehandler

import (
	"github.com/pkg/errors"

	"staffhub-backend/db"
	audithandler "staffhub-backend/lib/audit"
	schedulestore "staffhub-backend/lib/schedule/store"
	shiftapimodels "staffhub-backend/models/api/shift"
	dbmodels "staffhub-backend/models/db"
)

type Provider interface {
	Create(actorID string, data shiftapimodels.ScheduleData) (view shiftapimodels.ScheduleView, err error)
	GetByID(id string) (view shiftapimodels.ScheduleView, err error)
	List() (list []shiftapimodels.ScheduleView, err error)
	Update(actorID, id string, data shiftapimodels.ScheduleData) error
	Delete(actorID, id string) error

	CreateTemplate(actorID string, data shiftapimodels.TemplateData) (view shiftapimodels.TemplateView, err error)
	ListTemplates() (list []shiftapimodels.TemplateView, err error)
	UpdateTemplate(actorID, id string, data shiftapimodels.TemplateData) error
	DeleteTemplate(actorID, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: schedulestore.NewInstance(db.DB),
	}
}

type impl struct {
	store schedulestore.Provider
}

var ErrNotFound = errors.New("schedule not found")

func (i impl) Create(actorID string, data shiftapimodels.ScheduleData) (shiftapimodels.ScheduleView, error) {
	rec := dbmodels.Schedule{
		Name:        data.Name,
		Description: data.Description,
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		CreatedBy:   actorID,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return shiftapimodels.ScheduleView{}, err
	}
	rec.ID = id
	audithandler.Instance.Record(actorID, "schedule.create", "schedule", id, false, nil)
	return rec.ToModel(), nil
}

func (i impl) GetByID(id string) (shiftapimodels.ScheduleView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return shiftapimodels.ScheduleView{}, err
	}
	if rec == nil {
		return shiftapimodels.ScheduleView{}, ErrNotFound
	}
	return rec.ToModel(), nil
}

func (i impl) List() ([]shiftapimodels.ScheduleView, error) {
	recs, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list := make([]shiftapimodels.ScheduleView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) Update(actorID, id string, data shiftapimodels.ScheduleData) error {
	err := i.store.Update(id, map[string]interface{}{
		"name":        data.Name,
		"description": data.Description,
		"start_date":  data.StartDate,
		"end_date":    data.EndDate,
	})
	if err != nil {
		return err
	}
	audithandler.Instance.Record(actorID, "schedule.update", "schedule", id, false, nil)
	return nil
}

func (i impl) Delete(actorID, id string) error {
	if err := i.store.Delete(id); err != nil {
		return err
	}
	audithandler.Instance.Record(actorID, "schedule.delete", "schedule", id, false, nil)
	return nil
}

func (i impl) CreateTemplate(actorID string, data shiftapimodels.TemplateData) (shiftapimodels.TemplateView, error) {
	rec := dbmodels.ShiftTemplate{
		Name:       data.Name,
		JobName:    data.JobName,
		Program:    data.Program,
		StartTime:  data.StartTime,
		EndTime:    data.EndTime,
		Location:   data.Location,
		HourlyRate: data.HourlyRate,
	}
	id, err := i.store.CreateTemplate(rec)
	if err != nil {
		return shiftapimodels.TemplateView{}, err
	}
	rec.ID = id
	audithandler.Instance.Record(actorID, "shift_template.create", "shift_template", id, false, nil)
	return rec.ToModel(), nil
}

func (i impl) ListTemplates() ([]shiftapimodels.TemplateView, error) {
	recs, err := i.store.ListTemplates()
	if err != nil {
		return nil, err
	}
	list := make([]shiftapimodels.TemplateView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) UpdateTemplate(actorID, id string, data shiftapimodels.TemplateData) error {
	err := i.store.UpdateTemplate(id, map[string]interface{}{
		"name":        data.Name,
		"job_name":    data.JobName,
		"program":     data.Program,
		"start_time":  data.StartTime,
		"end_time":    data.EndTime,
		"location":    data.Location,
		"hourly_rate": data.HourlyRate,
	})
	if err != nil {
		return err
	}
	audithandler.Instance.Record(actorID, "shift_template.update", "shift_template", id, false, nil)
	return nil
}

func (i impl) DeleteTemplate(actorID, id string) error {
	if err := i.store.DeleteTemplate(id); err != nil {
		return err
	}
	audithandler.Instance.Record(actorID, "shift_template.delete", "shift_template", id, false, nil)
	return nil
}
