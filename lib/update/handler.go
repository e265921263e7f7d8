package updatehandler

import (
	"github.com/pkg/errors"

	"staffhub-backend/db"
	audithandler "staffhub-backend/lib/audit"
	filestorage "staffhub-backend/lib/file-storage"
	updatestore "staffhub-backend/lib/update/store"
	usersstore "staffhub-backend/lib/users/store"
	"staffhub-backend/lib/visibility"
	updateapimodels "staffhub-backend/models/api/update"
	dbmodels "staffhub-backend/models/db"
)

type Provider interface {
	Create(actorID string, data updateapimodels.UpdateData) (view updateapimodels.UpdateView, err error)
	GetByID(actorID, id string) (view updateapimodels.UpdateView, err error)
	List(actorID string, filter updateapimodels.UpdateFilter) (list []updateapimodels.UpdateView, err error)
	Update(actorID, id string, data updateapimodels.UpdateData) error
	Delete(actorID, id string) error
	AddAttachment(actorID, id, fileID string) error

	Like(actorID, id string) error
	Unlike(actorID, id string) error
	Acknowledge(actorID, id string) error
	Comment(actorID, id string, data updateapimodels.CommentData) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:      updatestore.NewInstance(db.DB),
		usersStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store      updatestore.Provider
	usersStore usersstore.Provider
}

var (
	ErrNotFound  = errors.New("update not found")
	ErrForbidden = errors.New("update is not visible to this user")
)

func (i impl) Create(actorID string, data updateapimodels.UpdateData) (updateapimodels.UpdateView, error) {
	rec := dbmodels.Update{
		Title:         data.Title,
		Body:          data.Body,
		AuthorID:      actorID,
		PublishStatus: data.PublishStatus,
		Visibility:    data.Visibility,
		TargetUserIDs: data.TargetUserIDs,
		TargetGroups:  data.TargetGroups,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return updateapimodels.UpdateView{}, err
	}
	rec.ID = id
	audithandler.Instance.Record(actorID, "update.create", "update", id, false, nil)
	return rec.ToModel(actorID), nil
}

// getVisible loads the update and rejects readers outside its audience.
func (i impl) getVisible(actorID, id string) (*dbmodels.Update, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	viewer, err := i.usersStore.GetByID(actorID)
	if err != nil {
		return nil, err
	}
	if !visibility.CanViewDraft(viewer, rec.PublishStatus, rec.AuthorID) ||
		!visibility.CanView(viewer, rec.Visibility, rec.TargetUserIDs, rec.TargetGroups) {
		return nil, ErrForbidden
	}
	return rec, nil
}

func (i impl) GetByID(actorID, id string) (updateapimodels.UpdateView, error) {
	rec, err := i.getVisible(actorID, id)
	if err != nil {
		return updateapimodels.UpdateView{}, err
	}
	return rec.ToModel(actorID), nil
}

func (i impl) List(actorID string, filter updateapimodels.UpdateFilter) ([]updateapimodels.UpdateView, error) {
	viewer, err := i.usersStore.GetByID(actorID)
	if err != nil {
		return nil, err
	}
	recs, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	list := make([]updateapimodels.UpdateView, 0, len(recs))
	for _, rec := range recs {
		if !visibility.CanViewDraft(viewer, rec.PublishStatus, rec.AuthorID) {
			continue
		}
		if !visibility.CanView(viewer, rec.Visibility, rec.TargetUserIDs, rec.TargetGroups) {
			continue
		}
		list = append(list, rec.ToModel(actorID))
	}
	return list, nil
}

func (i impl) Update(actorID, id string, data updateapimodels.UpdateData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	err = i.store.Update(id, map[string]interface{}{
		"title":           data.Title,
		"body":            data.Body,
		"publish_status":  data.PublishStatus,
		"visibility":      data.Visibility,
		"target_user_ids": dbmodels.StringList(data.TargetUserIDs),
		"target_groups":   dbmodels.StringList(data.TargetGroups),
	})
	if err != nil {
		return err
	}
	audithandler.Instance.Record(actorID, "update.update", "update", id, false, nil)
	return nil
}

func (i impl) Delete(actorID, id string) error {
	if err := i.store.Delete(id); err != nil {
		return err
	}
	audithandler.Instance.Record(actorID, "update.delete", "update", id, false, nil)
	return nil
}

func (i impl) AddAttachment(actorID, id, fileID string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	exists, err := filestorage.Instance.Exists(fileID)
	if err != nil {
		return err
	}
	if !exists {
		return filestorage.ErrNotFound
	}
	attachments := append(rec.AttachmentFileIDs, fileID)
	return i.store.Update(id, map[string]interface{}{
		"attachment_file_ids": attachments,
	})
}

func (i impl) Like(actorID, id string) error {
	if _, err := i.getVisible(actorID, id); err != nil {
		return err
	}
	return i.store.SetLike(id, actorID)
}

func (i impl) Unlike(actorID, id string) error {
	if _, err := i.getVisible(actorID, id); err != nil {
		return err
	}
	return i.store.RemoveLike(id, actorID)
}

func (i impl) Acknowledge(actorID, id string) error {
	if _, err := i.getVisible(actorID, id); err != nil {
		return err
	}
	return i.store.SetAck(id, actorID)
}

func (i impl) Comment(actorID, id string, data updateapimodels.CommentData) error {
	if _, err := i.getVisible(actorID, id); err != nil {
		return err
	}
	_, err := i.store.AddComment(dbmodels.UpdateComment{
		UpdateID: id,
		UserID:   actorID,
		Body:     data.Body,
	})
	return err
}
