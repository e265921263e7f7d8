package knowledgehandler

import (
	"github.com/pkg/errors"

	"staffhub-backend/db"
	audithandler "staffhub-backend/lib/audit"
	filestorage "staffhub-backend/lib/file-storage"
	knowledgestore "staffhub-backend/lib/knowledge/store"
	usersstore "staffhub-backend/lib/users/store"
	"staffhub-backend/lib/visibility"
	knowledgeapimodels "staffhub-backend/models/api/knowledge"
	dbmodels "staffhub-backend/models/db"
)

type Provider interface {
	Create(actorID string, data knowledgeapimodels.ArticleData) (view knowledgeapimodels.ArticleView, err error)
	GetByID(actorID, id string) (view knowledgeapimodels.ArticleView, err error)
	List(actorID string, filter knowledgeapimodels.ArticleFilter) (list []knowledgeapimodels.ArticleView, err error)
	Update(actorID, id string, data knowledgeapimodels.ArticleData) error
	Delete(actorID, id string) error
	AddAttachment(actorID, id, fileID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:      knowledgestore.NewInstance(db.DB),
		usersStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store      knowledgestore.Provider
	usersStore usersstore.Provider
}

var (
	ErrNotFound  = errors.New("article not found")
	ErrForbidden = errors.New("article is not visible to this user")
)

func (i impl) Create(actorID string, data knowledgeapimodels.ArticleData) (knowledgeapimodels.ArticleView, error) {
	rec := dbmodels.KnowledgeArticle{
		Title:         data.Title,
		Content:       data.Content,
		Category:      data.Category,
		AuthorID:      actorID,
		PublishStatus: data.PublishStatus,
		Visibility:    data.Visibility,
		TargetUserIDs: data.TargetUserIDs,
		TargetGroups:  data.TargetGroups,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return knowledgeapimodels.ArticleView{}, err
	}
	rec.ID = id
	audithandler.Instance.Record(actorID, "knowledge.create", "knowledge_article", id, false, nil)
	return rec.ToModel(), nil
}

func (i impl) GetByID(actorID, id string) (knowledgeapimodels.ArticleView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return knowledgeapimodels.ArticleView{}, err
	}
	if rec == nil {
		return knowledgeapimodels.ArticleView{}, ErrNotFound
	}
	viewer, err := i.usersStore.GetByID(actorID)
	if err != nil {
		return knowledgeapimodels.ArticleView{}, err
	}
	if !visibility.CanViewDraft(viewer, rec.PublishStatus, rec.AuthorID) ||
		!visibility.CanView(viewer, rec.Visibility, rec.TargetUserIDs, rec.TargetGroups) {
		return knowledgeapimodels.ArticleView{}, ErrForbidden
	}
	return rec.ToModel(), nil
}

func (i impl) List(actorID string, filter knowledgeapimodels.ArticleFilter) ([]knowledgeapimodels.ArticleView, error) {
	viewer, err := i.usersStore.GetByID(actorID)
	if err != nil {
		return nil, err
	}
	recs, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	list := make([]knowledgeapimodels.ArticleView, 0, len(recs))
	for _, rec := range recs {
		if !visibility.CanViewDraft(viewer, rec.PublishStatus, rec.AuthorID) {
			continue
		}
		if !visibility.CanView(viewer, rec.Visibility, rec.TargetUserIDs, rec.TargetGroups) {
			continue
		}
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) Update(actorID, id string, data knowledgeapimodels.ArticleData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	err = i.store.Update(id, map[string]interface{}{
		"title":           data.Title,
		"content":         data.Content,
		"category":        data.Category,
		"publish_status":  data.PublishStatus,
		"visibility":      data.Visibility,
		"target_user_ids": dbmodels.StringList(data.TargetUserIDs),
		"target_groups":   dbmodels.StringList(data.TargetGroups),
	})
	if err != nil {
		return err
	}
	audithandler.Instance.Record(actorID, "knowledge.update", "knowledge_article", id, false, nil)
	return nil
}

func (i impl) Delete(actorID, id string) error {
	if err := i.store.Delete(id); err != nil {
		return err
	}
	audithandler.Instance.Record(actorID, "knowledge.delete", "knowledge_article", id, false, nil)
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
