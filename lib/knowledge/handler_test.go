package knowledgehandler

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	audithandler "staffhub-backend/lib/audit"
	filestorage "staffhub-backend/lib/file-storage"
	knowledgestore "staffhub-backend/lib/knowledge/store"
	usersstore "staffhub-backend/lib/users/store"
	"staffhub-backend/models"
	auditapimodels "staffhub-backend/models/api/audit"
	knowledgeapimodels "staffhub-backend/models/api/knowledge"
	dbmodels "staffhub-backend/models/db"
)

type fakeArticleStore struct {
	articles map[string]*dbmodels.KnowledgeArticle
	nextID   int
}

func (f *fakeArticleStore) Create(rec dbmodels.KnowledgeArticle) (string, error) {
	f.nextID++
	rec.ID = fmt.Sprintf("article-%d", f.nextID)
	f.articles[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeArticleStore) GetByID(id string) (*dbmodels.KnowledgeArticle, error) {
	rec, exist := f.articles[id]
	if !exist {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeArticleStore) Update(id string, updMap map[string]interface{}) error {
	rec, exist := f.articles[id]
	if !exist {
		return nil
	}
	for key, value := range updMap {
		switch key {
		case "title":
			rec.Title = value.(string)
		case "content":
			rec.Content = value.(string)
		case "category":
			rec.Category = value.(string)
		case "publish_status":
			rec.PublishStatus = value.(models.PublishStatus)
		case "visibility":
			rec.Visibility = value.(models.Visibility)
		case "target_user_ids":
			rec.TargetUserIDs = value.(dbmodels.StringList)
		case "target_groups":
			rec.TargetGroups = value.(dbmodels.StringList)
		case "attachment_file_ids":
			rec.AttachmentFileIDs = value.(dbmodels.StringList)
		}
	}
	return nil
}

func (f *fakeArticleStore) Delete(id string) error {
	delete(f.articles, id)
	return nil
}

func (f *fakeArticleStore) List(filter knowledgeapimodels.ArticleFilter) ([]dbmodels.KnowledgeArticle, error) {
	list := make([]dbmodels.KnowledgeArticle, 0, len(f.articles))
	for _, rec := range f.articles {
		if filter.Category != nil && rec.Category != *filter.Category {
			continue
		}
		list = append(list, *rec)
	}
	return list, nil
}

type fakeUsersStore struct {
	usersstore.Provider
	users map[string]*dbmodels.User
}

func (f fakeUsersStore) GetByID(id string) (*dbmodels.User, error) {
	return f.users[id], nil
}

type fakeAudit struct{}

func (fakeAudit) Record(actorID, action, resourceType, resourceID string, phi bool, details map[string]interface{}) {
}

func (fakeAudit) List(filter auditapimodels.AuditLogFilter) ([]auditapimodels.AuditLogView, int64, error) {
	return nil, 0, nil
}

type fakeFileStorage struct {
	known map[string]bool
}

func (f fakeFileStorage) Upload(_ context.Context, _, _, _ string, _ []byte) (string, error) {
	return "", nil
}

func (f fakeFileStorage) Get(_ context.Context, _ string) (dbmodels.StoredFile, []byte, error) {
	return dbmodels.StoredFile{}, nil, nil
}

func (f fakeFileStorage) Delete(_ context.Context, _ string) error { return nil }

func (f fakeFileStorage) Exists(fileID string) (bool, error) { return f.known[fileID], nil }

var _ knowledgestore.Provider = &fakeArticleStore{}

func newTestEnv() (impl, *fakeArticleStore) {
	audithandler.Instance = fakeAudit{}
	filestorage.Instance = fakeFileStorage{known: map[string]bool{"file-1": true}}
	store := &fakeArticleStore{articles: map[string]*dbmodels.KnowledgeArticle{}}
	users := fakeUsersStore{users: map[string]*dbmodels.User{
		"staff-1": {BaseModel: dbmodels.BaseModel{ID: "staff-1"}, Role: models.StaffRole},
		"staff-2": {BaseModel: dbmodels.BaseModel{ID: "staff-2"}, Role: models.StaffRole},
		"admin-1": {BaseModel: dbmodels.BaseModel{ID: "admin-1"}, Role: models.AdminRole},
	}}
	return impl{store: store, usersStore: users}, store
}

func TestDraftVisibility(t *testing.T) {
	h, _ := newTestEnv()

	draft, err := h.Create("staff-1", knowledgeapimodels.ArticleData{
		Title:         "Wound care refresher",
		Content:       "draft notes",
		PublishStatus: models.PublishDraft,
		Visibility:    models.VisibilityAll,
	})
	require.NoError(t, err)
	published, err := h.Create("staff-1", knowledgeapimodels.ArticleData{
		Title:         "Badge policy",
		Content:       "final",
		PublishStatus: models.PublishPublished,
		Visibility:    models.VisibilityAll,
	})
	require.NoError(t, err)

	t.Run("draft hidden from other staff", func(t *testing.T) {
		_, err := h.GetByID("staff-2", draft.ID)
		require.ErrorIs(t, err, ErrForbidden)

		list, err := h.List("staff-2", knowledgeapimodels.ArticleFilter{})
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, published.ID, list[0].ID)
	})

	t.Run("author sees own draft", func(t *testing.T) {
		got, err := h.GetByID("staff-1", draft.ID)
		require.NoError(t, err)
		require.Equal(t, models.PublishDraft, got.PublishStatus)

		list, err := h.List("staff-1", knowledgeapimodels.ArticleFilter{})
		require.NoError(t, err)
		require.Len(t, list, 2)
	})

	t.Run("admin sees drafts", func(t *testing.T) {
		_, err := h.GetByID("admin-1", draft.ID)
		require.NoError(t, err)
	})

	t.Run("publishing opens it up", func(t *testing.T) {
		err := h.Update("staff-1", draft.ID, knowledgeapimodels.ArticleData{
			Title:         "Wound care refresher",
			Content:       "final notes",
			PublishStatus: models.PublishPublished,
			Visibility:    models.VisibilityAll,
		})
		require.NoError(t, err)

		got, err := h.GetByID("staff-2", draft.ID)
		require.NoError(t, err)
		require.Equal(t, "final notes", got.Content)
	})
}

func TestTargetedVisibility(t *testing.T) {
	h, _ := newTestEnv()

	created, err := h.Create("admin-1", knowledgeapimodels.ArticleData{
		Title:         "ICU onboarding pack",
		Content:       "restricted",
		PublishStatus: models.PublishPublished,
		Visibility:    models.VisibilitySpecificUsers,
		TargetUserIDs: []string{"staff-2"},
	})
	require.NoError(t, err)

	t.Run("target user sees it", func(t *testing.T) {
		_, err := h.GetByID("staff-2", created.ID)
		require.NoError(t, err)
	})

	t.Run("non-target staff does not", func(t *testing.T) {
		_, err := h.GetByID("staff-1", created.ID)
		require.ErrorIs(t, err, ErrForbidden)

		list, err := h.List("staff-1", knowledgeapimodels.ArticleFilter{})
		require.NoError(t, err)
		require.Empty(t, list)
	})

	t.Run("admin override", func(t *testing.T) {
		_, err := h.GetByID("admin-1", created.ID)
		require.NoError(t, err)
	})
}

func TestAddAttachment(t *testing.T) {
	h, store := newTestEnv()

	created, err := h.Create("admin-1", knowledgeapimodels.ArticleData{
		Title:         "Lifting technique",
		PublishStatus: models.PublishPublished,
		Visibility:    models.VisibilityAll,
	})
	require.NoError(t, err)

	t.Run("unknown file rejected", func(t *testing.T) {
		err := h.AddAttachment("admin-1", created.ID, "file-missing")
		require.ErrorIs(t, err, filestorage.ErrNotFound)
	})

	t.Run("unknown article rejected", func(t *testing.T) {
		err := h.AddAttachment("admin-1", "article-404", "file-1")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("stored file attached", func(t *testing.T) {
		err := h.AddAttachment("admin-1", created.ID, "file-1")
		require.NoError(t, err)
		require.Equal(t, dbmodels.StringList{"file-1"}, store.articles[created.ID].AttachmentFileIDs)
	})
}
