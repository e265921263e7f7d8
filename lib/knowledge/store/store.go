package knowledgestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	knowledgeapimodels "staffhub-backend/models/api/knowledge"
	dbmodels "staffhub-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.KnowledgeArticle) (id string, err error)
	GetByID(id string) (rec *dbmodels.KnowledgeArticle, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(filter knowledgeapimodels.ArticleFilter) (list []dbmodels.KnowledgeArticle, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.KnowledgeArticle) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.KnowledgeArticle, error) {
	rec := dbmodels.KnowledgeArticle{}
	err := i.db.
		Model(&dbmodels.KnowledgeArticle{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	tx := i.db.
		Model(&dbmodels.KnowledgeArticle{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("article not found")
	}
	return nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Delete(&dbmodels.KnowledgeArticle{}, "id = ?", id).
		Error
}

// List returns every matching row; the reader-visibility cut happens in
// the handler, where the caller's groups are known.
func (i impl) List(filter knowledgeapimodels.ArticleFilter) (list []dbmodels.KnowledgeArticle, err error) {
	list = []dbmodels.KnowledgeArticle{}
	tx := i.db.
		Model(dbmodels.KnowledgeArticle{}).
		Order("created_at DESC")
	if filter.Search != nil && *filter.Search != "" {
		search := "%" + *filter.Search + "%"
		tx.Where("title ilike ? OR content ilike ?", search, search)
	}
	if filter.Category != nil {
		tx.Where("category = ?", *filter.Category)
	}
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
