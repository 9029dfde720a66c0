package repositoryImp

import (
	"gorm.io/gorm"

	"tubeplan/entities"
	"tubeplan/pkg/idea/repository"
)

type ideaRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.IdeaRepository { return &ideaRepo{db} }

func (r *ideaRepo) BulkCreate(ideas []entities.VideoIdea) error {
	if len(ideas) == 0 {
		return nil
	}
	return r.db.Create(&ideas).Error
}

func (r *ideaRepo) TopNew(n int) ([]entities.VideoIdea, error) {
	var out []entities.VideoIdea
	err := r.db.Where("status = ?", entities.IdeaStatusNew).
		Order("score_total DESC").Order("idea_id ASC").
		Limit(n).Find(&out).Error
	return out, err
}

func (r *ideaRepo) Recent(n int) ([]entities.VideoIdea, error) {
	var out []entities.VideoIdea
	err := r.db.Order("idea_id DESC").Limit(n).Find(&out).Error
	return out, err
}

func (r *ideaRepo) MarkQueued(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Model(&entities.VideoIdea{}).
		Where("idea_id IN ?", ids).
		Update("status", entities.IdeaStatusQueued).Error
}

func (r *ideaRepo) List(status string, limit int) ([]entities.VideoIdea, error) {
	var out []entities.VideoIdea
	q := r.db.Model(&entities.VideoIdea{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Order("score_total DESC").Order("idea_id ASC").Find(&out).Error
	return out, err
}

func (r *ideaRepo) FindByID(id uint) (*entities.VideoIdea, error) {
	var out entities.VideoIdea
	if err := r.db.Where("idea_id = ?", id).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}
