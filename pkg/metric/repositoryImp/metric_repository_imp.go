package repositoryImp

import (
	"gorm.io/gorm"

	"tubeplan/entities"
	"tubeplan/pkg/metric/repository"
)

type metricRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.MetricRepository { return &metricRepo{db} }

func (r *metricRepo) Create(m *entities.MetricSnapshot) error { return r.db.Create(m).Error }

func (r *metricRepo) BulkCreate(ms []entities.MetricSnapshot) error {
	if len(ms) == 0 {
		return nil
	}
	return r.db.Create(&ms).Error
}

func (r *metricRepo) Recent(n int) ([]entities.MetricSnapshot, error) {
	var out []entities.MetricSnapshot
	err := r.db.Order("snapshot_date DESC").Order("snapshot_id DESC").Limit(n).Find(&out).Error
	return out, err
}

func (r *metricRepo) List(limit int) ([]entities.MetricSnapshot, error) {
	if limit <= 0 {
		limit = 100
	}
	return r.Recent(limit)
}
