package repositoryImp

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tubeplan/entities"
	"tubeplan/pkg/experiment/repository"
)

type experimentRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ExperimentRepository { return &experimentRepo{db} }

func (r *experimentRepo) BulkCreate(xs []entities.Experiment) error {
	if len(xs) == 0 {
		return nil
	}
	return r.db.Create(&xs).Error
}

func (r *experimentRepo) List(status string) ([]entities.Experiment, error) {
	var out []entities.Experiment
	q := r.db.Order("experiment_id DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *experimentRepo) FindByID(id uint) (*entities.Experiment, error) {
	var x entities.Experiment
	if err := r.db.Where("experiment_id = ?", id).First(&x).Error; err != nil {
		return nil, err
	}
	return &x, nil
}

func (r *experimentRepo) Patch(id uint, p repository.ExperimentPatch) (*entities.Experiment, error) {
	x, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	upd := map[string]any{}
	if p.Status != nil {
		upd["status"] = *p.Status
	}
	if p.EndDate != nil {
		upd["end_date"] = *p.EndDate
	}
	if p.Outcome != nil {
		upd["outcome"] = datatypes.JSONMap(p.Outcome)
	}
	if len(upd) == 0 {
		return x, nil
	}
	if err := r.db.Model(x).Updates(upd).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}
