package repositoryImp

import (
	"gorm.io/gorm"

	"tubeplan/entities"
	"tubeplan/pkg/asset/repository"
)

type assetRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.AssetRepository { return &assetRepo{db} }

func (r *assetRepo) Create(a *entities.VideoAsset) error { return r.db.Create(a).Error }

func (r *assetRepo) List(limit int) ([]entities.VideoAsset, error) {
	var out []entities.VideoAsset
	q := r.db.Order("asset_id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *assetRepo) ByIdea(ideaID uint) ([]entities.VideoAsset, error) {
	var out []entities.VideoAsset
	err := r.db.Where("idea_id = ?", ideaID).Order("asset_id ASC").Find(&out).Error
	return out, err
}
