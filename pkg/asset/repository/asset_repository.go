package repository

import "tubeplan/entities"

type AssetRepository interface {
	Create(a *entities.VideoAsset) error
	List(limit int) ([]entities.VideoAsset, error)
	ByIdea(ideaID uint) ([]entities.VideoAsset, error)
}
