package repository

import "tubeplan/entities"

type IdeaRepository interface {
	BulkCreate(ideas []entities.VideoIdea) error
	// TopNew orders by score_total DESC, idea_id ASC.
	TopNew(n int) ([]entities.VideoIdea, error)
	Recent(n int) ([]entities.VideoIdea, error)
	MarkQueued(ids []uint) error
	List(status string, limit int) ([]entities.VideoIdea, error)
	FindByID(id uint) (*entities.VideoIdea, error)
}
