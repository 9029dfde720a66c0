package repository

import "tubeplan/entities"

type ChannelRepository interface {
	// Latest returns gorm.ErrRecordNotFound when no profile exists.
	Latest() (*entities.ChannelConfig, error)
	Create(c *entities.ChannelConfig) error
	Save(c *entities.ChannelConfig) error
}
