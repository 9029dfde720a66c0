package repositoryImp

import (
	"gorm.io/gorm"

	"tubeplan/entities"
	"tubeplan/pkg/channel/repository"
)

type channelRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ChannelRepository { return &channelRepo{db} }

func (r *channelRepo) Latest() (*entities.ChannelConfig, error) {
	var c entities.ChannelConfig
	if err := r.db.Order("channel_id DESC").First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *channelRepo) Create(c *entities.ChannelConfig) error { return r.db.Create(c).Error }

func (r *channelRepo) Save(c *entities.ChannelConfig) error { return r.db.Save(c).Error }
