package serviceImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tubeplan/entities"
	"tubeplan/pkg/channel/repositoryImp"
	"tubeplan/pkg/channel/service"
	"tubeplan/pkg/logger"
)

type channelSvc struct {
	db  *gorm.DB
	log *logger.Logger
}

func New(db *gorm.DB, log *logger.Logger) service.ChannelService {
	return &channelSvc{db: db, log: log}
}

// Configure updates the latest profile in place, or creates one when none exists.
func (s *channelSvc) Configure(ctx context.Context, p service.ChannelPatch) (*entities.ChannelConfig, error) {
	var out *entities.ChannelConfig
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := repositoryImp.New(tx)
		cur, err := r.Latest()
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if p.ChannelName == nil || *p.ChannelName == "" {
				return service.ErrNameRequired
			}
			cur = &entities.ChannelConfig{}
			apply(cur, p)
			if err := r.Create(cur); err != nil {
				return err
			}
			s.log.Info("channel created", "channel_id", cur.ChannelID, "channel_name", cur.ChannelName)
		case err != nil:
			return err
		default:
			apply(cur, p)
			if err := r.Save(cur); err != nil {
				return err
			}
			s.log.Info("channel updated", "channel_id", cur.ChannelID, "channel_name", cur.ChannelName)
		}
		out = cur
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *channelSvc) Get(ctx context.Context) (*entities.ChannelConfig, error) {
	c, err := repositoryImp.New(s.db.WithContext(ctx)).Latest()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrNotConfigured
	}
	return c, err
}

func apply(c *entities.ChannelConfig, p service.ChannelPatch) {
	if p.ChannelName != nil {
		c.ChannelName = *p.ChannelName
	}
	if p.Niche != nil {
		c.Niche = *p.Niche
	}
	if p.TargetViewer != nil {
		c.TargetViewer = *p.TargetViewer
	}
	if p.ChannelPromise != nil {
		c.ChannelPromise = *p.ChannelPromise
	}
	if p.ToneVoice != nil {
		c.ToneVoice = *p.ToneVoice
	}
	if p.Pillars != nil {
		c.Pillars = p.Pillars
	}
	if p.Constraints != nil {
		c.Constraints = p.Constraints
	}
}
