package service

import (
	"context"
	"fmt"

	"tubeplan/entities"
	"tubeplan/pkg/apierr"
)

var (
	ErrNameRequired  = fmt.Errorf("%w: channel_name is required to create a profile", apierr.ErrValidation)
	ErrNotConfigured = apierr.ErrNotConfigured
)

// ChannelPatch carries only the fields to change. Nil means leave as is.
type ChannelPatch struct {
	ChannelName    *string        `json:"channel_name" validate:"omitempty,min=1,max=200"`
	Niche          *string        `json:"niche" validate:"omitempty,max=200"`
	TargetViewer   *string        `json:"target_viewer" validate:"omitempty,max=500"`
	ChannelPromise *string        `json:"channel_promise" validate:"omitempty,max=1000"`
	ToneVoice      *string        `json:"tone_voice" validate:"omitempty,max=200"`
	Pillars        []string       `json:"pillars" validate:"omitempty,max=20,dive,required,max=100"`
	Constraints    map[string]any `json:"constraints"`
}

type ChannelService interface {
	Configure(ctx context.Context, p ChannelPatch) (*entities.ChannelConfig, error)
	Get(ctx context.Context) (*entities.ChannelConfig, error)
}
