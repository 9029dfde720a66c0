package entities

import (
	"time"

	"gorm.io/datatypes"
)

// ChannelConfig is the channel profile. Lookups always take the latest row.
type ChannelConfig struct {
	ChannelID      uint              `gorm:"primaryKey" json:"channel_id"`
	ChannelName    string            `json:"channel_name"`
	Niche          string            `json:"niche"`
	TargetViewer   string            `json:"target_viewer"`
	ChannelPromise string            `json:"channel_promise"`
	ToneVoice      string            `json:"tone_voice"`
	Pillars        []string          `gorm:"serializer:json" json:"pillars"`
	Constraints    datatypes.JSONMap `json:"constraints"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
